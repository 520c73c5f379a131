package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-data-processor/internal/model"
)

func writeXLSXFixture(t *testing.T, path string, records []model.StudentRecord) {
	t.Helper()
	sink, err := NewXLSXFileSink(path, model.GenerateHeader)
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, sink.Write(rec))
	}
	got, err := sink.Close()
	require.NoError(t, err)
	require.Equal(t, path, got)
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")
	records := testRecords(40)
	writeXLSXFixture(t, path, records)

	src, err := OpenXLSXSource(path)
	require.NoError(t, err)
	defer src.Close()

	var back []model.StudentRecord
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		back = append(back, rec)
	}
	assert.Equal(t, records, back)
}

func TestXLSXSourceReportsRowOnBadCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	records := testRecords(5)
	records[2].Class = "NoSuchClass" // row 4 in the sheet, counting the header
	writeXLSXFixture(t, path, records)

	src, err := OpenXLSXSource(path)
	require.NoError(t, err)
	defer src.Close()

	for i := 0; i < 2; i++ {
		_, err := src.Next()
		require.NoError(t, err)
	}

	_, err = src.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), "NoSuchClass")
}

func TestXLSXSourceRejectsNonSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))

	_, err := OpenXLSXSource(path)
	assert.Error(t, err)
}

func TestXLSXSinkAbortRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.xlsx")
	sink, err := NewXLSXFileSink(path, model.GenerateHeader)
	require.NoError(t, err)
	require.NoError(t, sink.Write(testRecords(1)[0]))

	sink.Abort()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
