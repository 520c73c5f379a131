package pipeline

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-data-processor/internal/model"
)

func TestClampRows(t *testing.T) {
	assert.Equal(t, int64(10), ClampRows(10))
	assert.Equal(t, int64(model.MaxSheetRows), ClampRows(model.MaxSheetRows))
	assert.Equal(t, int64(model.MaxSheetRows), ClampRows(model.MaxSheetRows+1))
	assert.Equal(t, int64(model.MaxSheetRows), ClampRows(5_000_000))
}

func TestGeneratorProducesValidRecords(t *testing.T) {
	src := NewGenerator(200)
	defer src.Close()

	var count int64
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++

		assert.Equal(t, count, rec.StudentID, "ids are sequential from 1")
		assert.True(t, model.IsClass(rec.Class))
		assert.GreaterOrEqual(t, rec.Score, 55)
		assert.LessOrEqual(t, rec.Score, 75)

		for _, name := range []string{rec.FirstName, rec.LastName} {
			assert.GreaterOrEqual(t, len(name), 3)
			assert.LessOrEqual(t, len(name), 8)
			for _, c := range name {
				assert.True(t, strings.ContainsRune(nameCharset, c), "unexpected name rune %q", c)
			}
		}

		dob := rec.DOB.String()
		assert.GreaterOrEqual(t, dob, "2000-01-01")
		assert.LessOrEqual(t, dob, "2010-12-31")
	}
	assert.Equal(t, int64(200), count)
}

func TestGeneratorClampsRequestedCount(t *testing.T) {
	src := NewGenerator(model.MaxSheetRows + 500).(*generatorSource)
	assert.Equal(t, int64(model.MaxSheetRows), src.total)
}
