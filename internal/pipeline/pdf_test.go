package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFSinkProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPDFSink(&buf)

	// 65 records spill onto a third page at 30 records per page.
	for _, rec := range testRecords(65) {
		require.NoError(t, sink.Write(rec))
	}
	location, err := sink.Close()
	require.NoError(t, err)
	assert.Empty(t, location)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	sink := NewPDFFileSink(path)

	for _, rec := range testRecords(3) {
		require.NoError(t, sink.Write(rec))
	}
	location, err := sink.Close()
	require.NoError(t, err)
	assert.Equal(t, path, location)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFSinkAbortRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.pdf")
	sink := NewPDFFileSink(path)
	require.NoError(t, sink.Write(testRecords(1)[0]))

	sink.Abort()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "elevenchars"[:10], truncate("elevenchars", 10))
}
