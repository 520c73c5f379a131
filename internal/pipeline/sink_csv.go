package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"student-data-processor/internal/model"
)

// csvSink writes one quoted line per record, header first.
type csvSink struct {
	w    *csv.Writer
	file *os.File // nil when writing to a caller-owned writer
	path string
}

// NewCSVSink streams records into w. Used for in-memory exports.
func NewCSVSink(w io.Writer, header []string) (Sink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &csvSink{w: cw}, nil
}

// NewCSVFileSink creates path and streams records into it.
func NewCSVFileSink(path string, header []string) (Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv file: %w", err)
	}

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &csvSink{w: cw, file: file, path: path}, nil
}

func (c *csvSink) Write(rec model.StudentRecord) error {
	return c.w.Write(rec.Row())
}

func (c *csvSink) Close() (string, error) {
	c.w.Flush()
	err := c.w.Error()
	if c.file != nil {
		if cerr := c.file.Close(); err == nil {
			err = cerr
		}
	}
	return c.path, err
}

func (c *csvSink) Abort() {
	if c.file != nil {
		c.file.Close()
		os.Remove(c.path)
	}
}
