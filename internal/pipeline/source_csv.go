package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"student-data-processor/internal/model"
)

// csvSource reads student records line by line from a delimited-text
// file. The header line is consumed on open and excluded from the stream.
type csvSource struct {
	file *os.File
	r    *csv.Reader
	line int
}

// OpenCSVSource opens path for streaming reads.
func OpenCSVSource(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	r := csv.NewReader(file)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		file.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	return &csvSource{file: file, r: r, line: 1}, nil
}

func (c *csvSource) Next() (model.StudentRecord, error) {
	fields, err := c.r.Read()
	if err == io.EOF {
		return model.StudentRecord{}, io.EOF
	}
	if err != nil {
		return model.StudentRecord{}, fmt.Errorf("read csv line %d: %w", c.line+1, err)
	}
	c.line++

	rec, err := model.ParseRow(fields)
	if err != nil {
		return model.StudentRecord{}, fmt.Errorf("csv line %d: %w", c.line, err)
	}
	return rec, nil
}

func (c *csvSource) Close() error {
	return c.file.Close()
}

// CountCSVRows counts the data rows in a delimited-text file (header
// excluded). Ingest counts the file up front so progress runs against
// a true total instead of an estimate.
func CountCSVRows(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}

	var n int64
	for {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		n++
	}
}
