package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"student-data-processor/internal/model"
)

const sheetName = "Students"

// xlsxSink streams rows through excelize's stream writer, which spills
// to temp files instead of keeping the whole sheet in memory. Rows must
// arrive in ascending order, which the sequential Write satisfies.
type xlsxSink struct {
	f      *excelize.File
	sw     *excelize.StreamWriter
	path   string    // "" when writing to a caller-owned writer
	out    io.Writer // nil when writing to a file
	rowNum int
}

// NewXLSXSink streams a workbook into w. Used for in-memory exports.
func NewXLSXSink(w io.Writer, header []string) (Sink, error) {
	sink, err := newXLSXSink(header)
	if err != nil {
		return nil, err
	}
	sink.out = w
	return sink, nil
}

// NewXLSXFileSink streams a workbook into the file at path.
func NewXLSXFileSink(path string, header []string) (Sink, error) {
	sink, err := newXLSXSink(header)
	if err != nil {
		return nil, err
	}
	sink.path = path
	return sink, nil
}

func newXLSXSink(header []string) (*xlsxSink, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open stream writer: %w", err)
	}

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := sw.SetRow("A1", cells); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header row: %w", err)
	}

	return &xlsxSink{f: f, sw: sw, rowNum: 1}, nil
}

func (x *xlsxSink) Write(rec model.StudentRecord) error {
	x.rowNum++
	cell, err := excelize.CoordinatesToCellName(1, x.rowNum)
	if err != nil {
		return err
	}
	return x.sw.SetRow(cell, []interface{}{
		rec.StudentID,
		rec.FirstName,
		rec.LastName,
		rec.DOB.String(),
		rec.Class,
		rec.Score,
	})
}

func (x *xlsxSink) Close() (string, error) {
	defer x.f.Close()

	if err := x.sw.Flush(); err != nil {
		return "", fmt.Errorf("flush stream writer: %w", err)
	}
	if x.out != nil {
		if _, err := x.f.WriteTo(x.out); err != nil {
			return "", fmt.Errorf("write workbook: %w", err)
		}
		return "", nil
	}
	if err := x.f.SaveAs(x.path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return x.path, nil
}

func (x *xlsxSink) Abort() {
	x.f.Close()
	if x.path != "" {
		os.Remove(x.path)
	}
}
