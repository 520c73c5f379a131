package pipeline

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"student-data-processor/internal/model"
)

// xlsxSource streams the first sheet of a spreadsheet row by row through
// excelize's row iterator, so memory stays flat no matter how many rows
// the workbook holds. Cells arrive as their formatted string values
// (dates come back in date format, formula cells as their cached text).
type xlsxSource struct {
	f      *excelize.File
	rows   *excelize.Rows
	rowNum int
}

// OpenXLSXSource opens the spreadsheet at path and positions the stream
// past the header row.
func OpenXLSXSource(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("iterate sheet %q: %w", sheets[0], err)
	}

	// Skip the header row.
	if rows.Next() {
		if _, err := rows.Columns(); err != nil {
			rows.Close()
			f.Close()
			return nil, fmt.Errorf("read header row: %w", err)
		}
	}

	return &xlsxSource{f: f, rows: rows, rowNum: 1}, nil
}

func (x *xlsxSource) Next() (model.StudentRecord, error) {
	if !x.rows.Next() {
		return model.StudentRecord{}, io.EOF
	}
	x.rowNum++

	cols, err := x.rows.Columns()
	if err != nil {
		return model.StudentRecord{}, fmt.Errorf("read row %d: %w", x.rowNum, err)
	}

	// Trailing empty cells are omitted by the iterator; pad back to six.
	for len(cols) < 6 {
		cols = append(cols, "")
	}

	rec, err := model.ParseRow(cols)
	if err != nil {
		return model.StudentRecord{}, fmt.Errorf("row %d: %w", x.rowNum, err)
	}
	return rec, nil
}

func (x *xlsxSource) Close() error {
	err := x.rows.Close()
	if cerr := x.f.Close(); err == nil {
		err = cerr
	}
	return err
}
