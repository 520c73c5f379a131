package pipeline

import (
	"bytes"
	"errors"
	"io"

	"student-data-processor/internal/model"
	"student-data-processor/internal/store"
)

const exportPageSize = 10_000

// ExportFilter narrows an export to one student or one class. The zero
// value exports everything.
type ExportFilter struct {
	StudentID *int64
	Class     string
}

// storeSource streams the students table page by page so exports never
// load the full dataset. A StudentID filter degenerates to a single
// lookup; a Class filter pages the class index.
type storeSource struct {
	st     *store.Store
	filter ExportFilter

	page   []model.StudentRecord
	pos    int
	offset int64
	done   bool
}

// NewStoreSource returns a source over the stored students matching
// filter.
func NewStoreSource(st *store.Store, filter ExportFilter) Source {
	return &storeSource{st: st, filter: filter}
}

func (s *storeSource) Next() (model.StudentRecord, error) {
	if s.pos < len(s.page) {
		rec := s.page[s.pos]
		s.pos++
		return rec, nil
	}
	if s.done {
		return model.StudentRecord{}, io.EOF
	}

	if s.filter.StudentID != nil {
		s.done = true
		rec, err := s.st.FindByStudentID(*s.filter.StudentID)
		if errors.Is(err, store.ErrNotFound) {
			return model.StudentRecord{}, io.EOF
		}
		return rec, err
	}

	var err error
	if s.filter.Class != "" {
		s.page, err = s.st.PageByClass(s.filter.Class, s.offset, exportPageSize)
	} else {
		s.page, err = s.st.Page(s.offset, exportPageSize)
	}
	if err != nil {
		return model.StudentRecord{}, err
	}
	s.offset += int64(len(s.page))
	s.pos = 0
	if int64(len(s.page)) < exportPageSize {
		s.done = true
	}
	if len(s.page) == 0 {
		return model.StudentRecord{}, io.EOF
	}

	rec := s.page[s.pos]
	s.pos++
	return rec, nil
}

func (s *storeSource) Close() error {
	return nil
}

// ExportCSVBytes renders the matching students as an in-memory csv
// document. Synchronous exports are expected to stay small.
func ExportCSVBytes(st *store.Store, filter ExportFilter) ([]byte, error) {
	var buf bytes.Buffer
	sink, err := NewCSVSink(&buf, model.ExportHeader)
	if err != nil {
		return nil, err
	}
	return exportBytes(&buf, st, filter, sink)
}

// ExportXLSXBytes renders the matching students as an in-memory
// workbook.
func ExportXLSXBytes(st *store.Store, filter ExportFilter) ([]byte, error) {
	var buf bytes.Buffer
	sink, err := NewXLSXSink(&buf, model.ExportHeader)
	if err != nil {
		return nil, err
	}
	return exportBytes(&buf, st, filter, sink)
}

// ExportPDFBytes renders the matching students as an in-memory report.
func ExportPDFBytes(st *store.Store, filter ExportFilter) ([]byte, error) {
	var buf bytes.Buffer
	return exportBytes(&buf, st, filter, NewPDFSink(&buf))
}

func exportBytes(buf *bytes.Buffer, st *store.Store, filter ExportFilter, sink Sink) ([]byte, error) {
	src := NewStoreSource(st, filter)
	if _, err := Copy(src, sink); err != nil {
		sink.Abort()
		src.Close()
		return nil, err
	}
	src.Close()
	if _, err := sink.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
