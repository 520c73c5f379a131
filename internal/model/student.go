package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Classes is the fixed set of valid student classes.
var Classes = []string{"Class1", "Class2", "Class3", "Class4", "Class5"}

const (
	// MaxSheetRows is the largest number of data rows an xlsx sheet can
	// hold below the 1,048,576 row hard limit (one row is the header).
	MaxSheetRows = 1_048_575

	// DateLayout is the wire format for dates of birth in every file format.
	DateLayout = "2006-01-02"
)

// GenerateHeader is the column header written by the data generator.
var GenerateHeader = []string{"studentId", "firstName", "lastName", "DOB", "class", "score"}

// ExportHeader is the column header written by report exports.
var ExportHeader = []string{"Student ID", "First Name", "Last Name", "DOB", "Class", "Score"}

// StudentRecord is a single student row flowing through a pipeline.
// Records are constructed per row, transformed once and handed to a sink;
// they are never held in a dataset-wide collection.
type StudentRecord struct {
	StudentID int64  `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       Date   `json:"dob"`
	Class     string `json:"studentClass"`
	Score     int    `json:"score"`
}

// Date is a calendar date serialized as "2006-01-02".
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsClass reports whether s is one of the fixed classes.
func IsClass(s string) bool {
	for _, c := range Classes {
		if s == c {
			return true
		}
	}
	return false
}

// ParseRow converts a raw 6-field row tuple into a StudentRecord.
// Any unparseable required field is an error; the caller decides whether
// that aborts the whole task (it does, for every pipeline in this service).
func ParseRow(fields []string) (StudentRecord, error) {
	if len(fields) < 6 {
		return StudentRecord{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return StudentRecord{}, fmt.Errorf("invalid studentId %q: %w", fields[0], err)
	}
	if id <= 0 {
		return StudentRecord{}, fmt.Errorf("studentId must be positive, got %d", id)
	}

	firstName := strings.TrimSpace(fields[1])
	lastName := strings.TrimSpace(fields[2])
	if firstName == "" || lastName == "" {
		return StudentRecord{}, fmt.Errorf("empty name for studentId %d", id)
	}

	dob, err := ParseDate(fields[3])
	if err != nil {
		return StudentRecord{}, fmt.Errorf("invalid DOB %q: %w", fields[3], err)
	}

	class := strings.TrimSpace(fields[4])
	if !IsClass(class) {
		return StudentRecord{}, fmt.Errorf("unknown class %q for studentId %d", fields[4], id)
	}

	score, err := parseScore(fields[5])
	if err != nil {
		return StudentRecord{}, fmt.Errorf("invalid score %q for studentId %d: %w", fields[5], id, err)
	}

	return StudentRecord{
		StudentID: id,
		FirstName: firstName,
		LastName:  lastName,
		DOB:       dob,
		Class:     class,
		Score:     score,
	}, nil
}

// parseScore accepts both integer and spreadsheet-formatted numeric cells
// ("63" and "63.0" both mean 63).
func parseScore(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Row renders the record as a raw 6-field tuple, the inverse of ParseRow.
func (s StudentRecord) Row() []string {
	return []string{
		strconv.FormatInt(s.StudentID, 10),
		s.FirstName,
		s.LastName,
		s.DOB.String(),
		s.Class,
		strconv.Itoa(s.Score),
	}
}
