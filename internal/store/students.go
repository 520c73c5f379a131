package store

import (
	"database/sql"
	"errors"
	"fmt"

	"student-data-processor/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a single-record lookup matches nothing.
var ErrNotFound = errors.New("student not found")

// Store is the relational student repository. The pipeline only needs two
// capabilities from it: batch insert and paged scan.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite database at path and creates the schema if
// it does not exist yet.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Every new pool connection to :memory: opens its own empty database;
	// pin the pool to a single connection so schema and data are shared.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		dob TEXT NOT NULL,
		class TEXT NOT NULL,
		score INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_students_class ON students(class);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertBatch writes all records in a single transaction. The transaction
// is the batch boundary: a later failure never unwinds a batch that has
// already committed.
func (s *Store) InsertBatch(records []model.StudentRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO students (student_id, first_name, last_name, dob, class, score) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.StudentID, rec.FirstName, rec.LastName, rec.DOB.String(), rec.Class, rec.Score); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert studentId %d: %w", rec.StudentID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored students.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&n)
	return n, err
}

// CountFiltered counts students matching the optional filters.
func (s *Store) CountFiltered(studentID *int64, class string) (int64, error) {
	var n int64
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE (? IS NULL OR student_id = ?) AND (? = '' OR class = ?)`,
		studentID, studentID, class, class,
	).Scan(&n)
	return n, err
}

// FindByStudentID fetches a single student by its dataset identifier.
func (s *Store) FindByStudentID(studentID int64) (model.StudentRecord, error) {
	row := s.db.QueryRow(
		`SELECT student_id, first_name, last_name, dob, class, score FROM students WHERE student_id = ?`,
		studentID,
	)
	rec, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StudentRecord{}, ErrNotFound
	}
	return rec, err
}

// Page returns one fixed-size page of the full table scan, ordered by
// insertion so repeated calls walk the table deterministically.
func (s *Store) Page(offset, limit int64) ([]model.StudentRecord, error) {
	rows, err := s.db.Query(
		`SELECT student_id, first_name, last_name, dob, class, score FROM students ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// PageByClass returns one page of students in the given class.
func (s *Store) PageByClass(class string, offset, limit int64) ([]model.StudentRecord, error) {
	rows, err := s.db.Query(
		`SELECT student_id, first_name, last_name, dob, class, score FROM students WHERE class = ? ORDER BY id LIMIT ? OFFSET ?`,
		class, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// PageFiltered returns one page matching the optional filters, mirroring
// CountFiltered. Used by the paged listing endpoint.
func (s *Store) PageFiltered(studentID *int64, class string, offset, limit int64) ([]model.StudentRecord, error) {
	rows, err := s.db.Query(
		`SELECT student_id, first_name, last_name, dob, class, score FROM students
		 WHERE (? IS NULL OR student_id = ?) AND (? = '' OR class = ?)
		 ORDER BY id LIMIT ? OFFSET ?`,
		studentID, studentID, class, class, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(r rowScanner) (model.StudentRecord, error) {
	var rec model.StudentRecord
	var dob string
	if err := r.Scan(&rec.StudentID, &rec.FirstName, &rec.LastName, &dob, &rec.Class, &rec.Score); err != nil {
		return model.StudentRecord{}, err
	}
	parsed, err := model.ParseDate(dob)
	if err != nil {
		return model.StudentRecord{}, fmt.Errorf("stored dob %q: %w", dob, err)
	}
	rec.DOB = parsed
	return rec, nil
}

func collectStudents(rows *sql.Rows) ([]model.StudentRecord, error) {
	defer rows.Close()

	var out []model.StudentRecord
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
