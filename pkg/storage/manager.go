// Package storage organizes the files the pipelines produce and the
// uploads they consume under one base directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBadFileName is returned when a download name tries to escape the
// storage directory.
var ErrBadFileName = errors.New("invalid file name")

// Manager hands out timestamped output paths and resolves download
// requests back to files inside its directory.
type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Ensure creates the storage directory if it does not exist yet.
func (m *Manager) Ensure() error {
	return os.MkdirAll(m.dir, 0755)
}

// NewFilePath returns a fresh output path like <dir>/students_<millis>.xlsx.
// The millisecond timestamp keeps concurrent tasks from colliding.
func (m *Manager) NewFilePath(dataset, ext string) string {
	name := fmt.Sprintf("%s_%d%s", dataset, time.Now().UnixMilli(), ext)
	return filepath.Join(m.dir, name)
}

// Resolve maps a bare file name from a download request to its path in
// the storage directory. Names carrying path separators or dot-dot
// segments are rejected.
func (m *Manager) Resolve(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) ||
		strings.ContainsAny(fileName, `/\`) || fileName == ".." {
		return "", ErrBadFileName
	}
	return filepath.Join(m.dir, fileName), nil
}

// StageUpload copies an incoming request body to a temp file in the
// storage directory so the pipeline can read it after the HTTP request
// has been answered. The caller removes the file when the task is done.
func (m *Manager) StageUpload(r io.Reader, pattern string) (string, error) {
	tmp, err := os.CreateTemp(m.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return tmp.Name(), nil
}

// ContentType maps a file name to the media type served on download.
func ContentType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".csv":
		return "text/csv"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
