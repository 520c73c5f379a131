package pipeline

import (
	"errors"
	"io"

	"student-data-processor/internal/model"
)

// Source yields a lazy, finite, non-restartable sequence of student
// records. Next returns io.EOF after the last record. Sources hold O(1)
// memory regardless of dataset size.
type Source interface {
	Next() (model.StudentRecord, error)
	Close() error
}

// Sink consumes a stream of student records into some destination.
// Close flushes buffered output and returns the result location (a file
// path, or a constant marker for non-file destinations). Abort releases
// resources and discards partial output without flushing; after a failed
// Write the runner aborts rather than closes, so a half-filled batch or
// file never survives.
type Sink interface {
	Write(model.StudentRecord) error
	Close() (string, error)
	Abort()
}

// ClampRows caps a requested row count at what an xlsx sheet can hold.
func ClampRows(n int64) int64 {
	if n > model.MaxSheetRows {
		return model.MaxSheetRows
	}
	return n
}

// Copy drains src into sink without progress accounting. Used for small
// synchronous exports; long jobs go through Run instead. The caller
// still owns Close/Abort on both ends.
func Copy(src Source, sink Sink) (int64, error) {
	var count int64
	for {
		rec, err := src.Next()
		if err != nil {
			if isEOF(err) {
				return count, nil
			}
			return count, err
		}
		if err := sink.Write(rec); err != nil {
			return count, err
		}
		count++
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
