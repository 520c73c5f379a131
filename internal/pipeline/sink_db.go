package pipeline

import (
	"student-data-processor/internal/model"
	"student-data-processor/internal/store"
)

const dbBatchSize = 1000

// DBResultMessage is the result location reported when an ingest run
// completes, since a database sink has no file path to hand back.
const DBResultMessage = "Database upload completed"

// dbSink buffers records and inserts them in transactional batches.
// A failed run aborts with the current batch unflushed, so the table
// only ever contains whole batches.
type dbSink struct {
	st    *store.Store
	batch []model.StudentRecord
}

// NewDBSink writes records into st in batches of 1000.
func NewDBSink(st *store.Store) Sink {
	return &dbSink{st: st, batch: make([]model.StudentRecord, 0, dbBatchSize)}
}

func (d *dbSink) Write(rec model.StudentRecord) error {
	d.batch = append(d.batch, rec)
	if len(d.batch) < dbBatchSize {
		return nil
	}
	return d.flush()
}

func (d *dbSink) Close() (string, error) {
	if err := d.flush(); err != nil {
		return "", err
	}
	return DBResultMessage, nil
}

func (d *dbSink) Abort() {
	d.batch = d.batch[:0]
}

func (d *dbSink) flush() error {
	if len(d.batch) == 0 {
		return nil
	}
	if err := d.st.InsertBatch(d.batch); err != nil {
		return err
	}
	d.batch = d.batch[:0]
	return nil
}
