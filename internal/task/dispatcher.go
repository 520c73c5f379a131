package task

import (
	"student-data-processor/internal/progress"

	"github.com/google/uuid"
)

// Dispatcher allocates task identifiers and hands pipeline runs to the
// worker pool without blocking the caller. A run's outcome is observable
// only through the progress registry, never through a return value.
type Dispatcher struct {
	pool     *Pool
	registry *progress.Registry
}

func NewDispatcher(pool *Pool, registry *progress.Registry) *Dispatcher {
	return &Dispatcher{pool: pool, registry: registry}
}

// Dispatch allocates a fresh task id, enqueues run and returns the id
// immediately. Request validation belongs to the caller and happens
// before Dispatch, so an id is never issued for a rejected request.
// If the worker queue is full the task is recorded FAILED right away,
// making the overflow visible to pollers like any other failure.
func (d *Dispatcher) Dispatch(run func(taskID string)) string {
	taskID := uuid.New().String()

	if err := d.pool.Submit(func() { run(taskID) }); err != nil {
		d.registry.Record(progress.Failed(taskID, err.Error()))
	}
	return taskID
}
