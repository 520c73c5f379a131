package progress

import (
	"sync"
	"time"
)

// Registry is the process-wide store of task progress snapshots. It is
// safe for one writer per task and any number of concurrent readers.
// Progress is keyed strictly by task identifier; tasks never interfere.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]entry
}

type entry struct {
	snap Snapshot
	// terminalAt is set once the snapshot is COMPLETED or FAILED and
	// drives TTL eviction. Zero while the task is running.
	terminalAt time.Time
}

func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]entry)}
}

// Record replaces the stored snapshot for snap.TaskID. Once a task has a
// terminal snapshot, further updates for that identifier are discarded.
func (r *Registry) Record(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.tasks[snap.TaskID]; ok && prev.snap.Status.Terminal() {
		return
	}

	e := entry{snap: snap}
	if snap.Status.Terminal() {
		e.terminalAt = time.Now()
	}
	r.tasks[snap.TaskID] = e
}

// Lookup returns the current snapshot for taskID. Unknown identifiers
// yield a NOT_FOUND snapshot, never an error, so pollers cannot tell an
// evicted task from one that has not started yet.
func (r *Registry) Lookup(taskID string) Snapshot {
	r.mu.RLock()
	e, ok := r.tasks[taskID]
	r.mu.RUnlock()

	if !ok {
		return NotFound(taskID)
	}
	return e.snap
}

// Evict removes the snapshot for taskID. Missing keys are a no-op.
func (r *Registry) Evict(taskID string) {
	r.mu.Lock()
	delete(r.tasks, taskID)
	r.mu.Unlock()
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// StartSweeper launches a background loop that evicts terminal snapshots
// older than ttl. This is a deliberate extension over the base contract,
// which never frees registry entries; running tasks are never evicted.
// The returned function stops the sweeper.
func (r *Registry) StartSweeper(ttl, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.sweep(ttl)
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (r *Registry) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.tasks {
		if !e.terminalAt.IsZero() && e.terminalAt.Before(cutoff) {
			delete(r.tasks, id)
		}
	}
}
