package task

import (
	"errors"
	"sync"
)

// ErrQueueFull is returned by Submit when the pending-task queue is at
// capacity.
var ErrQueueFull = errors.New("worker queue is full")

// Pool runs submitted functions on a fixed set of background workers.
// Submission never blocks the caller.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts workers goroutines consuming a queue of queueSize
// pending tasks.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{queue: make(chan func(), queueSize)}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.queue {
		fn()
	}
}

// Submit enqueues fn for execution. It returns ErrQueueFull instead of
// blocking when the queue is at capacity.
func (p *Pool) Submit(fn func()) error {
	select {
	case p.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting work and waits for queued tasks to drain.
func (p *Pool) Close() {
	p.closeOnce.Do(func() { close(p.queue) })
	p.wg.Wait()
}
