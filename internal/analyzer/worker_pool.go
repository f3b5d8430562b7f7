package analyzer

import (
	"runtime"
	"sync"
)

// WorkerPool runs independent per-image analyses with bounded parallelism.
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of
// workers; workers <= 0 means the logical CPU count.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start launches the workers. Safe to call more than once.
func (wp *WorkerPool) Start() {
	wp.once.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
		wp.wg.Done()
	}
}

// Submit queues a job for execution. Blocks when the queue is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close shuts down the worker pool. Submit must not be called after Close.
func (wp *WorkerPool) Close() {
	close(wp.jobQueue)
}
