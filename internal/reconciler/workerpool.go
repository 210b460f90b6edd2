package reconciler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many settlement tasks run at once; submission blocks
// once every worker is busy and the buffer is full.
type WorkerPool struct {
	tasks     chan Task
	closed    chan struct{}
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{
		tasks:  make(chan Task, size),
		closed: make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.closed:
			return
		case task := <-wp.tasks:
			if err := task(); err != nil {
				zap.L().Error("settlement task failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.closed:
		return context.Canceled
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.closed:
		return context.Canceled
	case wp.tasks <- task:
		return nil
	}
}

// Close stops the workers. The tasks channel stays open so a concurrent
// AddTask cannot panic on a closed channel; it fails on the closed signal
// instead. Queued but unstarted tasks are dropped.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.closed)
	})
}
