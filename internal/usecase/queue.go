package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Queue hands export job ids to whatever runs them.
type Queue interface {
	Enqueue(ctx context.Context, jobID uuid.UUID) error
}

// JobHandler runs one export job.
type JobHandler func(ctx context.Context, jobID uuid.UUID) error

// InProcessQueue runs each job on its own goroutine in this process. It is
// used when no message broker is configured.
type InProcessQueue struct {
	mu      sync.RWMutex
	handler JobHandler
	wg      sync.WaitGroup
	log     *slog.Logger
}

func NewInProcessQueue(log *slog.Logger) *InProcessQueue {
	if log == nil {
		log = slog.Default()
	}
	return &InProcessQueue{log: log}
}

// Attach sets the handler jobs are dispatched to. Jobs enqueued before a
// handler is attached are dropped with a log line.
func (q *InProcessQueue) Attach(h JobHandler) {
	q.mu.Lock()
	q.handler = h
	q.mu.Unlock()
}

func (q *InProcessQueue) Enqueue(_ context.Context, jobID uuid.UUID) error {
	q.mu.RLock()
	h := q.handler
	q.mu.RUnlock()
	if h == nil {
		q.log.Error("no export handler attached, dropping job", "job_id", jobID)
		return nil
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		// the request that enqueued the job is gone by the time it runs
		if err := h(context.Background(), jobID); err != nil {
			q.log.Error("export job failed", "job_id", jobID, "error", err)
		}
	}()
	return nil
}

// Wait blocks until every enqueued job has finished.
func (q *InProcessQueue) Wait() {
	q.wg.Wait()
}
