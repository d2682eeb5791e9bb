package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MakeServer_Go/internal/logger"
	"github.com/osse101/MakeServer_Go/internal/worker"
)

// LogMsgTickSkipped is logged when the pool queue is full at a tick
const LogMsgTickSkipped = "Scheduled job skipped, worker queue full"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job on the pool every interval. A tick that finds the
// queue full is skipped rather than stalling the scheduler.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.schedule(name, interval, job, false)
}

// ScheduleNow is Schedule with an extra run at registration
func (s *Scheduler) ScheduleNow(name string, interval time.Duration, job worker.Job) {
	s.schedule(name, interval, job, true)
}

func (s *Scheduler) schedule(name string, interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.enqueue(name, job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.workerPool.TryEnqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgTickSkipped, "job", name)
	}
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
