package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MakeServer_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines fed by a buffered queue
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	// draining closes the intake; workers then empty the queue and exit
	draining  chan struct{}
	drainOnce sync.Once
}

// NewPool creates a new worker pool. Non-positive sizes fall back to the defaults.
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		ctx:        ctx,
		cancel:     cancel,
		draining:   make(chan struct{}),
	}
}

// SetJobTimeout bounds each job's context. Call before Start.
func (p *Pool) SetJobTimeout(d time.Duration) {
	if d > 0 {
		p.jobTimeout = d
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		case <-p.draining:
			p.drainQueue()
			return
		}
	}
}

// drainQueue runs what is left in the queue until it is empty or the pool is
// cancelled
func (p *Pool) drainQueue() {
	for p.ctx.Err() == nil {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		default:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job, blocking while the queue is full. It returns false if
// the pool was stopped or started draining first.
func (p *Pool) Enqueue(job Job) bool {
	if !p.accepting() {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	case <-p.draining:
		return false
	}
}

// TryEnqueue adds a job without blocking. It returns false when the queue is
// full or the pool no longer accepts jobs.
func (p *Pool) TryEnqueue(job Job) bool {
	if !p.accepting() {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

func (p *Pool) accepting() bool {
	select {
	case <-p.ctx.Done():
		return false
	case <-p.draining:
		return false
	default:
		return true
	}
}

// QueueLen returns the number of jobs waiting
func (p *Pool) QueueLen() int {
	return len(p.jobQueue)
}

func (p *Pool) closeIntake() {
	p.drainOnce.Do(func() { close(p.draining) })
}

// Drain stops accepting jobs and lets the workers finish everything already
// queued, with live job contexts. When ctx ends first, running jobs are
// cancelled, the rest of the queue is discarded and ctx.Err() is returned.
// Drain returns only after every worker has exited.
func (p *Pool) Drain(ctx context.Context) error {
	p.closeIntake()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// a send racing closeIntake can land after the workers exit
		p.drainQueue()
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs
// that have not started are discarded. Safe to call more than once.
func (p *Pool) Stop() {
	p.cancel()
	p.closeIntake()
	p.wg.Wait()
}
