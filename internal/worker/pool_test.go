package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MakeServer_Go/internal/alert"
	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed}
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, time.Second, 5*time.Millisecond)
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	var ran int32
	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { panic("bad job") }))
	pool.Enqueue(JobFunc(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueWhenFull(t *testing.T) {
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)
	defer pool.Stop()

	noop := JobFunc(func(context.Context) error { return nil })
	assert.True(t, pool.TryEnqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))
	assert.Equal(t, 1, pool.QueueLen())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	noop := JobFunc(func(context.Context) error { return nil })
	assert.False(t, pool.Enqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(1, 1)
		pool.Start()

		started := make(chan struct{})
		pool.Enqueue(JobFunc(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}))
		<-started
		pool.Stop()
	})
}

func TestPool_DrainRunsQueuedJobs(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(1, 16)
		pool.Start()

		started := make(chan struct{})
		release := make(chan struct{})
		require.True(t, pool.Enqueue(JobFunc(func(context.Context) error {
			close(started)
			<-release
			return nil
		})))
		<-started

		const queued = 8
		var ran, cancelled int32
		for i := 0; i < queued; i++ {
			require.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error {
				if ctx.Err() != nil {
					atomic.AddInt32(&cancelled, 1)
				}
				atomic.AddInt32(&ran, 1)
				return nil
			})))
		}

		drained := make(chan error, 1)
		go func() { drained <- pool.Drain(context.Background()) }()

		require.Eventually(t, func() bool { return !pool.accepting() }, time.Second, time.Millisecond,
			"intake closes once draining starts")
		close(release)

		require.NoError(t, <-drained)
		assert.Equal(t, int32(queued), atomic.LoadInt32(&ran))
		assert.Zero(t, atomic.LoadInt32(&cancelled), "drained jobs run with a live context")
		assert.Zero(t, pool.QueueLen())
		assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
	})
}

func TestPool_DrainDeadlineCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()

	started := make(chan struct{})
	var sawCancel int32
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		atomic.StoreInt32(&sawCancel, 1)
		return ctx.Err()
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Drain(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&sawCancel))
	pool.Stop()
}

func TestPool_DrainUnstartedPool(t *testing.T) {
	pool := NewPool(1, 2)
	require.True(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
	assert.NoError(t, pool.Drain(context.Background()))
	assert.False(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
}

type recordingAlerter struct {
	mu  sync.Mutex
	got []alert.Alert
}

func (r *recordingAlerter) Alert(_ context.Context, a alert.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, a)
	return nil
}

func (r *recordingAlerter) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.got))
	for _, a := range r.got {
		out = append(out, a.Key)
	}
	return out
}

func TestAlertDispatcher_DeliversOnPool(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	rec := &recordingAlerter{}
	d := NewAlertDispatcher(pool, rec)
	d.Notify(context.Background(), alert.Alert{Key: "k1"})

	assert.Eventually(t, func() bool { return len(rec.keys()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestAlertDispatcher_DropsWhenQueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	defer pool.Stop()

	rec := &recordingAlerter{}
	d := NewAlertDispatcher(pool, rec)
	d.Notify(context.Background(), alert.Alert{Key: "kept"})
	d.Notify(context.Background(), alert.Alert{Key: "dropped"})

	assert.Equal(t, 1, pool.QueueLen())
}

type stubLister struct {
	slots []domain.StorageSlot
	err   error
}

func (s stubLister) ExpiredStorageSlots(context.Context) ([]domain.StorageSlot, error) {
	return s.slots, s.err
}

type recordingNotifier struct {
	keys []string
}

func (n *recordingNotifier) Notify(_ context.Context, a alert.Alert) {
	n.keys = append(n.keys, a.Key)
}

func TestStorageExpiryJob_ReportsExpiredSlots(t *testing.T) {
	owner := uint64(7)
	expired := time.Now().Add(-time.Hour)
	lister := stubLister{slots: []domain.StorageSlot{
		{ID: "A1", Owner: &owner, ExpiresAt: &expired},
		{ID: "B2", Owner: &owner, ExpiresAt: &expired},
	}}
	n := &recordingNotifier{}

	require.NoError(t, NewStorageExpiryJob(lister, n).Process(context.Background()))
	assert.Equal(t, []string{"storage_expired:A1", "storage_expired:B2"}, n.keys)
}

func TestStorageExpiryJob_PropagatesError(t *testing.T) {
	job := NewStorageExpiryJob(stubLister{err: domain.ErrStoreBusy}, nil)
	assert.ErrorIs(t, job.Process(context.Background()), domain.ErrStoreBusy)
}
