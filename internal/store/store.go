// Package store owns every mutable entity of the makerspace and the single
// exclusive-access discipline around them.
//
// All reads and writes go through Store.Update or Store.View, each of which runs
// one closure as an atomic unit against *Tables. A closure must check all of its
// preconditions before it mutates anything; the table methods themselves only
// mutate after their own checks pass, so a failed operation leaves no trace.
// *Tables must not be retained after the closure returns.
package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/metrics"
)

// Tables is the aggregate of entity tables guarded by the store lock
type Tables struct {
	Users          *Users
	Inventory      *Inventory
	Quizzes        *Quizzes
	CheckoutLog    *CheckoutLog
	StudentStorage *StudentStorage
	Printers       *Printers
}

func newTables() *Tables {
	return &Tables{
		Users:          newUsers(),
		Inventory:      newInventory(),
		Quizzes:        newQuizzes(),
		CheckoutLog:    newCheckoutLog(),
		StudentStorage: newStudentStorage(),
		Printers:       newPrinters(),
	}
}

// Options configures a Store
type Options struct {
	// LockTimeout bounds how long an operation waits for exclusive access.
	// Zero means wait until the caller's context is done.
	LockTimeout time.Duration
}

// Store is the single owner of all entity tables
type Store struct {
	sem         *semaphore.Weighted
	lockTimeout time.Duration
	tables      *Tables
}

// New creates an empty store
func New(opts Options) *Store {
	return &Store{
		sem:         semaphore.NewWeighted(1),
		lockTimeout: opts.LockTimeout,
		tables:      newTables(),
	}
}

// Update runs fn with exclusive access to the tables
func (s *Store) Update(ctx context.Context, fn func(*Tables) error) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(s.tables)
}

// View runs fn with exclusive access for a read-only operation. The store keeps
// one coarse lock, so View and Update serialise against each other.
func (s *Store) View(ctx context.Context, fn func(*Tables) error) error {
	return s.Update(ctx, fn)
}

// Ready reports whether exclusive access can currently be obtained
func (s *Store) Ready(ctx context.Context) error {
	return s.View(ctx, func(*Tables) error { return nil })
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		metrics.StoreBusy.Inc()
		return nil, fmt.Errorf("%w after %s: %w", domain.ErrStoreBusy, time.Since(start).Round(time.Millisecond), err)
	}
	metrics.StoreLockWait.Observe(time.Since(start).Seconds())

	return func() { s.sem.Release(1) }, nil
}
