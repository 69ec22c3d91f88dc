package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/voicepod/devicekit-go/internal/errors"
)

// DefaultQueueSize is the job queue capacity when none is configured.
const DefaultQueueSize = 32

// Hooks are the board-owned lifecycle operations the scheduler delegates to.
// A nil hook means the board does not support the operation.
type Hooks struct {
	Reboot          func(ctx context.Context) error
	UpgradeFirmware func(ctx context.Context, url string) error
}

type job struct {
	id string
	fn func()
}

// Scheduler runs queued jobs on a single worker goroutine, in FIFO order.
//
// Schedule may be called from any goroutine. A running job is never cancelled
// or timed out; queued jobs wait behind it.
type Scheduler struct {
	log     *slog.Logger
	jobs    chan job
	hooks   Hooks
	stopped atomic.Bool
}

// NewScheduler creates a scheduler with the given queue capacity.
// queueSize <= 0 uses DefaultQueueSize.
func NewScheduler(log *slog.Logger, queueSize int, hooks Hooks) *Scheduler {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Scheduler{
		log:   log.With("component", "scheduler"),
		jobs:  make(chan job, queueSize),
		hooks: hooks,
	}
}

// Schedule queues fn for execution on the worker. Blocks when the queue is
// full. Jobs scheduled after Run returned are dropped with a warning.
func (s *Scheduler) Schedule(fn func()) {
	j := job{id: ulid.Make().String(), fn: fn}

	if s.stopped.Load() {
		s.log.Warn("Job dropped, scheduler stopped", "job_id", j.id, "error", errors.ErrSchedulerStopped)

		return
	}

	s.log.Debug("Job queued", "job_id", j.id)
	s.jobs <- j
}

// Run drains the queue until ctx is cancelled. It returns ctx.Err() on
// shutdown.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer s.stopped.Store(true)

		for {
			select {
			case j := <-s.jobs:
				s.log.Debug("Job started", "job_id", j.id)
				j.fn()
				s.log.Debug("Job finished", "job_id", j.id)

			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return g.Wait()
}

// Reboot delegates to the board hook.
func (s *Scheduler) Reboot(ctx context.Context) error {
	if s.hooks.Reboot == nil {
		s.log.Warn("Reboot requested but not supported by this board")

		return errors.ErrOperationUnsupported
	}

	s.log.Warn("User requested reboot")

	return s.hooks.Reboot(ctx)
}

// UpgradeFirmware delegates to the board hook.
func (s *Scheduler) UpgradeFirmware(ctx context.Context, url string) error {
	if s.hooks.UpgradeFirmware == nil {
		s.log.Warn("Firmware upgrade requested but not supported by this board")

		return errors.ErrOperationUnsupported
	}

	s.log.Info("User requested firmware upgrade", "url", url)

	return s.hooks.UpgradeFirmware(ctx, url)
}
