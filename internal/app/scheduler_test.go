package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/voicepod/devicekit-go/internal/errors"
)

func runScheduler(t *testing.T, s *Scheduler) context.CancelFunc {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	var runErr error

	go func() {
		defer close(done)

		runErr = s.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		require.ErrorIs(t, runErr, context.Canceled)
	})

	return cancel
}

func TestSchedulerRunsJobsInFIFOOrder(t *testing.T) {
	s := NewScheduler(slog.Default(), 8, Hooks{})
	runScheduler(t, s)

	var mu sync.Mutex

	var order []int

	var wg sync.WaitGroup

	for i := range 5 {
		wg.Add(1)
		s.Schedule(func() {
			defer wg.Done()

			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	wg.Wait()
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestSchedulerSerializesJobs(t *testing.T) {
	s := NewScheduler(slog.Default(), 8, Hooks{})
	runScheduler(t, s)

	release := make(chan struct{})
	firstRunning := make(chan struct{})
	secondRan := make(chan struct{})

	s.Schedule(func() {
		close(firstRunning)
		<-release
	})
	s.Schedule(func() {
		close(secondRan)
	})

	<-firstRunning

	// The second job waits behind the slow first one.
	select {
	case <-secondRan:
		t.Fatal("second job ran while first was still occupying the worker")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-secondRan:
	case <-time.After(time.Second):
		t.Fatal("second job never ran")
	}
}

func TestSchedulerDropsJobsAfterStop(t *testing.T) {
	s := NewScheduler(slog.Default(), 8, Hooks{})
	cancel := runScheduler(t, s)

	cancel()

	// Wait for the worker to observe shutdown.
	require.Eventually(t, func() bool {
		return s.stopped.Load()
	}, time.Second, 5*time.Millisecond)

	ran := false
	s.Schedule(func() { ran = true })
	require.False(t, ran)
}

func TestSchedulerLifecycleHooks(t *testing.T) {
	t.Run("delegates to hooks", func(t *testing.T) {
		var rebooted bool

		var upgradedFrom string

		s := NewScheduler(slog.Default(), 0, Hooks{
			Reboot: func(_ context.Context) error {
				rebooted = true

				return nil
			},
			UpgradeFirmware: func(_ context.Context, url string) error {
				upgradedFrom = url

				return nil
			},
		})

		require.NoError(t, s.Reboot(context.Background()))
		require.True(t, rebooted)

		require.NoError(t, s.UpgradeFirmware(context.Background(), "https://ota.example/fw.bin"))
		require.Equal(t, "https://ota.example/fw.bin", upgradedFrom)
	})

	t.Run("nil hooks are unsupported", func(t *testing.T) {
		s := NewScheduler(slog.Default(), 0, Hooks{})

		require.ErrorIs(t, s.Reboot(context.Background()), kiterrors.ErrOperationUnsupported)
		require.ErrorIs(t,
			s.UpgradeFirmware(context.Background(), "https://ota.example/fw.bin"),
			kiterrors.ErrOperationUnsupported)
	})
}
