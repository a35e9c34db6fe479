package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubSettler counts batch fires and replays a canned result
type stubSettler struct {
	mu      sync.Mutex
	fires   int
	nows    []time.Time
	result  BatchResult
	err     error
	panicOn bool
}

func (s *stubSettler) SettleEnded(_ context.Context, now time.Time) (BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panicOn {
		panic("settler blew up")
	}
	s.fires++
	s.nows = append(s.nows, now)
	return s.result, s.err
}

func (s *stubSettler) fireCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fires
}

// RunOnce feeds the injected clock's now to the settler and records the result
func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubSettler{result: BatchResult{Processed: 3, Settled: 2, NoWinner: 1}}
	scheduler := NewScheduler(stub, time.Minute, func() time.Time { return frozen })

	_, ok := scheduler.LastResult()
	require.False(t, ok, "no result before the first fire")

	result, err := scheduler.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, result.Settled)
	require.Equal(t, []time.Time{frozen}, stub.nows)

	last, ok := scheduler.LastResult()
	require.True(t, ok)
	require.Equal(t, result, last)
}

// A failed batch is reported but does not overwrite the last good result
func TestScheduler_RunOnceError(t *testing.T) {
	t.Parallel()

	stub := &stubSettler{result: BatchResult{Settled: 1}}
	scheduler := NewScheduler(stub, time.Minute, nil)

	_, err := scheduler.RunOnce(context.Background())
	require.NoError(t, err)

	stub.err = errors.New("store unreachable")
	_, err = scheduler.RunOnce(context.Background())
	require.Error(t, err)

	last, ok := scheduler.LastResult()
	require.True(t, ok)
	require.Equal(t, 1, last.Settled)
}

// A panicking settler is contained by the batch-level backstop
func TestScheduler_PanicBackstop(t *testing.T) {
	t.Parallel()

	stub := &stubSettler{panicOn: true}
	scheduler := NewScheduler(stub, time.Minute, nil)

	require.NotPanics(t, func() {
		scheduler.RunOnce(context.Background())
	})
}

// Run fires on the ticker until the context is cancelled
func TestScheduler_Run(t *testing.T) {
	t.Parallel()

	stub := &stubSettler{}
	scheduler := NewScheduler(stub, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return stub.fireCount() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
