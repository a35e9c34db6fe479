package settlement

import (
	"auction-settlement/utils"
	"context"
	"sync"
	"time"
)

// Clock supplies the current time; injectable so tests run without
// wall-clock waits.
type Clock func() time.Time

// BatchSettler settles every eligible auction as of a given instant
type BatchSettler interface {
	SettleEnded(ctx context.Context, now time.Time) (BatchResult, error)
}

// Scheduler fires the settlement batch on a fixed interval. Fires are not
// mutually excluded: correctness under overlap rests on the claim
// compare-and-set and the store's atomic increments, not on this type.
type Scheduler struct {
	settler  BatchSettler
	interval time.Duration
	clock    Clock

	mu   sync.RWMutex
	last *BatchResult
}

// NewScheduler creates a Scheduler. A nil clock defaults to time.Now.
func NewScheduler(settler BatchSettler, interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		settler:  settler,
		interval: interval,
		clock:    clock,
	}
}

// Run fires the batch every interval until the context is cancelled. An
// in-flight batch finishes its current auction before Run returns.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("settlement scheduler started", map[string]any{
		"interval": s.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			utils.Info("settlement scheduler stopped", nil)
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce fires a single settlement batch and records its result. It is
// shared by the timer and the manual trigger endpoint, and never panics:
// the recover here is the batch-level backstop that per-auction containment
// should keep from firing.
func (s *Scheduler) RunOnce(ctx context.Context) (result BatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("settlement batch panicked", map[string]any{"panic": r})
		}
	}()

	result, err = s.settler.SettleEnded(ctx, s.clock())
	if err != nil {
		utils.Error("settlement batch failed", map[string]any{"error": err.Error()})
		return result, err
	}

	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()
	return result, nil
}

// LastResult returns the most recent completed batch result, if any
func (s *Scheduler) LastResult() (BatchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return BatchResult{}, false
	}
	return *s.last, true
}
