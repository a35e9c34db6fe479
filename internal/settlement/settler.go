package settlement

import (
	"auction-settlement/internal/metrics"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/winner"
	"auction-settlement/utils"
	"context"
	"fmt"
	"time"
)

// Outcome is the terminal state of one auction's settlement attempt
type Outcome string

const (
	// OutcomeSettled means a winner was credited and the auction flagged settled.
	OutcomeSettled Outcome = "settled"
	// OutcomeNoWinner means the auction settled without a winner and will never be retried.
	OutcomeNoWinner Outcome = "no_winner"
	// OutcomeSkipped means another invocation already claimed the auction.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the attempt aborted; the auction stays unsettled for retry.
	OutcomeFailed Outcome = "failed"
)

// BatchResult summarizes one settlement batch
type BatchResult struct {
	Processed int           `json:"processed"`
	Settled   int           `json:"settled"`
	NoWinner  int           `json:"no_winner"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// CommissionCalculator computes the platform fee for an ended auction
type CommissionCalculator interface {
	Calculate(auctionID string) (float64, error)
}

// WinnerResolver picks the winning bid and bidder for an auction
type WinnerResolver interface {
	Resolve(auction model.Auction, bids []model.Bid) (winner.Selection, bool, error)
}

// Notifier dispatches the settlement messages to both parties
type Notifier interface {
	NotifySettlement(ctx context.Context, auction model.Auction, auctioneer, bidder model.User, commission float64) error
}

// Settler sequences the settlement of ended auctions: claim, commission,
// winner resolution, balance updates, winner persistence, notification.
type Settler struct {
	store    repository.AuctionStore
	calc     CommissionCalculator
	resolver WinnerResolver
	notifier Notifier
	recorder *metrics.Recorder
}

// NewSettler creates a Settler
func NewSettler(store repository.AuctionStore, calc CommissionCalculator, resolver WinnerResolver, notifier Notifier, recorder *metrics.Recorder) *Settler {
	return &Settler{
		store:    store,
		calc:     calc,
		resolver: resolver,
		notifier: notifier,
		recorder: recorder,
	}
}

// SettleEnded settles every auction whose end time precedes now and whose
// settlement flag is still false. Auctions are processed sequentially; one
// auction's failure never blocks its siblings. Cancellation is honored
// between auctions so an in-flight auction finishes its current step.
func (s *Settler) SettleEnded(ctx context.Context, now time.Time) (BatchResult, error) {
	start := time.Now()
	result := BatchResult{StartedAt: now}

	ended, err := s.store.EndedUnsettled(now)
	if err != nil {
		return result, fmt.Errorf("settlement: failed to query ended auctions: %w", err)
	}

	utils.Info("settlement batch started", map[string]any{
		"eligible": len(ended),
		"now":      now.UTC().Format(time.RFC3339),
	})

	for _, auction := range ended {
		if ctx.Err() != nil {
			break
		}

		result.Processed++
		switch s.SettleAuction(ctx, auction) {
		case OutcomeSettled:
			result.Settled++
			s.recorder.AuctionSettled()
		case OutcomeNoWinner:
			result.NoWinner++
			s.recorder.AuctionNoWinner()
		case OutcomeSkipped:
			result.Skipped++
			s.recorder.AuctionSkipped()
		case OutcomeFailed:
			result.Failed++
			s.recorder.AuctionFailed()
		}
	}

	result.Duration = time.Since(start)
	s.recorder.ObserveBatch(result.Duration)

	utils.Info("settlement batch finished", map[string]any{
		"processed": result.Processed,
		"settled":   result.Settled,
		"no_winner": result.NoWinner,
		"failed":    result.Failed,
		"skipped":   result.Skipped,
		"duration":  result.Duration.String(),
	})
	return result, nil
}

// SettleAuction runs the settlement state machine for a single auction. All
// errors are contained here; the caller only sees the terminal outcome.
func (s *Settler) SettleAuction(ctx context.Context, auction model.Auction) Outcome {
	// Claim the auction by flipping the settlement flag with a compare-and-
	// set. A lost claim means a concurrent invocation owns it or it is
	// already settled: zero side effects from this invocation.
	claimed, err := s.store.ClaimSettlement(auction.AuctionID)
	if err != nil {
		utils.Error("failed to claim auction for settlement", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
		return OutcomeFailed
	}
	if !claimed {
		utils.Info("auction already claimed, skipping", map[string]any{
			"auction_id": auction.AuctionID,
		})
		return OutcomeSkipped
	}

	commission, err := s.calc.Calculate(auction.AuctionID)
	if err != nil {
		return s.abort(auction, "commission calculation failed", err)
	}

	bids, err := s.store.GetBidsByAuction(auction.AuctionID)
	if err != nil {
		return s.abort(auction, "failed to load bids", err)
	}

	selection, hasWinner, err := s.resolver.Resolve(auction, bids)
	if err != nil {
		return s.abort(auction, "winner resolution failed", err)
	}
	if !hasWinner {
		// The claim stays: an auction that can never have a winner must not
		// be retried forever. No balances change, nobody is notified.
		utils.Info("auction settled without a winner", map[string]any{
			"auction_id": auction.AuctionID,
			"title":      auction.Title,
			"bids":       len(bids),
		})
		return OutcomeNoWinner
	}

	auctioneer, err := s.store.GetUser(auction.CreatedBy)
	if err != nil {
		return s.abort(auction, "failed to resolve auctioneer", err)
	}

	if err := s.store.SetHighestBidder(auction.AuctionID, selection.Bidder.UserID); err != nil {
		return s.abort(auction, "failed to persist highest bidder", err)
	}

	// The winning bid's amount is charged, never any other figure.
	if err := s.store.CreditWinner(selection.Bidder.UserID, selection.Bid.Amount); err != nil {
		return s.abort(auction, "failed to credit winner", err)
	}

	if err := s.store.AddUnpaidCommission(auctioneer.UserID, commission); err != nil {
		// The winner was already credited. Releasing the claim now would
		// re-credit the winner on retry, so the auction stays settled and
		// the miss is logged for manual follow-up.
		utils.Error("failed to record auctioneer commission after crediting winner", map[string]any{
			"auction_id": auction.AuctionID,
			"auctioneer": auctioneer.UserID,
			"commission": commission,
			"error":      err.Error(),
		})
		return OutcomeSettled
	}

	utils.Info("auction settled", map[string]any{
		"auction_id": auction.AuctionID,
		"title":      auction.Title,
		"winner":     selection.Bidder.UserID,
		"amount":     selection.Bid.Amount,
		"commission": commission,
	})

	// Notification is a best-effort side channel. The settlement flag and
	// balances are already committed; a bounced email never unsettles them.
	if err := s.notifier.NotifySettlement(ctx, auction, auctioneer, selection.Bidder, commission); err != nil {
		s.recorder.NotificationFailed()
		utils.Warn("settlement notification undelivered", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
	}

	return OutcomeSettled
}

// abort releases the settlement claim so the auction is retried on the next
// trigger, logs the failure, and reports the Failed outcome
func (s *Settler) abort(auction model.Auction, msg string, cause error) Outcome {
	utils.Error(msg, map[string]any{
		"auction_id": auction.AuctionID,
		"title":      auction.Title,
		"error":      cause.Error(),
	})
	if err := s.store.ReleaseSettlement(auction.AuctionID); err != nil {
		utils.Error("failed to release settlement claim", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
	}
	return OutcomeFailed
}
