package repository

import (
	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"fmt"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the document-store operations the settlement engine
// depends on. The backing technology is abstract; implementations must make
// every accumulator increment and the settlement claim race-free.
type AuctionStore interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetUser(userID string) (model.User, error)

	// GetBidsByAuction returns the auction's bids ordered by creation time.
	// It is the single bid source for the engine.
	GetBidsByAuction(auctionID string) ([]model.Bid, error)

	// EndedUnsettled returns auctions with EndTime before the threshold and
	// CommissionCalculated still false.
	EndedUnsettled(before time.Time) ([]model.Auction, error)

	// ClaimSettlement flips CommissionCalculated false->true as a single
	// compare-and-set. It returns false when the flag was already true, so
	// at most one concurrent invocation can claim a given auction.
	ClaimSettlement(auctionID string) (bool, error)

	// ReleaseSettlement reverts a claim after a pre-balance failure so the
	// auction is picked up again on the next trigger.
	ReleaseSettlement(auctionID string) error

	SetHighestBidder(auctionID, userID string) error

	// CreditWinner atomically adds the winning amount to MoneySpent and
	// bumps AuctionsWon by one.
	CreditWinner(userID string, amount float64) error

	// AddUnpaidCommission atomically adds the commission owed to the
	// auctioneer's UnpaidCommission accumulator.
	AddUnpaidCommission(userID string, amount float64) error

	RecordBid(bid model.Bid) error
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	users    map[string]model.User    // key: userID
	bids     map[string][]model.Bid   // key: auctionID -> bids placed on it
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		users:    make(map[string]model.User),
		bids:     make(map[string][]model.Bid),
	}
}

// GetAuction returns the auction with the given ID
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetUser returns the user with the given ID
func (s *MemoryStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

// GetBidsByAuction returns all bids for an auction ordered by creation time
func (s *MemoryStore) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids := append([]model.Bid(nil), s.bids[auctionID]...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

// EndedUnsettled returns auctions whose end time has passed and whose
// settlement flag is still false
func (s *MemoryStore) EndedUnsettled(before time.Time) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ended []model.Auction
	for _, a := range s.auctions {
		if a.EndTime.Before(before) && !a.CommissionCalculated {
			ended = append(ended, a)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		return ended[i].EndTime.Before(ended[j].EndTime)
	})
	return ended, nil
}

// ClaimSettlement atomically flips the settlement flag from false to true.
// Returns false when another invocation already holds the claim.
func (s *MemoryStore) ClaimSettlement(auctionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("claim settlement for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.CommissionCalculated {
		return false, nil
	}
	a.CommissionCalculated = true
	s.auctions[auctionID] = a
	return true, nil
}

// ReleaseSettlement reverts the settlement flag so the auction becomes
// eligible again on the next trigger
func (s *MemoryStore) ReleaseSettlement(auctionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("release settlement for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.CommissionCalculated = false
	s.auctions[auctionID] = a
	return nil
}

// SetHighestBidder records the settlement winner on the auction document
func (s *MemoryStore) SetHighestBidder(auctionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("set highest bidder for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.HighestBidder = userID
	s.auctions[auctionID] = a
	return nil
}

// CreditWinner atomically increments the winner's spend total and win count
func (s *MemoryStore) CreditWinner(userID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("credit winner %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	u.MoneySpent += amount
	u.AuctionsWon++
	s.users[userID] = u
	return nil
}

// AddUnpaidCommission atomically increments the auctioneer's commission debt
func (s *MemoryStore) AddUnpaidCommission(userID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("add unpaid commission for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	u.UnpaidCommission += amount
	s.users[userID] = u
	return nil
}

// RecordBid appends a bid to its auction's bid collection
func (s *MemoryStore) RecordBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	return nil
}

// AddAuction inserts or replaces an auction document. Used for seeding and tests.
func (s *MemoryStore) AddAuction(a model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.AuctionID] = a
}

// AddUser inserts or replaces a user document. Used for seeding and tests.
func (s *MemoryStore) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
}
