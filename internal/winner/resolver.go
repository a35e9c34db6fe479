package winner

import (
	"auction-settlement/internal/auctionerrors"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/repository"
	"errors"
	"fmt"
)

// Selection is the outcome of winner resolution: the winning bid and the
// resolved bidder.
type Selection struct {
	Bid    model.Bid
	Bidder model.User
}

// Resolver deterministically picks the settlement winner of an auction
type Resolver struct {
	store repository.AuctionStore
}

// NewResolver creates a Resolver backed by the given store
func NewResolver(store repository.AuctionStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve selects the winning bid for an auction. The bid with the strictly
// greatest amount wins; among bids sharing the maximum amount the earliest
// submitted one wins, so repeated runs always pick the same winner.
//
// The second return value is false when the auction has no winner: the bid
// set is empty, or the top bid's user no longer exists. Both are normal
// terminal outcomes, not errors.
func (r *Resolver) Resolve(auction model.Auction, bids []model.Bid) (Selection, bool, error) {
	if len(bids) == 0 {
		return Selection{}, false, nil
	}

	top := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > top.Amount || (b.Amount == top.Amount && b.CreatedAt.Before(top.CreatedAt)) {
			top = b
		}
	}

	if top.UserID == "" {
		return Selection{}, false, nil
	}

	bidder, err := r.store.GetUser(top.UserID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return Selection{}, false, nil
		}
		return Selection{}, false, fmt.Errorf("winner: failed to resolve bidder %s for auction %s: %w", top.UserID, auction.AuctionID, err)
	}

	return Selection{Bid: top, Bidder: bidder}, true, nil
}
