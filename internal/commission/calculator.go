package commission

import (
	"auction-settlement/internal/auctionerrors"
	"auction-settlement/internal/repository"
	"fmt"

	"github.com/shopspring/decimal"
)

// Calculator computes the platform commission owed by an auctioneer. It is
// read-only with respect to store state.
type Calculator struct {
	store       repository.AuctionStore
	rates       map[string]float64
	defaultRate float64
}

// NewCalculator creates a Calculator from the configured rate table
func NewCalculator(store repository.AuctionStore, rates map[string]float64, defaultRate float64) *Calculator {
	return &Calculator{
		store:       store,
		rates:       rates,
		defaultRate: defaultRate,
	}
}

// Calculate returns the commission for an ended auction: final price times
// the configured rate, rounded to two decimal places. The final price is the
// highest bid amount, or the starting bid when no bids were placed.
func (c *Calculator) Calculate(auctionID string) (float64, error) {
	auction, err := c.store.GetAuction(auctionID)
	if err != nil {
		return 0, fmt.Errorf("commission: failed to load auction %s: %w", auctionID, err)
	}

	bids, err := c.store.GetBidsByAuction(auctionID)
	if err != nil {
		return 0, fmt.Errorf("commission: failed to load bids for auction %s: %w", auctionID, err)
	}

	price := auction.StartingBid
	for _, b := range bids {
		if b.Amount > price {
			price = b.Amount
		}
	}

	rate, err := c.rateFor(auction.Category)
	if err != nil {
		return 0, fmt.Errorf("commission: auction %s category %q: %w", auctionID, auction.Category, err)
	}

	amount := decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(rate)).
		Round(2)
	return amount.InexactFloat64(), nil
}

// rateFor resolves the category rate, falling back to the global default
func (c *Calculator) rateFor(category string) (float64, error) {
	if rate, ok := c.rates[category]; ok && rate > 0 {
		return rate, nil
	}
	if c.defaultRate > 0 {
		return c.defaultRate, nil
	}
	return 0, auctionerrors.ErrNoCommissionRate
}
