package models

import "time"

// BankTransfer holds the payout account details an auctioneer exposes to winners
type BankTransfer struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
}

// PaymentMethods groups the payout channels of a user. The settlement engine
// copies these verbatim into notification text and never validates them.
type PaymentMethods struct {
	BankTransfer BankTransfer `json:"bank_transfer"`
}

// User represents a participant in the auction marketplace
type User struct {
	UserID           string         `json:"user_id"`
	Username         string         `json:"username"`
	Email            string         `json:"email"`
	MoneySpent       float64        `json:"money_spent"`
	AuctionsWon      int            `json:"auctions_won"`
	UnpaidCommission float64        `json:"unpaid_commission"`
	PaymentMethods   PaymentMethods `json:"payment_methods"`
}

// Auction represents a single auction listing
type Auction struct {
	AuctionID   string    `json:"auction_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartingBid float64   `json:"starting_bid"`
	EndTime     time.Time `json:"end_time"`
	CreatedBy   string    `json:"created_by"`

	// HighestBidder is empty until settlement resolves a winner.
	HighestBidder string `json:"highest_bidder,omitempty"`

	// CommissionCalculated is the settlement-completion flag. Once true the
	// auction is permanently excluded from re-processing.
	CommissionCalculated bool `json:"commission_calculated"`
}

// Ended reports whether the auction's end time has passed at the given instant
func (a Auction) Ended(now time.Time) bool {
	return a.EndTime.Before(now)
}

// Bid represents a user's bid on an auction. Bids are immutable once created.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
