package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Settlement errors
var (
	ErrAlreadySettled   = errors.New("auction already settled")
	ErrNoCommissionRate = errors.New("no commission rate configured")
	ErrNotifyFailed     = errors.New("notification delivery failed")
)
