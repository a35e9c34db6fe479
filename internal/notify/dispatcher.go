package notify

import (
	"auction-settlement/internal/auctionerrors"
	"auction-settlement/internal/config"
	model "auction-settlement/internal/models"
	"auction-settlement/utils"
	"context"
	"fmt"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_sink.go -package=notify

// Sink delivers a single message to an external transport. No delivery
// guarantee is assumed; the engine treats failures as non-fatal.
type Sink interface {
	Send(ctx context.Context, email, subject, message string) error
}

// Dispatcher formats and sends the two settlement notifications: the
// commission notice to the auctioneer and the payment instructions to the
// winning bidder.
type Dispatcher struct {
	sink       Sink
	platform   config.PlatformAccount
	retryLimit int
}

// NewDispatcher creates a Dispatcher. retryLimit bounds re-send attempts
// after the first failure; it never blocks the settlement batch beyond those
// attempts.
func NewDispatcher(sink Sink, platform config.PlatformAccount, retryLimit int) *Dispatcher {
	if retryLimit < 0 {
		retryLimit = 0
	}
	return &Dispatcher{
		sink:       sink,
		platform:   platform,
		retryLimit: retryLimit,
	}
}

// NotifySettlement sends both settlement messages. Each recipient is tried
// independently; the returned error reports delivery failures but the caller
// is expected to treat them as non-fatal.
func (d *Dispatcher) NotifySettlement(ctx context.Context, auction model.Auction, auctioneer, bidder model.User, commission float64) error {
	var failed int

	subject, body := d.auctioneerNotice(auction, auctioneer, commission)
	if err := d.send(ctx, auctioneer.Email, subject, body); err != nil {
		failed++
		utils.Warn("failed to notify auctioneer", map[string]any{
			"auction_id": auction.AuctionID,
			"email":      auctioneer.Email,
			"error":      err.Error(),
		})
	}

	subject, body = d.winnerInstructions(auction, bidder, auctioneer)
	if err := d.send(ctx, bidder.Email, subject, body); err != nil {
		failed++
		utils.Warn("failed to notify winning bidder", map[string]any{
			"auction_id": auction.AuctionID,
			"email":      bidder.Email,
			"error":      err.Error(),
		})
	}

	if failed > 0 {
		return fmt.Errorf("notify: %d of 2 settlement messages for auction %s undelivered: %w", failed, auction.AuctionID, auctionerrors.ErrNotifyFailed)
	}
	return nil
}

// send attempts delivery up to 1 + retryLimit times
func (d *Dispatcher) send(ctx context.Context, email, subject, body string) error {
	var err error
	for attempt := 0; attempt <= d.retryLimit; attempt++ {
		if err = d.sink.Send(ctx, email, subject, body); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (d *Dispatcher) auctioneerNotice(auction model.Auction, auctioneer model.User, commission float64) (subject, body string) {
	subject = fmt.Sprintf("Auction %s Ended - Commission Details", auction.Title)
	body = fmt.Sprintf(`Dear %s,

Congratulations! The auction for %s has ended, and the commission has been calculated.

Below are the details for your commission payment:

Commission Amount: %.2f

Platform Account Details:
- Account Name: %s
- Email: %s
- Bank: %s
- Account Number: %s

Please process the payment at your earliest convenience.

Best regards,
- %s Team`,
		auctioneer.Username,
		auction.Title,
		commission,
		d.platform.AccountName,
		d.platform.AccountEmail,
		d.platform.BankName,
		d.platform.AccountNumber,
		d.platform.AccountName,
	)
	return subject, body
}

func (d *Dispatcher) winnerInstructions(auction model.Auction, bidder, auctioneer model.User) (subject, body string) {
	bank := auctioneer.PaymentMethods.BankTransfer
	subject = fmt.Sprintf("Congratulations! You won the auction for %s", auction.Title)
	body = fmt.Sprintf(`Dear %s,

Congratulations! You have won the auction for %s.

Before proceeding for payment, contact your auctioneer at: %s

Please complete your payment using one of the following methods:

Bank Transfer:
- Account Name: %s
- Account Number: %s
- Bank: %s

Cash on Delivery (COD):
- Pay 20%% upfront using any method above.
- The remaining 80%% is paid upon delivery.

Need to see the item condition? Contact: %s

Once your payment is confirmed, your item will be shipped.

Thanks for bidding!

- %s Team`,
		bidder.Username,
		auction.Title,
		auctioneer.Email,
		bank.AccountName,
		bank.AccountNumber,
		bank.BankName,
		auctioneer.Email,
		d.platform.AccountName,
	)
	return subject, body
}
