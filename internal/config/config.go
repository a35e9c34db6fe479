// Package config defines settlement engine configuration and loading.
//
// Precedence (low -> high): built-in defaults, optional YAML file pointed to
// by AUCTION_CONFIG, then environment variables with the AUCTION_ prefix.
package config

import (
	"fmt"
)

// PlatformAccount holds the marketplace payout account quoted verbatim in
// the auctioneer commission notice.
type PlatformAccount struct {
	AccountName   string `koanf:"account_name"`
	AccountEmail  string `koanf:"account_email"`
	BankName      string `koanf:"bank_name"`
	AccountNumber string `koanf:"account_number"`
}

// NotifyConfig selects and configures the notification sink.
type NotifyConfig struct {
	// Sink is the delivery channel: "webhook" or "amqp".
	Sink string `koanf:"sink"`

	// WebhookURL is the mail relay endpoint for the webhook sink.
	WebhookURL string `koanf:"webhook_url"`

	// AMQPURL and AMQPQueue configure the RabbitMQ sink.
	AMQPURL   string `koanf:"amqp_url"`
	AMQPQueue string `koanf:"amqp_queue"`

	// RetryLimit bounds re-send attempts after the first failure.
	RetryLimit int `koanf:"retry_limit"`
}

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the operational HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SettleIntervalSeconds sets the settlement trigger cadence.
	SettleIntervalSeconds int `koanf:"settle_interval_seconds"`

	// CommissionRates maps auction categories to commission rates.
	CommissionRates map[string]float64 `koanf:"commission_rates"`

	// DefaultCommissionRate applies to categories without an explicit rate.
	DefaultCommissionRate float64 `koanf:"default_commission_rate"`

	Platform PlatformAccount `koanf:"platform"`
	Notify   NotifyConfig    `koanf:"notify"`
}

// New returns a Config populated with defaults
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":8080",
		SettleIntervalSeconds: 60,
		CommissionRates:       map[string]float64{},
		DefaultCommissionRate: 0.05,
		Platform: PlatformAccount{
			AccountName: "Auction Platform",
		},
		Notify: NotifyConfig{
			Sink:       "webhook",
			AMQPQueue:  "settlement_notifications",
			RetryLimit: 2,
		},
	}
}

// Validate checks invariants that would make the engine misbehave at runtime
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.SettleIntervalSeconds <= 0 {
		return fmt.Errorf("%w: settle_interval_seconds must be positive", ErrInvalidConfig)
	}
	if c.DefaultCommissionRate < 0 {
		return fmt.Errorf("%w: default_commission_rate must not be negative", ErrInvalidConfig)
	}
	for category, rate := range c.CommissionRates {
		if rate < 0 {
			return fmt.Errorf("%w: commission rate for category %q must not be negative", ErrInvalidConfig, category)
		}
	}
	switch c.Notify.Sink {
	case "webhook", "amqp":
	default:
		return fmt.Errorf("%w: notify sink must be webhook or amqp, got %q", ErrInvalidConfig, c.Notify.Sink)
	}
	return nil
}
