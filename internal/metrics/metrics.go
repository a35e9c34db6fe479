// Package metrics exposes Prometheus series for the settlement engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the engine's Prometheus metrics
type Recorder struct {
	registry *prometheus.Registry

	auctionsSettled      prometheus.Counter
	auctionsNoWinner     prometheus.Counter
	auctionsFailed       prometheus.Counter
	auctionsSkipped      prometheus.Counter
	batchDuration        prometheus.Histogram
	notificationFailures prometheus.Counter
}

// NewRecorder creates a Recorder with its own registry
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		auctionsSettled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "auctions_settled_total",
			Help:      "Auctions settled with a winner.",
		}),
		auctionsNoWinner: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "auctions_no_winner_total",
			Help:      "Auctions settled without a winner.",
		}),
		auctionsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "auctions_failed_total",
			Help:      "Auctions whose settlement attempt failed and was left for retry.",
		}),
		auctionsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "auctions_skipped_total",
			Help:      "Auctions skipped because another invocation already claimed them.",
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one settlement batch.",
			Buckets:   prometheus.DefBuckets,
		}),
		notificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "auction",
			Subsystem: "settlement",
			Name:      "notification_failures_total",
			Help:      "Settlement notifications that could not be delivered.",
		}),
	}
}

// Registry returns the underlying registry for the /metrics endpoint
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) AuctionSettled() { r.auctionsSettled.Inc() }
func (r *Recorder) AuctionNoWinner() { r.auctionsNoWinner.Inc() }
func (r *Recorder) AuctionFailed() { r.auctionsFailed.Inc() }
func (r *Recorder) AuctionSkipped() { r.auctionsSkipped.Inc() }
func (r *Recorder) NotificationFailed() { r.notificationFailures.Inc() }

func (r *Recorder) ObserveBatch(d time.Duration) {
	r.batchDuration.Observe(d.Seconds())
}
