package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-settlement/internal/commission"
	"auction-settlement/internal/config"
	"auction-settlement/internal/metrics"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/notify"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/server"
	"auction-settlement/internal/settlement"
	"auction-settlement/internal/winner"
	handler "auction-settlement/services/settlement/handler"
	"auction-settlement/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; in production the environment is set by the platform
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, relying on environment variables", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLogLevel(cfg.LogLevel)

	store := repository.NewMemoryStore()
	prepopulate(store)

	sink, cleanup, err := buildSink(cfg)
	if err != nil {
		utils.Fatal("failed to initialize notification sink", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	recorder := metrics.NewRecorder()
	dispatcher := notify.NewDispatcher(sink, cfg.Platform, cfg.Notify.RetryLimit)
	calculator := commission.NewCalculator(store, cfg.CommissionRates, cfg.DefaultCommissionRate)
	resolver := winner.NewResolver(store)
	settler := settlement.NewSettler(store, calculator, resolver, dispatcher, recorder)
	scheduler := settlement.NewScheduler(settler, time.Duration(cfg.SettleIntervalSeconds)*time.Second, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.Run(ctx)

	settlementHandler := handler.NewSettlementHandler(scheduler)
	router := server.SetupRouter(settlementHandler, recorder.Registry())

	srv := &http.Server{Addr: cfg.Addr, Handler: router}
	go func() {
		fmt.Printf("Starting settlement engine on %s...\n", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()

	// Let the in-flight batch finish its current auction before exiting.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("settlement engine stopped", nil)
}

// buildSink constructs the configured notification sink
func buildSink(cfg *config.Config) (notify.Sink, func(), error) {
	switch cfg.Notify.Sink {
	case "amqp":
		sink, err := notify.NewAMQPSink(cfg.Notify.AMQPURL, cfg.Notify.AMQPQueue)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() { sink.Close() }, nil
	default:
		return notify.NewWebhookSink(cfg.Notify.WebhookURL), func() {}, nil
	}
}

// prepopulate seeds the in-memory store with sample marketplace data
func prepopulate(store *repository.MemoryStore) {
	users := []model.User{
		{
			UserID:   "seller1",
			Username: "seller1",
			Email:    "seller1@example.com",
			PaymentMethods: model.PaymentMethods{
				BankTransfer: model.BankTransfer{
					AccountName:   "Seller One",
					AccountNumber: "0101010101",
					BankName:      "First Bank",
				},
			},
		},
		{UserID: "bidder1", Username: "bidder1", Email: "bidder1@example.com"},
		{UserID: "bidder2", Username: "bidder2", Email: "bidder2@example.com"},
	}
	for _, u := range users {
		store.AddUser(u)
	}

	now := time.Now().UTC()
	store.AddAuction(model.Auction{
		AuctionID:   "auction1",
		Title:       "Antique Clock",
		Description: "A mantel clock from the 1920s",
		Category:    "antiques",
		StartingBid: 100,
		EndTime:     now.Add(-time.Minute),
		CreatedBy:   "seller1",
	})

	bids := []model.Bid{
		{BidID: utils.GenerateID(), AuctionID: "auction1", UserID: "bidder1", Amount: 120, CreatedAt: now.Add(-10 * time.Minute)},
		{BidID: utils.GenerateID(), AuctionID: "auction1", UserID: "bidder2", Amount: 150, CreatedAt: now.Add(-5 * time.Minute)},
	}
	for _, b := range bids {
		if err := store.RecordBid(b); err != nil {
			utils.Warn("failed to seed bid", map[string]any{"error": err.Error()})
		}
	}
}
