package integrationtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
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

	"github.com/gin-gonic/gin"
)

// sentMessage is one notification captured by the fake mail relay
type sentMessage struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// mailRelay is a fake webhook mail relay that records what it receives
type mailRelay struct {
	mu       sync.Mutex
	messages []sentMessage
	srv      *httptest.Server
}

func newMailRelay(t *testing.T) *mailRelay {
	relay := &mailRelay{}
	relay.srv = httptest.NewServer(httpHandler(t, relay))
	t.Cleanup(relay.srv.Close)
	return relay
}

func httpHandler(t *testing.T, relay *mailRelay) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg sentMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Errorf("relay received malformed payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		relay.mu.Lock()
		relay.messages = append(relay.messages, msg)
		relay.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
}

func (r *mailRelay) sent() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMessage(nil), r.messages...)
}

// testStack is the fully wired settlement engine behind its ops router
type testStack struct {
	store     *repository.MemoryStore
	relay     *mailRelay
	scheduler *settlement.Scheduler
	router    *gin.Engine
}

// SetupTestStack wires the engine with an in-memory store and a fake relay
func SetupTestStack(t *testing.T, rates map[string]float64, defaultRate float64) *testStack {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	relay := newMailRelay(t)

	platform := config.PlatformAccount{
		AccountName:   "Trustys Auction",
		AccountEmail:  "payments@trustys.example.com",
		BankName:      "Platform Bank",
		AccountNumber: "9988776655",
	}

	recorder := metrics.NewRecorder()
	dispatcher := notify.NewDispatcher(notify.NewWebhookSink(relay.srv.URL), platform, 1)
	settler := settlement.NewSettler(
		store,
		commission.NewCalculator(store, rates, defaultRate),
		winner.NewResolver(store),
		dispatcher,
		recorder,
	)
	scheduler := settlement.NewScheduler(settler, time.Minute, nil)

	settlementHandler := handler.NewSettlementHandler(scheduler)
	router := server.SetupRouter(settlementHandler, recorder.Registry())

	return &testStack{
		store:     store,
		relay:     relay,
		scheduler: scheduler,
		router:    router,
	}
}

// seedSettlementScenario loads a seller, bidders and one ended auction
func (s *testStack) seedSettlementScenario(t *testing.T) {
	s.store.AddUser(model.User{
		UserID:   "seller1",
		Username: "seller1",
		Email:    "seller@example.com",
		PaymentMethods: model.PaymentMethods{
			BankTransfer: model.BankTransfer{
				AccountName:   "Seller One",
				AccountNumber: "12345678",
				BankName:      "First Bank",
			},
		},
	})
	s.store.AddUser(model.User{UserID: "bidder1", Username: "bidder1", Email: "bidder1@example.com"})
	s.store.AddUser(model.User{UserID: "bidder2", Username: "bidder2", Email: "bidder2@example.com"})

	now := time.Now().UTC()
	s.store.AddAuction(model.Auction{
		AuctionID:   "auction1",
		Title:       "Antique Clock",
		Category:    "antiques",
		StartingBid: 100,
		EndTime:     now.Add(-time.Hour),
		CreatedBy:   "seller1",
	})

	bids := []model.Bid{
		{BidID: "bid1", AuctionID: "auction1", UserID: "bidder1", Amount: 120, CreatedAt: now.Add(-3 * time.Hour)},
		{BidID: "bid2", AuctionID: "auction1", UserID: "bidder2", Amount: 150, CreatedAt: now.Add(-2 * time.Hour)},
	}
	for _, b := range bids {
		if err := s.store.RecordBid(b); err != nil {
			t.Fatalf("failed to seed bid: %v", err)
		}
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
