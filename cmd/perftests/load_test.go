package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumAuctions int
	ReadRatio   int
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupStore creates a store pre-filled with ended, unsettled auctions
func setupStore(numAuctions int) *repository.MemoryStore {
	store := repository.NewMemoryStore()
	now := time.Now().UTC()
	for i := 0; i < numAuctions; i++ {
		store.AddAuction(model.Auction{
			AuctionID:   fmt.Sprintf("auction_%d", i),
			Title:       fmt.Sprintf("title_%d", i),
			Description: "Load test auction",
			StartingBid: 100,
			EndTime:     now.Add(-time.Hour),
			CreatedBy:   "seller",
		})
	}
	return store
}

// Benchmark_Load_SettlementStore runs multiple scenarios against the
// store operations the sweep leans on hardest: claim/release contention
// mixed with eligibility scans and auction reads.
func Benchmark_Load_SettlementStore(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-ClaimHeavy", 200, 0, false},
		{"High-Contention-ClaimHeavy", 10, 0, false},
		{"Mixed-Workload", 50, 7, false},
		{"ReadHeavy", 50, 9, false},
		{"Edge-Case-SingleAuction", 1, 5, false},
		{"Peak-Burst", 50, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	store := setupStore(s.NumAuctions)

	var totalOps, successfulClaims, lostClaims, totalReads int64
	auctionClaims := make([]int64, s.NumAuctions)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionIndex := rnd.Intn(s.NumAuctions)
			auctionID := fmt.Sprintf("auction_%d", auctionIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if opType%2 == 0 {
					if _, err := store.GetAuction(auctionID); err != nil {
						b.Logf("ignored read error: %v", err)
					}
				} else {
					if _, err := store.EndedUnsettled(time.Now().UTC()); err != nil {
						b.Logf("ignored scan error: %v", err)
					}
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				claimed, err := store.ClaimSettlement(auctionID)
				if err != nil {
					b.Logf("ignored claim error: %v", err)
					atomic.AddInt64(&lostClaims, 1)
				} else if claimed {
					atomic.AddInt64(&successfulClaims, 1)
					atomic.AddInt64(&auctionClaims[auctionIndex], 1)
					if err := store.ReleaseSettlement(auctionID); err != nil {
						b.Logf("ignored release error: %v", err)
					}
				} else {
					atomic.AddInt64(&lostClaims, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Won Claims: %d | Lost Claims: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulClaims, lostClaims, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range auctionClaims {
		if v > 0 {
			b.Logf("Auction %d won claims: %d", i, v)
		}
	}
}
