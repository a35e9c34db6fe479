package handler

import (
	"context"
	"net/http"

	"auction-settlement/internal/settlement"
	"auction-settlement/services/settlement/helpers"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=settlement_handler.go -destination=mock_trigger.go -package=handler

// SettlementTrigger is the scheduler surface the handlers drive
type SettlementTrigger interface {
	RunOnce(ctx context.Context) (settlement.BatchResult, error)
	LastResult() (settlement.BatchResult, bool)
}

type SettlementHandler struct {
	trigger SettlementTrigger
}

func NewSettlementHandler(trigger SettlementTrigger) *SettlementHandler {
	return &SettlementHandler{trigger: trigger}
}

// HealthHandler handles GET /healthz
func (h *SettlementHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"healthy": true}, "settlement engine running")
}

// StatusHandler handles GET /settlement/status
func (h *SettlementHandler) StatusHandler(c *gin.Context) {
	resp := helpers.StatusResponse{Running: true}
	if last, ok := h.trigger.LastResult(); ok {
		resp.LastBatch = helpers.ToBatchResultResponse(last)
	}

	utils.JSONResponse(c, http.StatusOK, resp, "settlement status retrieved successfully")
}

// RunNowHandler handles POST /settlement/run. It fires a batch outside the
// timer cadence; racing the timer is safe because auctions are claimed with
// a compare-and-set.
func (h *SettlementHandler) RunNowHandler(c *gin.Context) {
	result, err := h.trigger.RunOnce(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "settlement run failed")
		utils.Error("RunNowHandler: settlement run failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	resp := helpers.ToBatchResultResponse(result)
	utils.JSONResponse(c, http.StatusOK, resp, "settlement run completed")
	helpers.LogSuccess("RunNowHandler", "settlement run completed", map[string]any{
		"processed": result.Processed,
		"settled":   result.Settled,
		"failed":    result.Failed,
	})
}
