package helpers

import (
	"time"

	"auction-settlement/internal/settlement"
	"auction-settlement/utils"
)

// ToBatchResultResponse converts a batch result into its wire shape
func ToBatchResultResponse(result settlement.BatchResult) *BatchResultResponse {
	return &BatchResultResponse{
		Processed: result.Processed,
		Settled:   result.Settled,
		NoWinner:  result.NoWinner,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
		StartedAt: result.StartedAt.UTC().Format(time.RFC3339),
		Duration:  result.Duration.String(),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
