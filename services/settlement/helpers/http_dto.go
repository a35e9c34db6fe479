package helpers

// Response DTOs for the operational endpoints
type BatchResultResponse struct {
	Processed int    `json:"processed"`
	Settled   int    `json:"settled"`
	NoWinner  int    `json:"no_winner"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
	StartedAt string `json:"started_at"`
	Duration  string `json:"duration"`
}

type StatusResponse struct {
	Running   bool                 `json:"running"`
	LastBatch *BatchResultResponse `json:"last_batch,omitempty"`
}
