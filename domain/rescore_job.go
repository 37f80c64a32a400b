package domain

import "time"

// Rescore job lifecycle, tracked in Redis while a batch runs in the
// background.
const (
	RescoreStatusPending  = "pending"
	RescoreStatusRunning  = "running"
	RescoreStatusDone     = "done"
	RescoreStatusFailed   = "failed"
	RescoreStatusCanceled = "canceled"
)

type RescoreJob struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Total      int       `json:"total"`
	Updated    int       `json:"updated"`
	Degraded   int       `json:"degraded"`
	Failed     int       `json:"failed"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}
