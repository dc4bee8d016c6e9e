package domain

import "time"

// SavedDecision is a decision kept for later replay.
// Only the input is stored; timelines are regenerated on load.
type SavedDecision struct {
	ID        string    `json:"id"`
	Decision  Decision  `json:"decision"`
	CreatedAt time.Time `json:"created_at"`
}
