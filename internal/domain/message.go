package domain

import "time"

// ReloadEvent is published after the store swaps in a fresh snapshot. The
// offline scrape/batch pipeline consumes it to confirm a dataset rollout.
type ReloadEvent struct {
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}
