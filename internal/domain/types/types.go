// Package types contains read shapes shared between the domain layers and
// the HTTP API.
package types

import "time"

// Standing is the current, derived snapshot of gold counts for a category.
// It is recomputed on every query and never persisted.
type Standing struct {
	CategoryID      string         `json:"category_id"`
	GoldCounts      map[string]int `json:"gold_counts"`
	CompletedEvents int            `json:"completed_event_count"`
	RemainingEvents int            `json:"remaining_event_count"`
	IsComplete      bool           `json:"is_complete"`
}

// Urgency buckets for rooting info ordering.
const (
	UrgencyToday    = "today"
	UrgencyThisWeek = "this_week"
	UrgencyLater    = "later"
)

// RemainingEvent is one not-yet-decided event shown to the user.
type RemainingEvent struct {
	Sport     string    `json:"sport"`
	Name      string    `json:"name"`
	GoldMedal time.Time `json:"gold_medal"`
}

// RootingInfo tells a user what to root for in one category.
type RootingInfo struct {
	CategoryID    string           `json:"category_id"`
	DisplayName   string           `json:"display_name"`
	Prediction    string           `json:"prediction"`
	CurrentLeader string           `json:"current_leader,omitempty"`
	UserIsLeading bool             `json:"user_is_leading"`
	Remaining     []RemainingEvent `json:"remaining_events"`
	Scenarios     []string         `json:"scenarios"`
	IsPossible    bool             `json:"is_possible"`
	Urgency       string           `json:"urgency"`
}

// UserScore is one row of a pool leaderboard.
type UserScore struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
}
