package models

import (
	"time"

	"github.com/google/uuid"
)

// Swap request status constants.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusDiscarded = "discarded"
)

// Display category constants. Pending maps to the pending status, Ongoing to
// accepted, and Past to the three terminal statuses.
const (
	CategoryAll     = "all"
	CategoryPending = "pending"
	CategoryOngoing = "ongoing"
	CategoryPast    = "past"
)

// SwapRequest represents one user's proposal to exchange skills with another.
// Name and Rating describe the counterpart; Message is the note they attached
// when sending the request. Feedback and FeedbackRating are only set by the
// accepted -> completed transition and never overwrite the original Message.
type SwapRequest struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Rating         float64   `json:"rating"`
	SkillsOffered  []string  `json:"skills_offered"`
	SkillWanted    string    `json:"skill_wanted"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"` // date of the last status transition, day precision
	FeedbackRating *float64  `json:"feedback_rating,omitempty"`
	Feedback       string    `json:"feedback,omitempty"`
}

// IsPending returns true if the request has not been acted on yet.
func (r *SwapRequest) IsPending() bool {
	return r.Status == StatusPending
}

// IsOngoing returns true if the request has been accepted but not closed out.
func (r *SwapRequest) IsOngoing() bool {
	return r.Status == StatusAccepted
}

// IsTerminal returns true if no further transition is possible.
func (r *SwapRequest) IsTerminal() bool {
	switch r.Status {
	case StatusRejected, StatusCompleted, StatusDiscarded:
		return true
	}
	return false
}

// Category returns the display category the request belongs to.
func (r *SwapRequest) Category() string {
	switch {
	case r.IsPending():
		return CategoryPending
	case r.IsOngoing():
		return CategoryOngoing
	default:
		return CategoryPast
	}
}
