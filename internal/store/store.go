// Package store owns the in-memory record collections for the session. All
// records are seeded at startup and mutated only through the Replace*
// primitives; callers always receive copies, never aliases into the store.
package store

import (
	"sync"

	"skillswap/internal/models"
)

// Store holds the authoritative ordered collections of session records.
// Reads may come from the metrics scrape goroutine, hence the lock.
type Store struct {
	mu       sync.RWMutex
	requests []models.SwapRequest
	members  []models.Member
	listings []models.SkillListing
	notices  []models.Notice
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

func cloneRequest(r models.SwapRequest) models.SwapRequest {
	out := r
	out.SkillsOffered = append([]string(nil), r.SkillsOffered...)
	if r.FeedbackRating != nil {
		v := *r.FeedbackRating
		out.FeedbackRating = &v
	}
	return out
}

func cloneMember(m models.Member) models.Member {
	out := m
	out.SkillsOffered = append([]string(nil), m.SkillsOffered...)
	out.SkillsWanted = append([]string(nil), m.SkillsWanted...)
	return out
}
