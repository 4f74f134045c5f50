package models

import "github.com/google/uuid"

// Skill listing moderation status constants.
const (
	ListingPending  = "pending"
	ListingApproved = "approved"
	ListingRejected = "rejected"
)

// SkillListing is a skill description submitted by a member, visible to
// others only after a moderator approves it.
type SkillListing struct {
	ID              uuid.UUID `json:"id"`
	MemberName      string    `json:"member_name"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

// IsPending returns true if the listing is still awaiting moderation.
func (s *SkillListing) IsPending() bool {
	return s.Status == ListingPending
}
