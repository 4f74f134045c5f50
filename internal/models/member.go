package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability constants for member schedules.
const (
	AvailabilityWeekdays = "Weekdays"
	AvailabilityWeekends = "Weekends"
	AvailabilityMornings = "Mornings"
	AvailabilityEvenings = "Evenings"
	AvailabilityFlexible = "Flexible"
)

// Availabilities lists the valid availability values in display order.
var Availabilities = []string{
	AvailabilityWeekdays,
	AvailabilityWeekends,
	AvailabilityMornings,
	AvailabilityEvenings,
	AvailabilityFlexible,
}

// Member represents a platform user who offers and seeks skills.
type Member struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	Bio           string    `json:"bio"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  string    `json:"availability"`
	Rating        float64   `json:"rating"`
	Public        bool      `json:"public"`
	Banned        bool      `json:"banned"`
	BanReason     string    `json:"ban_reason,omitempty"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Listed returns true if the member should appear in the public directory.
func (m *Member) Listed() bool {
	return m.Public && !m.Banned
}
