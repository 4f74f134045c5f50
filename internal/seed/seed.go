// Package seed fills the store at startup, either from an optional YAML file
// or from the built-in defaults. This is the only place records are created;
// at runtime the store is mutated exclusively through lifecycle operations.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"skillswap/internal/models"
	"skillswap/internal/store"
)

// File is the structure of a seed YAML file.
type File struct {
	Members  []MemberSeed  `yaml:"members"`
	Requests []RequestSeed `yaml:"requests"`
	Listings []ListingSeed `yaml:"listings"`
}

// MemberSeed defines one member record in the seed file.
type MemberSeed struct {
	Name          string   `yaml:"name"`
	Email         string   `yaml:"email"`
	Location      string   `yaml:"location,omitempty"`
	Bio           string   `yaml:"bio,omitempty"`
	SkillsOffered []string `yaml:"skills_offered"`
	SkillsWanted  []string `yaml:"skills_wanted"`
	Availability  string   `yaml:"availability,omitempty"`
	Rating        float64  `yaml:"rating,omitempty"`
	Public        *bool    `yaml:"public,omitempty"` // default true
	Banned        bool     `yaml:"banned,omitempty"`
	BanReason     string   `yaml:"ban_reason,omitempty"`
}

// RequestSeed defines one swap request record in the seed file. Seeded
// requests may carry any status so every display category has content.
type RequestSeed struct {
	Name           string   `yaml:"name"`
	Rating         float64  `yaml:"rating,omitempty"`
	SkillsOffered  []string `yaml:"skills_offered"`
	SkillWanted    string   `yaml:"skill_wanted"`
	Message        string   `yaml:"message,omitempty"`
	Status         string   `yaml:"status,omitempty"` // default pending
	Date           string   `yaml:"date,omitempty"`   // 2006-01-02
	FeedbackRating *float64 `yaml:"feedback_rating,omitempty"`
	Feedback       string   `yaml:"feedback,omitempty"`
}

// ListingSeed defines one skill listing record in the seed file.
type ListingSeed struct {
	Member          string `yaml:"member"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description,omitempty"`
	Status          string `yaml:"status,omitempty"` // default pending
	RejectionReason string `yaml:"rejection_reason,omitempty"`
}

// Load reads a seed file. Returns nil without error if the file doesn't
// exist, in which case callers fall back to Default.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Seed file is optional
			return nil, nil
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Populate converts the seed records and adds them to the store. A nil file
// populates the built-in defaults.
func Populate(s *store.Store, f *File) error {
	if f == nil {
		f = Default()
	}

	for _, m := range f.Members {
		public := true
		if m.Public != nil {
			public = *m.Public
		}
		s.AddMember(models.Member{
			ID:            uuid.New(),
			Name:          m.Name,
			Email:         m.Email,
			Location:      m.Location,
			Bio:           m.Bio,
			SkillsOffered: m.SkillsOffered,
			SkillsWanted:  m.SkillsWanted,
			Availability:  m.Availability,
			Rating:        m.Rating,
			Public:        public,
			Banned:        m.Banned,
			BanReason:     m.BanReason,
		})
	}

	for i, r := range f.Requests {
		status := r.Status
		if status == "" {
			status = models.StatusPending
		}
		if !validRequestStatus(status) {
			return fmt.Errorf("request %d (%s): unknown status %q", i, r.Name, status)
		}
		date, err := parseDate(r.Date)
		if err != nil {
			return fmt.Errorf("request %d (%s): %w", i, r.Name, err)
		}
		s.AddRequest(models.SwapRequest{
			ID:             uuid.New(),
			Name:           r.Name,
			Rating:         r.Rating,
			SkillsOffered:  r.SkillsOffered,
			SkillWanted:    r.SkillWanted,
			Message:        r.Message,
			Status:         status,
			Date:           date,
			FeedbackRating: r.FeedbackRating,
			Feedback:       r.Feedback,
		})
	}

	for i, l := range f.Listings {
		status := l.Status
		if status == "" {
			status = models.ListingPending
		}
		if !validListingStatus(status) {
			return fmt.Errorf("listing %d (%s): unknown status %q", i, l.Name, status)
		}
		s.AddListing(models.SkillListing{
			ID:              uuid.New(),
			MemberName:      l.Member,
			Name:            l.Name,
			Description:     l.Description,
			Status:          status,
			RejectionReason: l.RejectionReason,
		})
	}

	return nil
}

func validRequestStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusAccepted, models.StatusRejected,
		models.StatusCompleted, models.StatusDiscarded:
		return true
	}
	return false
}

func validListingStatus(status string) bool {
	switch status {
	case models.ListingPending, models.ListingApproved, models.ListingRejected:
		return true
	}
	return false
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}
