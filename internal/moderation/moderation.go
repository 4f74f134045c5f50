// Package moderation implements the admin operations: banning members,
// approving or rejecting skill listings, and platform notices.
package moderation

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/models"
	"skillswap/internal/store"
)

var (
	ErrReasonRequired    = errors.New("a reason is required for this action")
	ErrAlreadyBanned     = errors.New("member is already banned")
	ErrNotBanned         = errors.New("member is not banned")
	ErrListingNotPending = errors.New("skill listing has already been moderated")
	ErrEmptyNotice       = errors.New("notice text is empty")
)

// Service performs admin moderation against the store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// New creates a moderation service over the given store.
func New(s *store.Store) *Service {
	return NewWithClock(s, time.Now)
}

// NewWithClock creates a moderation service with an injected clock.
func NewWithClock(s *store.Store, now func() time.Time) *Service {
	return &Service{store: s, now: now}
}

// BanMember bans a member with a required reason. Banned members disappear
// from the directory but their records and requests are kept.
func (s *Service) BanMember(id uuid.UUID, reason string) (models.Member, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Member{}, ErrReasonRequired
	}
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		if m.Banned {
			return ErrAlreadyBanned
		}
		m.Banned = true
		m.BanReason = reason
		return nil
	})
}

// UnbanMember lifts a ban and clears the recorded reason.
func (s *Service) UnbanMember(id uuid.UUID) (models.Member, error) {
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		if !m.Banned {
			return ErrNotBanned
		}
		m.Banned = false
		m.BanReason = ""
		return nil
	})
}

// PendingListings returns the skill listings still awaiting moderation, in
// submission order.
func (s *Service) PendingListings() []models.SkillListing {
	var out []models.SkillListing
	for _, l := range s.store.ListListings() {
		if l.IsPending() {
			out = append(out, l)
		}
	}
	return out
}

// ApproveListing approves a pending skill listing.
func (s *Service) ApproveListing(id uuid.UUID) (models.SkillListing, error) {
	return s.store.ReplaceListing(id, func(l *models.SkillListing) error {
		if !l.IsPending() {
			return ErrListingNotPending
		}
		l.Status = models.ListingApproved
		return nil
	})
}

// RejectListing rejects a pending skill listing with a required reason.
func (s *Service) RejectListing(id uuid.UUID, reason string) (models.SkillListing, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.SkillListing{}, ErrReasonRequired
	}
	return s.store.ReplaceListing(id, func(l *models.SkillListing) error {
		if !l.IsPending() {
			return ErrListingNotPending
		}
		l.Status = models.ListingRejected
		l.RejectionReason = reason
		return nil
	})
}

// PostNotice publishes a platform-wide announcement.
func (s *Service) PostNotice(text string) (models.Notice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Notice{}, ErrEmptyNotice
	}
	n := models.Notice{ID: uuid.New(), Text: text, PostedAt: s.now()}
	s.store.AddNotice(n)
	return n, nil
}

// Notices returns all announcements, newest first.
func (s *Service) Notices() []models.Notice {
	out := s.store.ListNotices()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out
}
