// Package profile applies member-initiated edits to their own profile:
// details, skill lists, availability and directory visibility.
package profile

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/models"
	"skillswap/internal/store"
	"skillswap/internal/validation"
)

var (
	ErrNameRequired        = errors.New("display name is required")
	ErrInvalidSkill        = errors.New("skill name is not valid")
	ErrDuplicateSkill      = errors.New("skill is already on the list")
	ErrSkillNotListed      = errors.New("skill is not on the list")
	ErrInvalidAvailability = errors.New("unknown availability value")
)

// Service edits member profiles through the store's replace primitive.
type Service struct {
	store *store.Store
}

// New creates a profile service over the given store.
func New(s *store.Store) *Service {
	return &Service{store: s}
}

// UpdateDetails sets the free-form profile fields.
func (s *Service) UpdateDetails(id uuid.UUID, name, location, bio string) (models.Member, error) {
	if strings.TrimSpace(name) == "" {
		return models.Member{}, ErrNameRequired
	}
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		m.Name = strings.TrimSpace(name)
		m.Location = strings.TrimSpace(location)
		m.Bio = strings.TrimSpace(bio)
		return nil
	})
}

// AddOfferedSkill appends a skill the member can teach.
func (s *Service) AddOfferedSkill(id uuid.UUID, skill string) (models.Member, error) {
	return s.addSkill(id, skill, func(m *models.Member) *[]string { return &m.SkillsOffered })
}

// AddWantedSkill appends a skill the member wants to learn.
func (s *Service) AddWantedSkill(id uuid.UUID, skill string) (models.Member, error) {
	return s.addSkill(id, skill, func(m *models.Member) *[]string { return &m.SkillsWanted })
}

// RemoveOfferedSkill removes a skill from the offered list.
func (s *Service) RemoveOfferedSkill(id uuid.UUID, skill string) (models.Member, error) {
	return s.removeSkill(id, skill, func(m *models.Member) *[]string { return &m.SkillsOffered })
}

// RemoveWantedSkill removes a skill from the wanted list.
func (s *Service) RemoveWantedSkill(id uuid.UUID, skill string) (models.Member, error) {
	return s.removeSkill(id, skill, func(m *models.Member) *[]string { return &m.SkillsWanted })
}

// SetAvailability updates the member's schedule preference.
func (s *Service) SetAvailability(id uuid.UUID, value string) (models.Member, error) {
	if !validation.ValidAvailability(value) {
		return models.Member{}, ErrInvalidAvailability
	}
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		m.Availability = value
		return nil
	})
}

// SetVisibility toggles whether the member appears in the directory.
func (s *Service) SetVisibility(id uuid.UUID, public bool) (models.Member, error) {
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		m.Public = public
		return nil
	})
}

func (s *Service) addSkill(id uuid.UUID, skill string, list func(*models.Member) *[]string) (models.Member, error) {
	skill = validation.NormalizeSkill(skill)
	if !validation.ValidateSkill(skill) {
		return models.Member{}, ErrInvalidSkill
	}
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		target := list(m)
		for _, existing := range *target {
			if strings.EqualFold(existing, skill) {
				return ErrDuplicateSkill
			}
		}
		*target = append(*target, skill)
		return nil
	})
}

func (s *Service) removeSkill(id uuid.UUID, skill string, list func(*models.Member) *[]string) (models.Member, error) {
	skill = validation.NormalizeSkill(skill)
	return s.store.ReplaceMember(id, func(m *models.Member) error {
		target := list(m)
		for i, existing := range *target {
			if strings.EqualFold(existing, skill) {
				*target = append((*target)[:i], (*target)[i+1:]...)
				return nil
			}
		}
		return ErrSkillNotListed
	})
}
