package store

import (
	"github.com/google/uuid"

	"skillswap/internal/models"
)

// AddListing appends a skill listing to the store. Used by the seed loader.
func (s *Store) AddListing(l models.SkillListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append(s.listings, l)
}

// ListListings returns copies of all skill listings in insertion order.
func (s *Store) ListListings() []models.SkillListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SkillListing, len(s.listings))
	copy(out, s.listings)
	return out
}

// GetListing retrieves a skill listing by id.
func (s *Store) GetListing(id uuid.UUID) (models.SkillListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return models.SkillListing{}, ErrListingNotFound
}

// ReplaceListing applies fn to a copy of the identified listing and commits
// the result. An unknown id fails with ErrListingNotFound; an error from fn
// aborts without mutating the store.
func (s *Store) ReplaceListing(id uuid.UUID, fn func(*models.SkillListing) error) (models.SkillListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listings {
		if l.ID != id {
			continue
		}
		updated := l
		if err := fn(&updated); err != nil {
			return models.SkillListing{}, err
		}
		updated.ID = id
		s.listings[i] = updated
		return updated, nil
	}
	return models.SkillListing{}, ErrListingNotFound
}
