package store

import (
	"github.com/google/uuid"

	"skillswap/internal/models"
)

// AddMember appends a member to the store. Used by the seed loader.
func (s *Store) AddMember(m models.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, cloneMember(m))
}

// ListMembers returns copies of all members in insertion order.
func (s *Store) ListMembers() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, cloneMember(m))
	}
	return out
}

// GetMember retrieves a member by id.
func (s *Store) GetMember(id uuid.UUID) (models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return models.Member{}, ErrMemberNotFound
}

// ReplaceMember applies fn to a copy of the identified member and commits
// the result. An unknown id fails with ErrMemberNotFound; an error from fn
// aborts without mutating the store.
func (s *Store) ReplaceMember(id uuid.UUID, fn func(*models.Member) error) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.ID != id {
			continue
		}
		updated := cloneMember(m)
		if err := fn(&updated); err != nil {
			return models.Member{}, err
		}
		updated.ID = id
		s.members[i] = updated
		return cloneMember(updated), nil
	}
	return models.Member{}, ErrMemberNotFound
}
