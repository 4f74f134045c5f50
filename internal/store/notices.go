package store

import "skillswap/internal/models"

// AddNotice appends a platform notice to the store.
func (s *Store) AddNotice(n models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
}

// ListNotices returns copies of all notices in insertion order.
func (s *Store) ListNotices() []models.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}
