package store

import (
	"github.com/google/uuid"

	"skillswap/internal/models"
)

// AddRequest appends a swap request to the store. Used by the seed loader.
func (s *Store) AddRequest(req models.SwapRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, cloneRequest(req))
}

// ListRequests returns copies of all swap requests in insertion order.
func (s *Store) ListRequests() []models.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SwapRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, cloneRequest(r))
	}
	return out
}

// GetRequest retrieves a swap request by id.
func (s *Store) GetRequest(id uuid.UUID) (models.SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.requests {
		if r.ID == id {
			return cloneRequest(r), nil
		}
	}
	return models.SwapRequest{}, ErrRequestNotFound
}

// ReplaceRequest applies fn to a copy of the identified request and commits
// the result. An unknown id fails with ErrRequestNotFound; an error from fn
// aborts without mutating the store.
func (s *Store) ReplaceRequest(id uuid.UUID, fn func(*models.SwapRequest) error) (models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID != id {
			continue
		}
		updated := cloneRequest(r)
		if err := fn(&updated); err != nil {
			return models.SwapRequest{}, err
		}
		updated.ID = id // ids are immutable
		s.requests[i] = updated
		return cloneRequest(updated), nil
	}
	return models.SwapRequest{}, ErrRequestNotFound
}

// CountRequestsByStatus returns the number of requests per status. Used by
// the metrics collector on each scrape.
func (s *Store) CountRequestsByStatus() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, r := range s.requests {
		counts[r.Status]++
	}
	return counts
}
