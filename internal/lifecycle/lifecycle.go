// Package lifecycle enforces the swap request state machine:
//
//	pending  -> accept  -> accepted
//	pending  -> reject  -> rejected   (terminal)
//	accepted -> complete -> completed (terminal)
//	accepted -> discard -> discarded  (terminal)
//
// Completion is two-phase: Complete signals that feedback is still needed and
// mutates nothing; CompleteWithFeedback performs the transition.
package lifecycle

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/metrics"
	"skillswap/internal/models"
	"skillswap/internal/store"
	"skillswap/internal/validation"
)

// Manager is the only component allowed to mutate swap requests.
type Manager struct {
	store *store.Store
	now   func() time.Time
}

// New creates a lifecycle manager over the given store.
func New(s *store.Store) *Manager {
	return NewWithClock(s, time.Now)
}

// NewWithClock creates a lifecycle manager with an injected clock so tests
// can pin transition dates.
func NewWithClock(s *store.Store, now func() time.Time) *Manager {
	return &Manager{store: s, now: now}
}

// PendingFeedback signals that completing a request needs a rating first.
// The request is left untouched; the caller collects the rating and calls
// CompleteWithFeedback.
type PendingFeedback struct {
	RequestID uuid.UUID
	Name      string
}

// Accept moves a pending request to accepted.
func (m *Manager) Accept(id uuid.UUID) (models.SwapRequest, error) {
	return m.transition("accept", id, models.StatusPending, models.StatusAccepted, nil)
}

// Reject moves a pending request to rejected.
func (m *Manager) Reject(id uuid.UUID) (models.SwapRequest, error) {
	return m.transition("reject", id, models.StatusPending, models.StatusRejected, nil)
}

// Discard moves an accepted request to discarded.
func (m *Manager) Discard(id uuid.UUID) (models.SwapRequest, error) {
	return m.transition("discard", id, models.StatusAccepted, models.StatusDiscarded, nil)
}

// Complete is the first phase of completion: it verifies the transition would
// be legal and asks the caller for a rating. The store is not mutated.
func (m *Manager) Complete(id uuid.UUID) (*PendingFeedback, error) {
	req, err := m.store.GetRequest(id)
	if err != nil {
		metrics.RecordTransition("complete", metrics.OutcomeNotFound)
		return nil, err
	}
	if req.Status != models.StatusAccepted {
		metrics.RecordTransition("complete", metrics.OutcomeInvalidTransition)
		return nil, ErrInvalidTransition
	}
	metrics.RecordTransition("complete", metrics.OutcomePendingFeedback)
	return &PendingFeedback{RequestID: req.ID, Name: req.Name}, nil
}

// CompleteWithFeedback is the second phase of completion: it validates the
// rating, moves an accepted request to completed and records the feedback.
// The original request message is preserved; feedback is stored separately.
func (m *Manager) CompleteWithFeedback(id uuid.UUID, rating float64, feedback string) (models.SwapRequest, error) {
	if !validation.ValidRating(rating) {
		metrics.RecordTransition("complete", metrics.OutcomeInvalidRating)
		return models.SwapRequest{}, ErrInvalidRating
	}
	return m.transition("complete", id, models.StatusAccepted, models.StatusCompleted, func(r *models.SwapRequest) {
		r.FeedbackRating = &rating
		r.Feedback = feedback
	})
}

// transition applies one legal edge of the state machine. The status guard
// and the date stamp run inside the store's replace primitive so the check
// and the write cannot be split.
func (m *Manager) transition(op string, id uuid.UUID, from, to string, extra func(*models.SwapRequest)) (models.SwapRequest, error) {
	updated, err := m.store.ReplaceRequest(id, func(r *models.SwapRequest) error {
		if r.Status != from {
			return ErrInvalidTransition
		}
		r.Status = to
		r.Date = dateOnly(m.now())
		if extra != nil {
			extra(r)
		}
		return nil
	})
	metrics.RecordTransition(op, outcomeFor(err))
	return updated, err
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, store.ErrRequestNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrInvalidTransition):
		return metrics.OutcomeInvalidTransition
	default:
		return metrics.OutcomeInvalidRating
	}
}

// dateOnly truncates a timestamp to calendar-day precision.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
