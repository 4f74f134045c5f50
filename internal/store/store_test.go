package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"skillswap/internal/models"
)

func TestReplaceRequest_UnknownID(t *testing.T) {
	s := New()
	s.AddRequest(models.SwapRequest{ID: uuid.New(), Status: models.StatusPending})

	_, err := s.ReplaceRequest(uuid.New(), func(r *models.SwapRequest) error {
		t.Fatal("updater should not run for unknown id")
		return nil
	})
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("ReplaceRequest() error = %v, want ErrRequestNotFound", err)
	}
}

func TestReplaceRequest_UpdaterErrorAborts(t *testing.T) {
	s := New()
	id := uuid.New()
	s.AddRequest(models.SwapRequest{ID: id, Status: models.StatusPending, Message: "original"})

	boom := errors.New("boom")
	_, err := s.ReplaceRequest(id, func(r *models.SwapRequest) error {
		r.Message = "changed"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ReplaceRequest() error = %v, want %v", err, boom)
	}

	got, err := s.GetRequest(id)
	if err != nil {
		t.Fatalf("GetRequest() error = %v", err)
	}
	if got.Message != "original" {
		t.Errorf("Message = %q, want store unchanged after updater error", got.Message)
	}
}

func TestReplaceRequest_IDImmutable(t *testing.T) {
	s := New()
	id := uuid.New()
	s.AddRequest(models.SwapRequest{ID: id, Status: models.StatusPending})

	_, err := s.ReplaceRequest(id, func(r *models.SwapRequest) error {
		r.ID = uuid.New()
		r.Status = models.StatusAccepted
		return nil
	})
	if err != nil {
		t.Fatalf("ReplaceRequest() error = %v", err)
	}

	got, err := s.GetRequest(id)
	if err != nil {
		t.Fatalf("GetRequest() after id rewrite attempt: %v", err)
	}
	if got.Status != models.StatusAccepted {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusAccepted)
	}
}

func TestListRequests_ReturnsCopies(t *testing.T) {
	s := New()
	id := uuid.New()
	s.AddRequest(models.SwapRequest{ID: id, SkillsOffered: []string{"Guitar"}})

	list := s.ListRequests()
	list[0].SkillsOffered[0] = "Tampered"
	list[0].Status = models.StatusDiscarded

	got, _ := s.GetRequest(id)
	if got.SkillsOffered[0] != "Guitar" {
		t.Errorf("SkillsOffered[0] = %q, store record aliased by caller slice", got.SkillsOffered[0])
	}
	if got.Status != "" {
		t.Errorf("Status = %q, store record aliased by caller slice", got.Status)
	}
}

func TestListRequests_PreservesOrder(t *testing.T) {
	s := New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		s.AddRequest(models.SwapRequest{ID: id})
	}

	list := s.ListRequests()
	if len(list) != len(ids) {
		t.Fatalf("len = %d, want %d", len(list), len(ids))
	}
	for i, id := range ids {
		if list[i].ID != id {
			t.Errorf("list[%d].ID = %v, want %v", i, list[i].ID, id)
		}
	}
}

func TestCountRequestsByStatus(t *testing.T) {
	s := New()
	for _, status := range []string{
		models.StatusPending, models.StatusPending,
		models.StatusAccepted,
		models.StatusCompleted,
	} {
		s.AddRequest(models.SwapRequest{ID: uuid.New(), Status: status})
	}

	counts := s.CountRequestsByStatus()
	if counts[models.StatusPending] != 2 {
		t.Errorf("pending = %d, want 2", counts[models.StatusPending])
	}
	if counts[models.StatusAccepted] != 1 {
		t.Errorf("accepted = %d, want 1", counts[models.StatusAccepted])
	}
	if counts[models.StatusCompleted] != 1 {
		t.Errorf("completed = %d, want 1", counts[models.StatusCompleted])
	}
}

func TestReplaceMember_UnknownID(t *testing.T) {
	s := New()
	_, err := s.ReplaceMember(uuid.New(), func(m *models.Member) error { return nil })
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("ReplaceMember() error = %v, want ErrMemberNotFound", err)
	}
}

func TestGetListing_UnknownID(t *testing.T) {
	s := New()
	_, err := s.GetListing(uuid.New())
	if !errors.Is(err, ErrListingNotFound) {
		t.Errorf("GetListing() error = %v, want ErrListingNotFound", err)
	}
}
