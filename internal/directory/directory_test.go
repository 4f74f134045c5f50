package directory

import (
	"testing"

	"github.com/google/uuid"

	"skillswap/internal/models"
	"skillswap/internal/store"
)

func seedMembers(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()

	members := []models.Member{
		{Name: "Alice", SkillsOffered: []string{"Guitar"}, SkillsWanted: []string{"Python"}, Availability: models.AvailabilityWeekends, Public: true},
		{Name: "Bob", SkillsOffered: []string{"Cooking"}, SkillsWanted: []string{"Guitar"}, Availability: models.AvailabilityEvenings, Public: true},
		{Name: "Charlie", SkillsOffered: []string{"Yoga"}, SkillsWanted: []string{"SEO"}, Availability: models.AvailabilityWeekends, Public: true, Banned: true},
		{Name: "Dave", SkillsOffered: []string{"SEO"}, SkillsWanted: []string{"Yoga"}, Availability: models.AvailabilityFlexible, Public: false},
	}
	for _, m := range members {
		m.ID = uuid.New()
		s.AddMember(m)
	}
	return s
}

func TestBrowse_HidesBannedAndPrivate(t *testing.T) {
	d := New(seedMembers(t))

	got := d.Browse(Filter{Page: 1})
	if len(got.Items) != 2 {
		t.Fatalf("len = %d, want 2 (banned and private members hidden)", len(got.Items))
	}
	for _, m := range got.Items {
		if m.Name == "Charlie" || m.Name == "Dave" {
			t.Errorf("member %q should not be listed", m.Name)
		}
	}
}

func TestBrowse_SearchMatchesSkills(t *testing.T) {
	d := New(seedMembers(t))

	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{"offered skill", "cooking", []string{"Bob"}},
		{"wanted skill case-insensitive", "PYTHON", []string{"Alice"}},
		{"name", "ali", []string{"Alice"}},
		{"skill shared across members", "guitar", []string{"Alice", "Bob"}},
		{"no match", "welding", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Browse(Filter{Term: tt.term, Page: 1})
			if len(got.Items) != len(tt.wantNames) {
				t.Fatalf("len = %d, want %d", len(got.Items), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got.Items[i].Name != name {
					t.Errorf("Items[%d].Name = %q, want %q", i, got.Items[i].Name, name)
				}
			}
		})
	}
}

func TestBrowse_AvailabilityFilter(t *testing.T) {
	d := New(seedMembers(t))

	got := d.Browse(Filter{Availability: models.AvailabilityWeekends, Page: 1})
	if len(got.Items) != 1 || got.Items[0].Name != "Alice" {
		t.Fatalf("Items = %+v, want only Alice (Charlie is banned)", got.Items)
	}

	got = d.Browse(Filter{Availability: AvailabilityAll, Page: 1})
	if len(got.Items) != 2 {
		t.Errorf("len = %d with All filter, want 2", len(got.Items))
	}
}

func TestBrowse_Pagination(t *testing.T) {
	s := store.New()
	for i := 0; i < 8; i++ {
		s.AddMember(models.Member{ID: uuid.New(), Name: "member", Public: true})
	}
	d := New(s)

	got := d.Browse(Filter{PageSize: 6, Page: 1})
	if len(got.Items) != 6 || got.TotalPages != 2 {
		t.Fatalf("page 1: len = %d, TotalPages = %d, want 6 and 2", len(got.Items), got.TotalPages)
	}
	got = d.Browse(Filter{PageSize: 6, Page: 2})
	if len(got.Items) != 2 {
		t.Errorf("page 2: len = %d, want 2", len(got.Items))
	}
	got = d.Browse(Filter{PageSize: 6, Page: 3})
	if len(got.Items) != 0 {
		t.Errorf("page 3: len = %d, want 0", len(got.Items))
	}
}
