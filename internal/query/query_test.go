package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func fixtures() []models.SwapRequest {
	return []models.SwapRequest{
		{ID: uuid.New(), Name: "Alice", SkillsOffered: []string{"Guitar"}, SkillWanted: "Python", Message: "evening sessions", Status: models.StatusPending, Date: day(1)},
		{ID: uuid.New(), Name: "Bob", SkillsOffered: []string{"Cooking"}, SkillWanted: "Guitar", Status: models.StatusAccepted, Date: day(2)},
		{ID: uuid.New(), Name: "Charlie", SkillsOffered: []string{"Yoga"}, SkillWanted: "SEO", Status: models.StatusCompleted, Date: day(5)},
		{ID: uuid.New(), Name: "Dave", SkillsOffered: []string{"SEO"}, SkillWanted: "Yoga", Status: models.StatusRejected, Date: day(9)},
		{ID: uuid.New(), Name: "Eve", SkillsOffered: []string{"Photoshop"}, SkillWanted: "Cooking", Status: models.StatusDiscarded, Date: day(3)},
	}
}

func TestFilterByCategory(t *testing.T) {
	records := fixtures()

	tests := []struct {
		name      string
		category  string
		wantNames []string
	}{
		{"pending", models.CategoryPending, []string{"Alice"}},
		{"ongoing", models.CategoryOngoing, []string{"Bob"}},
		{"past sorted by date desc", models.CategoryPast, []string{"Dave", "Charlie", "Eve"}},
		{"all passes every status", models.CategoryAll, []string{"Alice", "Bob", "Charlie", "Dave", "Eve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(records, tt.category)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("got[%d].Name = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

// Every request lands in exactly one of pending, ongoing and past.
func TestCategoryPartition(t *testing.T) {
	records := fixtures()

	seen := make(map[uuid.UUID]int)
	for _, category := range []string{models.CategoryPending, models.CategoryOngoing, models.CategoryPast} {
		for _, r := range FilterByCategory(records, category) {
			seen[r.ID]++
		}
	}

	if len(seen) != len(records) {
		t.Fatalf("partition covered %d records, want %d", len(seen), len(records))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("request %v appeared in %d categories, want exactly 1", id, count)
		}
	}
}

func TestSearch(t *testing.T) {
	records := fixtures()

	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{"empty term matches everything", "", []string{"Alice", "Bob", "Charlie", "Dave", "Eve"}},
		{"matches name", "alice", []string{"Alice"}},
		{"matches offered skill", "cooking", []string{"Bob", "Eve"}},
		{"case-insensitive wanted skill", "PYTHON", []string{"Alice"}},
		{"matches message", "EVENING", []string{"Alice"}},
		{"no match", "blacksmithing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(records, tt.term)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("got[%d].Name = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	var records []models.SwapRequest
	for i := 0; i < 10; i++ {
		records = append(records, models.SwapRequest{ID: uuid.New(), Name: fmt.Sprintf("user-%d", i)})
	}

	tests := []struct {
		name      string
		pageSize  int
		page      int
		wantFirst string
		wantLen   int
	}{
		{"first page", 6, 1, "user-0", 6},
		{"second page", 6, 2, "user-6", 4},
		{"page past the end", 6, 3, "", 0},
		{"zero page", 6, 0, "", 0},
		{"exact fit", 5, 2, "user-5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(records, tt.pageSize, tt.page)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].Name != tt.wantFirst {
				t.Errorf("got[0].Name = %q, want %q", got[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pageSize int
		expected int
	}{
		{"empty", 0, 6, 0},
		{"one partial page", 4, 6, 1},
		{"exact pages", 12, 6, 2},
		{"partial last page", 13, 6, 3},
		{"zero page size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.count, tt.pageSize); got != tt.expected {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.pageSize, got, tt.expected)
			}
		})
	}
}

func TestDo_CompositionOrder(t *testing.T) {
	records := fixtures()

	// Search term "o" hits several categories; within past, results must
	// still come out date-sorted before pagination slices them.
	got := Do(records, models.CategoryPast, "o", 1, 1)
	if got.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", got.TotalPages)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Dave" {
		t.Errorf("Items[0] = %+v, want Dave (most recent past match)", got.Items)
	}

	got = Do(records, models.CategoryPast, "o", 1, 3)
	if len(got.Items) != 1 || got.Items[0].Name != "Eve" {
		t.Errorf("page 3 Items[0] = %+v, want Eve (oldest past match)", got.Items)
	}
}

func TestView_ResetsPageOnChange(t *testing.T) {
	var records []models.SwapRequest
	for i := 0; i < 14; i++ {
		records = append(records, models.SwapRequest{ID: uuid.New(), Status: models.StatusPending})
	}

	v := NewView(6)
	v.SetCategory(models.CategoryPending)
	v.SetPage(records, 3)
	if v.Page() != 3 {
		t.Fatalf("Page() = %d, want 3", v.Page())
	}

	v.SetTerm("guitar")
	if v.Page() != 1 {
		t.Errorf("Page() = %d after term change, want reset to 1", v.Page())
	}

	v.SetPage(records, 2)
	if v.Page() != 1 {
		t.Errorf("Page() = %d, want 1: page 2 does not exist for this term", v.Page())
	}

	v.SetTerm("")
	v.SetPage(records, 2)
	v.SetCategory(models.CategoryOngoing)
	if v.Page() != 1 {
		t.Errorf("Page() = %d after category change, want reset to 1", v.Page())
	}
}

func TestView_SameValueDoesNotReset(t *testing.T) {
	var records []models.SwapRequest
	for i := 0; i < 14; i++ {
		records = append(records, models.SwapRequest{ID: uuid.New(), Status: models.StatusPending})
	}

	v := NewView(6)
	v.SetCategory(models.CategoryPending)
	v.SetPage(records, 2)

	v.SetCategory(models.CategoryPending)
	v.SetTerm("")
	if v.Page() != 2 {
		t.Errorf("Page() = %d, want 2: unchanged filter must not reset paging", v.Page())
	}
}
