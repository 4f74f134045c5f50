// Package query derives filtered, searched and paginated views of swap
// requests. Everything here is pure: inputs are never mutated and no store
// access happens. Composition order is a contract: category filter, then
// search, then the past category's date sort, then pagination.
package query

import (
	"sort"
	"strings"

	"skillswap/internal/models"
)

// DefaultPageSize matches the card grid of the original screens.
const DefaultPageSize = 6

// Result is one page of a derived view.
type Result struct {
	Items      []models.SwapRequest
	TotalPages int
}

// FilterByCategory keeps the requests belonging to the given display
// category. The all category passes every record untouched. The past
// category is returned sorted by transition date, most recent first.
func FilterByCategory(records []models.SwapRequest, category string) []models.SwapRequest {
	if category == models.CategoryAll {
		return append([]models.SwapRequest(nil), records...)
	}

	var out []models.SwapRequest
	for _, r := range records {
		if r.Category() == category {
			out = append(out, r)
		}
	}
	if category == models.CategoryPast {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	}
	return out
}

// Search keeps the requests matching term with a case-insensitive substring
// match over the counterpart name, every offered skill, the wanted skill and
// the request message. An empty term matches everything.
func Search(records []models.SwapRequest, term string) []models.SwapRequest {
	if term == "" {
		return append([]models.SwapRequest(nil), records...)
	}
	needle := strings.ToLower(term)

	var out []models.SwapRequest
	for _, r := range records {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.SwapRequest, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	for _, skill := range r.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(r.SkillWanted), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Message), needle)
}

// Paginate returns the slice [(page-1)*size, page*size). It does not clamp:
// callers keep page within [1, TotalPages] and reset to 1 when the filter or
// search term changes (see View).
func Paginate(records []models.SwapRequest, pageSize, page int) []models.SwapRequest {
	if pageSize <= 0 || page <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return append([]models.SwapRequest(nil), records[start:end]...)
}

// TotalPages returns ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Do runs the full derivation pipeline and returns one page plus the page
// count of the filtered set.
func Do(records []models.SwapRequest, category, term string, pageSize, page int) Result {
	filtered := Search(FilterByCategory(records, category), term)
	return Result{
		Items:      Paginate(filtered, pageSize, page),
		TotalPages: TotalPages(len(filtered), pageSize),
	}
}
