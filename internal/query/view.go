package query

import "skillswap/internal/models"

// View tracks the presentation state of one request list: active category,
// search term and current page. Changing the category or the term resets the
// page to 1, which keeps the page number meaningful after the underlying
// result set changes shape.
type View struct {
	category string
	term     string
	page     int
	pageSize int
}

// NewView creates a view over the all category showing page 1.
func NewView(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{category: models.CategoryAll, page: 1, pageSize: pageSize}
}

// SetCategory switches the active category and resets the page.
func (v *View) SetCategory(category string) {
	if v.category == category {
		return
	}
	v.category = category
	v.page = 1
}

// SetTerm updates the search term and resets the page.
func (v *View) SetTerm(term string) {
	if v.term == term {
		return
	}
	v.term = term
	v.page = 1
}

// SetPage moves to the given page. Out-of-range values are ignored so the
// view never points past the end of the result set.
func (v *View) SetPage(records []models.SwapRequest, page int) {
	if page < 1 {
		return
	}
	filtered := Search(FilterByCategory(records, v.category), v.term)
	if total := TotalPages(len(filtered), v.pageSize); page > total {
		return
	}
	v.page = page
}

// Category returns the active category.
func (v *View) Category() string { return v.category }

// Term returns the active search term.
func (v *View) Term() string { return v.term }

// Page returns the current page number.
func (v *View) Page() int { return v.page }

// Apply derives the current page of results for this view.
func (v *View) Apply(records []models.SwapRequest) Result {
	return Do(records, v.category, v.term, v.pageSize, v.page)
}
