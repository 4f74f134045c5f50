// Package directory derives the browsable member listing: who shows up,
// search, availability filtering and pagination, mirroring the platform's
// home screen. Like the query engine it never mutates the store.
package directory

import (
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/query"
	"skillswap/internal/store"
)

// AvailabilityAll disables availability filtering.
const AvailabilityAll = "All"

// Filter describes one directory request.
type Filter struct {
	Term         string
	Availability string
	PageSize     int
	Page         int
}

// Result is one page of the member directory.
type Result struct {
	Items      []models.Member
	TotalPages int
}

// Directory lists members for browsing.
type Directory struct {
	store *store.Store
}

// New creates a directory over the given store.
func New(s *store.Store) *Directory {
	return &Directory{store: s}
}

// Browse returns the requested directory page. Private and banned members
// never appear. An empty or "All" availability matches every member.
func (d *Directory) Browse(f Filter) Result {
	if f.PageSize <= 0 {
		f.PageSize = query.DefaultPageSize
	}

	var filtered []models.Member
	for _, m := range d.store.ListMembers() {
		if !m.Listed() {
			continue
		}
		if f.Availability != "" && f.Availability != AvailabilityAll && m.Availability != f.Availability {
			continue
		}
		if !matches(m, strings.ToLower(f.Term)) {
			continue
		}
		filtered = append(filtered, m)
	}

	start := (f.Page - 1) * f.PageSize
	items := []models.Member(nil)
	if f.Page >= 1 && start < len(filtered) {
		end := start + f.PageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		items = filtered[start:end]
	}

	return Result{
		Items:      items,
		TotalPages: query.TotalPages(len(filtered), f.PageSize),
	}
}

// matches searches the member name and both skill lists.
func matches(m models.Member, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), needle) {
		return true
	}
	for _, skill := range m.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	for _, skill := range m.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}
