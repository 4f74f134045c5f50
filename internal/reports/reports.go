// Package reports renders the admin activity report as an Excel workbook.
// The workbook is returned as a buffer with a suggested filename; where it
// ends up is the caller's concern.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"skillswap/internal/models"
	"skillswap/internal/store"
)

// Sheet names in workbook order.
const (
	sheetMembers  = "Members"
	sheetListings = "Skill Listings"
	sheetRequests = "Swap Requests"
	sheetFeedback = "Feedback"
)

// Builder assembles activity reports from the store.
type Builder struct {
	store *store.Store
	now   func() time.Time
}

// New creates a report builder over the given store.
func New(s *store.Store) *Builder {
	return NewWithClock(s, time.Now)
}

// NewWithClock creates a report builder with an injected clock.
func NewWithClock(s *store.Store, now func() time.Time) *Builder {
	return &Builder{store: s, now: now}
}

// BuildActivityReport renders one workbook covering members, skill listings,
// swap requests and completion feedback. It returns the file content and a
// date-stamped suggested filename.
func (b *Builder) BuildActivityReport() (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	if err := b.writeMembers(f, headerStyle); err != nil {
		return nil, "", err
	}
	if err := b.writeListings(f, headerStyle); err != nil {
		return nil, "", err
	}
	if err := b.writeRequests(f, headerStyle); err != nil {
		return nil, "", err
	}
	if err := b.writeFeedback(f, headerStyle); err != nil {
		return nil, "", err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet(f.GetSheetName(0)); err != nil {
		return nil, "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("skillswap-activity-%s.xlsx", b.now().Format("2006-01-02"))
	return buf, filename, nil
}

func writeSheet(f *excelize.File, name string, headerStyle int, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header for %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d for %s: %w", i+2, name, err)
		}
	}
	return nil
}

func (b *Builder) writeMembers(f *excelize.File, headerStyle int) error {
	header := []any{"Name", "Email", "Location", "Availability", "Rating", "Public", "Banned", "Ban Reason"}
	var rows [][]any
	for _, m := range b.store.ListMembers() {
		rows = append(rows, []any{m.Name, m.Email, m.Location, m.Availability, m.Rating, m.Public, m.Banned, m.BanReason})
	}
	return writeSheet(f, sheetMembers, headerStyle, header, rows)
}

func (b *Builder) writeListings(f *excelize.File, headerStyle int) error {
	header := []any{"Member", "Skill", "Description", "Status", "Rejection Reason"}
	var rows [][]any
	for _, l := range b.store.ListListings() {
		rows = append(rows, []any{l.MemberName, l.Name, l.Description, l.Status, l.RejectionReason})
	}
	return writeSheet(f, sheetListings, headerStyle, header, rows)
}

func (b *Builder) writeRequests(f *excelize.File, headerStyle int) error {
	header := []any{"Counterpart", "Skill Wanted", "Status", "Last Transition"}
	var rows [][]any
	for _, r := range b.store.ListRequests() {
		rows = append(rows, []any{r.Name, r.SkillWanted, r.Status, r.Date.Format("2006-01-02")})
	}
	return writeSheet(f, sheetRequests, headerStyle, header, rows)
}

func (b *Builder) writeFeedback(f *excelize.File, headerStyle int) error {
	header := []any{"Counterpart", "Rating", "Feedback", "Completed On"}
	var rows [][]any
	for _, r := range b.store.ListRequests() {
		if r.Status != models.StatusCompleted || r.FeedbackRating == nil {
			continue
		}
		rows = append(rows, []any{r.Name, *r.FeedbackRating, r.Feedback, r.Date.Format("2006-01-02")})
	}
	return writeSheet(f, sheetFeedback, headerStyle, header, rows)
}
