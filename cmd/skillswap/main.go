package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/config"
	"skillswap/internal/directory"
	"skillswap/internal/lifecycle"
	"skillswap/internal/metrics"
	"skillswap/internal/models"
	"skillswap/internal/moderation"
	"skillswap/internal/profile"
	"skillswap/internal/query"
	"skillswap/internal/reports"
	"skillswap/internal/seed"
	"skillswap/internal/store"
)

// session holds everything one interactive run needs, including the number
// -> id mappings from the most recent listings so commands can reference
// records by position instead of UUID.
type session struct {
	cfg *config.Config

	store     *store.Store
	lifecycle *lifecycle.Manager
	directory *directory.Directory
	profiles  *profile.Service
	admin     *moderation.Service
	reporter  *reports.Builder

	view *query.View

	lastRequests []uuid.UUID
	lastMembers  []uuid.UUID
	lastListings []uuid.UUID
}

func main() {
	cfg := config.Load()

	st := store.New()
	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	if err := seed.Populate(st, seedFile); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}
	if seedFile == nil {
		log.Printf("Seed file %s not found, using built-in defaults", cfg.SeedFile)
	}

	metrics.Init(st)

	s := &session{
		cfg:       cfg,
		store:     st,
		lifecycle: lifecycle.New(st),
		directory: directory.New(st),
		profiles:  profile.New(st),
		admin:     moderation.New(st),
		reporter:  reports.New(st),
		view:      query.NewView(cfg.PageSize),
	}

	fmt.Printf("%s: %d requests, %d members seeded. Type \"help\" for commands.\n",
		cfg.SiteTitle, len(st.ListRequests()), len(st.ListMembers()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		s.dispatch(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Input error: %v", err)
	}
}

func (s *session) dispatch(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "help":
		printHelp()
	case "requests":
		err = s.showRequests(args)
	case "search":
		s.view.SetTerm(strings.Join(args, " "))
		err = s.showRequests(nil)
	case "page":
		err = s.setPage(args)
	case "view":
		err = s.showRequest(args)
	case "accept", "reject", "complete", "discard":
		err = s.transition(cmd, args)
	case "members":
		err = s.showMembers(args)
	case "offer", "want", "unoffer", "unwant":
		err = s.editSkills(cmd, args)
	case "avail":
		err = s.setAvailability(args)
	case "hide", "show":
		err = s.setVisibility(args, cmd == "show")
	case "ban":
		err = s.ban(args)
	case "unban":
		err = s.unban(args)
	case "listings":
		s.showListings()
	case "approve":
		err = s.moderateListing(args, "", true)
	case "deny":
		err = s.denyListing(args)
	case "notice":
		err = s.postNotice(args)
	case "notices":
		s.showNotices()
	case "report":
		err = s.writeReport()
	default:
		fmt.Printf("unknown command %q, type \"help\"\n", cmd)
		return
	}
	if err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func printHelp() {
	fmt.Print(`requests [all|pending|ongoing|past]  list swap requests
search [term]                        set or clear the search term
page <n>                             jump to a result page
view <n>                             show full request details
accept|reject|complete|discard <n>   run a lifecycle operation
members [term]                       browse the member directory
offer|want <n> <skill>               add a skill to a member profile
unoffer|unwant <n> <skill>           remove a skill from a member profile
avail <n> <value>                    set a member's availability
hide <n>  /  show <n>                toggle a member's profile visibility
ban <n> <reason>  /  unban <n>       moderate members
listings                             show pending skill listings
approve <n>  /  deny <n> <reason>    moderate skill listings
notice <text>  /  notices            platform announcements
report                               write the activity workbook
quit                                 leave
`)
}

func (s *session) showRequests(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case models.CategoryAll, models.CategoryPending, models.CategoryOngoing, models.CategoryPast:
			s.view.SetCategory(args[0])
		default:
			return fmt.Errorf("unknown category %q", args[0])
		}
	}

	result := s.view.Apply(s.store.ListRequests())
	s.lastRequests = nil
	if len(result.Items) == 0 {
		fmt.Println("no requests matching your criteria")
		return nil
	}
	for i, r := range result.Items {
		s.lastRequests = append(s.lastRequests, r.ID)
		fmt.Printf("%2d) %-10s %-10s offers %-30s wants %-15s %s\n",
			i+1, r.Name, "["+r.Status+"]", strings.Join(r.SkillsOffered, ", "), r.SkillWanted, r.Date.Format("2006-01-02"))
	}
	fmt.Printf("page %d of %d (category %s", s.view.Page(), result.TotalPages, s.view.Category())
	if s.view.Term() != "" {
		fmt.Printf(", search %q", s.view.Term())
	}
	fmt.Println(")")
	return nil
}

func (s *session) setPage(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid page %q", args[0])
	}
	s.view.SetPage(s.store.ListRequests(), n)
	return s.showRequests(nil)
}

func (s *session) showRequest(args []string) error {
	id, err := pick(s.lastRequests, args)
	if err != nil {
		return err
	}
	r, err := s.store.GetRequest(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (rating %.1f)\n", r.Name, r.Rating)
	fmt.Printf("  offers:  %s\n", strings.Join(r.SkillsOffered, ", "))
	fmt.Printf("  wants:   %s\n", r.SkillWanted)
	fmt.Printf("  status:  %s (%s)\n", r.Status, r.Date.Format("2006-01-02"))
	if r.Message != "" {
		fmt.Printf("  message: %s\n", r.Message)
	}
	if r.FeedbackRating != nil {
		fmt.Printf("  feedback: %.1f/5 %q\n", *r.FeedbackRating, r.Feedback)
	}
	return nil
}

func (s *session) transition(op string, args []string) error {
	id, err := pick(s.lastRequests, args)
	if err != nil {
		return err
	}

	switch op {
	case "accept":
		_, err = s.lifecycle.Accept(id)
	case "reject":
		_, err = s.lifecycle.Reject(id)
	case "discard":
		_, err = s.lifecycle.Discard(id)
	case "complete":
		return s.complete(id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("request %sed\n", strings.TrimSuffix(op, "e"))
	return s.showRequests(nil)
}

// complete runs the two-phase completion flow: the lifecycle manager signals
// that feedback is needed, the rating is collected, then the transition runs.
func (s *session) complete(id uuid.UUID) error {
	signal, err := s.lifecycle.Complete(id)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Completing the swap with %s.\nRating (1-5): ", signal.Name)
	ratingLine, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(ratingLine), 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q", strings.TrimSpace(ratingLine))
	}
	fmt.Print("Feedback (optional): ")
	feedback, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	if _, err := s.lifecycle.CompleteWithFeedback(id, rating, strings.TrimSpace(feedback)); err != nil {
		return err
	}
	fmt.Println("request completed")
	return s.showRequests(nil)
}

func (s *session) showMembers(args []string) error {
	result := s.directory.Browse(directory.Filter{
		Term:     strings.Join(args, " "),
		PageSize: s.cfg.PageSize,
		Page:     1,
	})
	s.lastMembers = nil
	if len(result.Items) == 0 {
		fmt.Println("no members found")
		return nil
	}
	for i, m := range result.Items {
		s.lastMembers = append(s.lastMembers, m.ID)
		fmt.Printf("%2d) %-10s %-12s offers %-35s wants %s\n",
			i+1, m.Name, m.Availability, strings.Join(m.SkillsOffered, ", "), strings.Join(m.SkillsWanted, ", "))
	}
	return nil
}

func (s *session) editSkills(op string, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s <n> <skill>", op)
	}
	id, err := pick(s.lastMembers, args[:1])
	if err != nil {
		return err
	}
	skill := strings.Join(args[1:], " ")

	var m models.Member
	switch op {
	case "offer":
		m, err = s.profiles.AddOfferedSkill(id, skill)
	case "want":
		m, err = s.profiles.AddWantedSkill(id, skill)
	case "unoffer":
		m, err = s.profiles.RemoveOfferedSkill(id, skill)
	case "unwant":
		m, err = s.profiles.RemoveWantedSkill(id, skill)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s now offers %s, wants %s\n",
		m.Name, strings.Join(m.SkillsOffered, ", "), strings.Join(m.SkillsWanted, ", "))
	return nil
}

func (s *session) setAvailability(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: avail <n> <%s>", strings.Join(models.Availabilities, "|"))
	}
	id, err := pick(s.lastMembers, args[:1])
	if err != nil {
		return err
	}
	m, err := s.profiles.SetAvailability(id, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s is now available %s\n", m.Name, m.Availability)
	return nil
}

func (s *session) setVisibility(args []string, public bool) error {
	id, err := pick(s.lastMembers, args)
	if err != nil {
		return err
	}
	m, err := s.profiles.SetVisibility(id, public)
	if err != nil {
		return err
	}
	if m.Public {
		fmt.Printf("%s is now listed in the directory\n", m.Name)
	} else {
		fmt.Printf("%s is now hidden from the directory\n", m.Name)
	}
	return nil
}

func (s *session) ban(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: ban <n> <reason>")
	}
	id, err := pick(s.lastMembers, args[:1])
	if err != nil {
		return err
	}
	if _, err := s.admin.BanMember(id, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println("member banned")
	return nil
}

func (s *session) unban(args []string) error {
	id, err := pick(s.lastMembers, args)
	if err != nil {
		return err
	}
	if _, err := s.admin.UnbanMember(id); err != nil {
		return err
	}
	fmt.Println("member unbanned")
	return nil
}

func (s *session) showListings() {
	s.lastListings = nil
	pending := s.admin.PendingListings()
	if len(pending) == 0 {
		fmt.Println("no pending skill listings")
		return
	}
	for i, l := range pending {
		s.lastListings = append(s.lastListings, l.ID)
		fmt.Printf("%2d) %-10s %-15s %s\n", i+1, l.MemberName, l.Name, l.Description)
	}
}

func (s *session) denyListing(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: deny <n> <reason>")
	}
	return s.moderateListing(args[:1], strings.Join(args[1:], " "), false)
}

func (s *session) moderateListing(args []string, reason string, approve bool) error {
	id, err := pick(s.lastListings, args)
	if err != nil {
		return err
	}
	if approve {
		_, err = s.admin.ApproveListing(id)
	} else {
		_, err = s.admin.RejectListing(id, reason)
	}
	if err != nil {
		return err
	}
	fmt.Println("listing moderated")
	return nil
}

func (s *session) postNotice(args []string) error {
	if _, err := s.admin.PostNotice(strings.Join(args, " ")); err != nil {
		return err
	}
	fmt.Println("notice posted")
	return nil
}

func (s *session) showNotices() {
	notices := s.admin.Notices()
	if len(notices) == 0 {
		fmt.Println("no notices")
		return
	}
	for _, n := range notices {
		fmt.Printf("%s  %s\n", n.PostedAt.Format("2006-01-02 15:04"), n.Text)
	}
}

func (s *session) writeReport() error {
	buf, filename, err := s.reporter.BuildActivityReport()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", filename)
	return nil
}

// pick resolves a 1-based listing number from the most recent listing.
func pick(last []uuid.UUID, args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("expected a listing number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(last) {
		return uuid.Nil, fmt.Errorf("no listed item %q, run a list command first", args[0])
	}
	return last[n-1], nil
}
