package seed

import "skillswap/internal/models"

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

// Default returns the built-in development seed. It covers every request
// status and listing status so all screens have content out of the box.
func Default() *File {
	return &File{
		Members: []MemberSeed{
			{
				Name: "Alice", Email: "alice@email.com", Location: "Austin, USA",
				Bio:           "Guitarist and songwriter, happy to trade lessons.",
				SkillsOffered: []string{"Guitar", "Songwriting"},
				SkillsWanted:  []string{"Python", "Photography"},
				Availability:  models.AvailabilityWeekends, Rating: 4.8,
			},
			{
				Name: "Bob", Email: "bob@email.com", Location: "Lyon, France",
				Bio:           "Home-style Italian food, from pasta to tiramisu.",
				SkillsOffered: []string{"Cooking", "Baking"},
				SkillsWanted:  []string{"Guitar", "Spanish"},
				Availability:  models.AvailabilityEvenings, Rating: 4.2,
			},
			{
				Name: "Charlie", Email: "charlie@email.com", Location: "Berlin, Germany",
				Bio:           "Beginner yoga sessions, all levels welcome.",
				SkillsOffered: []string{"Yoga", "Meditation"},
				SkillsWanted:  []string{"SEO", "Video Editing"},
				Availability:  models.AvailabilityMornings, Rating: 4.9,
				Banned:        true, BanReason: "repeated no-shows",
			},
			{
				Name: "Dave", Email: "dave@email.com", Location: "Remote",
				SkillsOffered: []string{"SEO"},
				SkillsWanted:  []string{"Yoga"},
				Availability:  models.AvailabilityFlexible, Rating: 2.1,
			},
			{
				Name: "John Doe", Email: "john@email.com", Location: "New York, USA",
				Bio:           "Passionate designer with 5+ years of experience in visual communication.",
				SkillsOffered: []string{"Graphic Design", "Video Editing", "Photoshop", "Illustration"},
				SkillsWanted:  []string{"Python", "JavaScript", "Project Management"},
				Availability:  models.AvailabilityWeekends, Rating: 4.6,
				Public:        boolPtr(false),
			},
		},
		Requests: []RequestSeed{
			{
				Name: "Alice", Rating: 4.8,
				SkillsOffered: []string{"Guitar", "Songwriting"},
				SkillWanted:   "Python",
				Message:       "I saw you know Python — I'd love to trade guitar lessons for a crash course!",
				Status:        models.StatusPending, Date: "2026-08-28",
			},
			{
				Name: "Bob", Rating: 4.2,
				SkillsOffered: []string{"Cooking", "Baking"},
				SkillWanted:   "JavaScript",
				Message:       "Weekly cooking session for some frontend help?",
				Status:        models.StatusPending, Date: "2026-08-30",
			},
			{
				Name: "Charlie", Rating: 4.9,
				SkillsOffered: []string{"Yoga", "Meditation"},
				SkillWanted:   "Video Editing",
				Message:       "Morning yoga in exchange for editing my class recordings.",
				Status:        models.StatusAccepted, Date: "2026-08-20",
			},
			{
				Name: "Dave", Rating: 2.1,
				SkillsOffered: []string{"SEO"},
				SkillWanted:   "Graphic Design",
				Status:        models.StatusRejected, Date: "2026-07-15",
			},
			{
				Name: "Eve", Rating: 4.4,
				SkillsOffered: []string{"Photography", "Lightroom"},
				SkillWanted:   "Guitar",
				Message:       "Portrait session for a few chord lessons.",
				Status:        models.StatusCompleted, Date: "2026-08-10",
				FeedbackRating: floatPtr(4.5), Feedback: "Great swap, learned a lot!",
			},
			{
				Name: "Frank", Rating: 3.7,
				SkillsOffered: []string{"Spanish"},
				SkillWanted:   "Cooking",
				Status:        models.StatusDiscarded, Date: "2026-06-02",
			},
		},
		Listings: []ListingSeed{
			{Member: "Alice", Name: "Guitar", Description: "I can teach basic chords.", Status: models.ListingPending},
			{Member: "Bob", Name: "Cooking", Description: "Home-style Italian food.", Status: models.ListingPending},
			{Member: "Charlie", Name: "Yoga", Description: "Beginner yoga sessions.", Status: models.ListingApproved},
			{Member: "Dave", Name: "SEO", Description: "Spammy SEO tricks!!!", Status: models.ListingPending},
		},
	}
}
