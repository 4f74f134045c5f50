package validation

import (
	"regexp"
	"strings"

	"skillswap/internal/models"
)

// Feedback rating bounds, inclusive.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// SkillPattern defines the valid skill name format: letters, digits, spaces
// and a few common punctuation marks ("UI/UX", "Node.js", "C++").
var SkillPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ./+#&-]*$`)

// ValidRating checks if a feedback rating is within the allowed bounds.
func ValidRating(rating float64) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ValidateSkill checks if a skill name matches the allowed pattern.
func ValidateSkill(name string) bool {
	if name == "" || len(name) > 60 {
		return false
	}
	return SkillPattern.MatchString(name)
}

// NormalizeSkill trims and collapses whitespace so duplicate checks are not
// fooled by formatting.
func NormalizeSkill(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ValidAvailability checks the value against the known availability set.
func ValidAvailability(value string) bool {
	for _, a := range models.Availabilities {
		if a == value {
			return true
		}
	}
	return false
}
