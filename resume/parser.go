// Package resume contains the resume analysis heuristics: a regex-based
// parser that lifts structured fields out of free text, and a deterministic
// scorer that turns the parsed fields into a 0-100 score with canned
// feedback. Both are pure functions over immutable input text; the HTTP
// surface around them lives in handlers.go / service.go.
package resume

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults used when a field cannot be found in the text.
const (
	// DefaultName is reported when no "name:" line is present.
	DefaultName = "Candidate Name"
	// DefaultEmail is the sentinel reported when no email-shaped token is
	// present. The scorer treats this value as "no contact email".
	DefaultEmail = "contact@example.com"
	// NoSkills is the sentinel for an empty keyword match list.
	NoSkills = "N/A"
)

// ParsedResume holds the fields extracted from one uploaded document.
// It is produced once per upload and never mutated afterwards.
type ParsedResume struct {
	Name             string
	Email            string
	RawText          string // The lower-cased text all heuristics ran against
	KeywordCount     int
	LengthFactor     int // len(text)/500, a bounded proxy for completeness
	SkillsFound      string
	HasSkillsSection bool
}

var (
	// nameRe captures "name:" followed by letters and spaces.
	nameRe = regexp.MustCompile(`name:\s*([a-z\s]+)`)
	// emailRe matches a generic local@domain token.
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	// skillsSectionRe matches a skills-style section header followed by a
	// non-empty block terminated by a blank line or end of text.
	skillsSectionRe = regexp.MustCompile(`(?s)(skills|technical skills|key skills|expertise)[:\s\n]+(.+?)(?:\n\n|\z)`)
)

// Parse extracts structured fields from resume text. Matching is
// case-insensitive: the input is lower-cased first, and the lower-cased form
// is what RawText carries into the scorer. keywords is the high-value
// vocabulary, in reporting order; each keyword counts at most once
// (presence, not frequency).
func Parse(text string, keywords []string) ParsedResume {
	lower := strings.ToLower(text)

	name := DefaultName
	if m := nameRe.FindStringSubmatch(lower); m != nil {
		name = cases.Title(language.English).String(strings.TrimSpace(m[1]))
	}

	email := DefaultEmail
	if m := emailRe.FindString(lower); m != "" {
		email = m
	}

	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	skillsFound := NoSkills
	if len(found) > 0 {
		skillsFound = strings.Join(found, ", ")
	}

	return ParsedResume{
		Name:             name,
		Email:            email,
		RawText:          lower,
		KeywordCount:     len(found),
		LengthFactor:     len(lower) / 500, // 1 point of raw factor per 500 characters
		SkillsFound:      skillsFound,
		HasSkillsSection: skillsSectionRe.MatchString(lower),
	}
}
