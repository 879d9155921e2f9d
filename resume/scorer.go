package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// ScoreResult is the outcome of scoring one parsed resume.
type ScoreResult struct {
	Score    int    // Always in [0,100]
	Feedback string // Multi-line assessment plus bulleted recommendations
}

// phoneRe matches a North-American phone shape like (555) 123-4567 with
// optional separators.
var phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// Score turns a parsed resume into a score and feedback text. The score
// starts from a base of 50 and accumulates four capped components: length
// (max 10), keyword relevance (max 20), action verbs (max 10), and
// contact/structure (max 10). The final min(100, ...) cap is redundant given
// the component caps but is kept so the arithmetic stays faithful to the
// documented behavior. actionVerbs is the verb vocabulary; each verb counts
// at most once.
func Score(p ParsedResume, actionVerbs []string) ScoreResult {
	score := 50
	var feedbackPoints []string

	// 1. Length/completeness component (max 10 pts).
	lengthPoints := min(10, p.LengthFactor*2)
	score += lengthPoints
	if lengthPoints < 4 {
		feedbackPoints = append(feedbackPoints,
			"Your resume appears quite brief. Aim for more detailed descriptions of your roles.")
	} else if lengthPoints >= 8 {
		feedbackPoints = append(feedbackPoints,
			"The resume is comprehensive and well-detailed in terms of length and content quantity.")
	}

	// 2. Keyword relevance component (max 20 pts).
	keywordPoints := p.KeywordCount * 3
	score += min(20, keywordPoints)
	switch {
	case p.KeywordCount == 0:
		feedbackPoints = append(feedbackPoints,
			"No high-value technical keywords were detected. Tailor your skills section to the job description.")
	case p.KeywordCount < 5:
		feedbackPoints = append(feedbackPoints,
			fmt.Sprintf("Only a few technical keywords (%d) were found. Increase technical terminology relevant to your target role.", p.KeywordCount))
	default:
		feedbackPoints = append(feedbackPoints,
			fmt.Sprintf("Excellent! %d high-value technical keywords were identified.", p.KeywordCount))
	}

	// 3. Action verb component (max 10 pts, 1 pt per distinct verb present).
	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(p.RawText, verb) {
			verbCount++
		}
	}
	score += min(10, verbCount)
	if verbCount < 5 {
		feedbackPoints = append(feedbackPoints,
			"Use stronger action verbs at the start of your bullet points to emphasize impact.")
	}

	// 4. Contact/structure component (max 10 pts).
	contactPoints := 0
	if p.Email != DefaultEmail {
		contactPoints += 4
	}
	if p.HasSkillsSection {
		contactPoints += 3
	}
	if phoneRe.MatchString(p.RawText) {
		contactPoints += 3
	}
	score += min(10, contactPoints)
	if contactPoints < 5 {
		feedbackPoints = append(feedbackPoints,
			"Ensure your contact information and key sections (like Skills) are clearly visible and accurate.")
	}

	finalScore := min(100, score)

	// Assemble the feedback text: one tier sentence selected by score range,
	// then the accumulated recommendations as a bulleted list.
	var sb strings.Builder
	sb.WriteString("Overall Assessment:\n")
	switch {
	case finalScore < 70:
		sb.WriteString("The resume is a work in progress. Focus on adding more substance, relevant keywords, and quantifiable achievements.\n")
	case finalScore < 85:
		sb.WriteString("This is a solid, competitive resume. Focus on optimizing content by quantifying results and tailoring it to a specific job description.\n")
	default:
		sb.WriteString("This resume is highly competitive! It demonstrates strong skills and experience. Minor tweaks to formatting and verb usage will make it outstanding.\n")
	}
	sb.WriteString("\nActionable Recommendations:\n")
	for i, point := range feedbackPoints {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(point)
	}

	return ScoreResult{
		Score:    finalScore,
		Feedback: sb.String(),
	}
}
