// Package resume, as part of the scoring module.
// This file contains the service orchestrating one scoring run:
// extract text -> parse fields -> score. Each stage is a pure function of
// the previous stage's output; nothing is cached or persisted between
// uploads.
package resume

import (
	"fmt"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/config"
	"github.com/Varshinigowda8/Resume-Screening-Agent/extract"
)

// Service evaluates uploaded resumes using the configured vocabularies.
type Service struct {
	scoring config.ScoringConfig
}

// NewService creates a new Service.
func NewService(scoring config.ScoringConfig) *Service {
	return &Service{scoring: scoring}
}

// Evaluate runs the full pipeline over an uploaded payload. It fails only
// when the extractor produced too little text to analyze; every byte payload
// with enough decodable text gets a score.
func (s *Service) Evaluate(filename string, payload []byte) (*ScoreResponse, error) {
	text := extract.Text(filename, payload)
	if len(text) < extract.MinTextLength {
		return nil, apperror.NewUnprocessableError(
			"Could not extract enough readable text. Please try another file or ensure it's text-based.", nil)
	}

	parsed := Parse(text, s.scoring.Keywords)
	result := Score(parsed, s.scoring.ActionVerbs)

	return &ScoreResponse{
		Name:        parsed.Name,
		Email:       parsed.Email,
		SkillsFound: parsed.SkillsFound,
		Score:       result.Score,
		Feedback:    result.Feedback,
	}, nil
}

// SendMockEmail pretends to mail the feedback to the parsed address. No mail
// is actually sent; the sentinel address (meaning "no email was found in the
// resume") produces a warning outcome instead.
func (s *Service) SendMockEmail(email string) *MockEmailResponse {
	if email == "" || email == DefaultEmail {
		return &MockEmailResponse{
			Sent:    false,
			Message: "No valid email address found in the parsed resume data. Cannot send mock email.",
		}
	}
	return &MockEmailResponse{
		Sent:    true,
		Message: fmt.Sprintf("Mock Email sent to %s.", email),
	}
}
