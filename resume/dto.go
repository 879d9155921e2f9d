// Package resume, as part of the scoring module.
// This file defines the request/response payloads for the scoring endpoints.
package resume

// ScoreResponse carries the extracted resume info together with the score
// and personalized feedback for one upload.
type ScoreResponse struct {
	Name        string `json:"name" example:"Jane Doe"`
	Email       string `json:"email" example:"jane@example.com"`
	SkillsFound string `json:"skills_found" example:"python, sql, docker"`
	Score       int    `json:"score" example:"78"`
	Feedback    string `json:"feedback"`
}

// MockEmailRequest asks to send the feedback email to the address parsed out
// of the resume.
type MockEmailRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// MockEmailResponse reports the (mocked) outcome. Sent is false when the
// parsed address was the "no email found" sentinel.
type MockEmailResponse struct {
	Sent    bool   `json:"sent" example:"true"`
	Message string `json:"message" example:"Mock Email sent to jane@example.com."`
}
