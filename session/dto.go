// Package session, as part of the navigation module.
// This file defines the request/response payloads for the session endpoints.
package session

// NavigateRequest asks to move the session to another page.
type NavigateRequest struct {
	Page string `json:"page" example:"Resume Scorer"`
}

// StateResponse is the wire form of a session's state.
type StateResponse struct {
	LoggedIn    bool   `json:"logged_in" example:"true"`
	CurrentPage string `json:"current_page" example:"Home"`
	Username    string `json:"username,omitempty" example:"johndoe"`
}

// ToResponse converts a State into its wire form.
func ToResponse(s State) StateResponse {
	return StateResponse{
		LoggedIn:    s.LoggedIn,
		CurrentPage: string(s.CurrentPage),
		Username:    s.Username,
	}
}
