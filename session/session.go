// Package session implements the per-session navigation state machine and
// the in-memory registry of live sessions. Each session carries an explicit,
// immutable State; transitions are pure functions returning a new State, so
// the navigation rules can be tested without any HTTP plumbing. Sessions are
// isolated from each other — the credential file is the only state shared
// across them.
package session

import (
	"fmt"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
)

// Page identifies one of the application's pages.
type Page string

const (
	PageLogin        Page = "Login"
	PageRegister     Page = "Register"
	PageHome         Page = "Home"
	PageResumeScorer Page = "Resume Scorer"
	PageContact      Page = "Contact"
)

// authenticatedPages are the pages a logged-in session may navigate to
// directly. The full menu is always available; there is no restricted
// adjacency between pages.
var authenticatedPages = map[Page]bool{
	PageHome:         true,
	PageResumeScorer: true,
	PageContact:      true,
}

// unauthenticatedPages are the only pages reachable before login.
var unauthenticatedPages = map[Page]bool{
	PageLogin:    true,
	PageRegister: true,
}

// ParsePage validates a page name from client input.
func ParsePage(name string) (Page, error) {
	p := Page(name)
	if authenticatedPages[p] || unauthenticatedPages[p] {
		return p, nil
	}
	return "", apperror.NewBadRequestError(fmt.Sprintf("unknown page: %q", name), nil)
}

// State is the explicit per-session context: login flag, current page, and
// the authenticated username (empty while logged out). Values are copied,
// never mutated in place; every transition returns a fresh State.
type State struct {
	LoggedIn    bool
	CurrentPage Page
	Username    string
}

// NewState returns the initial state for a fresh session: logged out, on the
// login page.
func NewState() State {
	return State{LoggedIn: false, CurrentPage: PageLogin}
}

// LoginSucceeded transitions to the authenticated home page. It is the only
// way a session becomes logged in.
func (s State) LoginSucceeded(username string) State {
	return State{LoggedIn: true, CurrentPage: PageHome, Username: username}
}

// Logout unconditionally resets the session to its initial state.
func (s State) Logout() State {
	return NewState()
}

// Navigate moves the session to another page, enforcing the gate between the
// unauthenticated pages (Login/Register) and the authenticated menu
// (Home / Resume Scorer / Contact). An illegal target leaves the state
// unchanged and reports the violation.
func (s State) Navigate(target Page) (State, error) {
	if s.LoggedIn {
		if !authenticatedPages[target] {
			return s, apperror.NewBadRequestError(
				fmt.Sprintf("page %q is not reachable while logged in", target), nil)
		}
	} else {
		if !unauthenticatedPages[target] {
			return s, apperror.NewUnauthorizedError(
				fmt.Sprintf("page %q requires login", target), nil)
		}
	}
	next := s
	next.CurrentPage = target
	return next, nil
}
