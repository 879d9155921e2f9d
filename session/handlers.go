// Package session, as part of the navigation module.
// This file handles the HTTP requests for inspecting and changing the
// session's navigation state. It acts as the "Controller" layer over the
// registry and the pure transition functions.
package session

import (
	"encoding/json"
	"net/http"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
)

// Handlers wraps the Registry to provide HTTP handlers.
type Handlers struct {
	registry *Registry
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(registry *Registry) *Handlers {
	return &Handlers{registry: registry}
}

// resolve pulls the caller's session out of the request context and the
// registry. Both lookups failing means the middleware chain is broken or the
// session was reaped between token validation and handler execution.
func (h *Handlers) resolve(r *http.Request) (string, State, error) {
	id, ok := IDFromContext(r.Context())
	if !ok {
		return "", State{}, apperror.NewUnauthorizedError("no session in request context", nil)
	}
	state, ok := h.registry.Get(id)
	if !ok {
		return "", State{}, apperror.NewUnauthorizedError("session expired, please log in again", nil)
	}
	return id, state, nil
}

// HandleGetState godoc
// @Summary Current session state
// @Description Returns the login flag, current page, and username of the caller's session.
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.StateResponse "Current session state"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - missing or expired session"
// @Router /session [get]
func (h *Handlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, state, err := h.resolve(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ToResponse(state))
	}
}

// HandleNavigate godoc
// @Summary Navigate to a page
// @Description Moves the session to another page. Logged-in sessions may reach Home, Resume Scorer, and Contact.
// @Tags Session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param navigateBody body session.NavigateRequest true "Target page"
// @Success 200 {object} session.StateResponse "Session state after navigation"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - unknown or unreachable page"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - missing or expired session"
// @Router /session/navigate [post]
func (h *Handlers) HandleNavigate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, state, err := h.resolve(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		var req NavigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		page, err := ParsePage(req.Page)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		next, err := state.Navigate(page)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		if !h.registry.Update(id, next) {
			apperror.WriteError(w, r, apperror.NewUnauthorizedError("session expired, please log in again", nil))
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ToResponse(next))
	}
}
