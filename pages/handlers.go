package pages

import (
	"net/http"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
)

// Handlers serves the content pages for an authenticated session.
type Handlers struct {
	registry *session.Registry
}

func NewHandlers(registry *session.Registry) *Handlers {
	return &Handlers{registry: registry}
}

// HandleHome godoc
// @Summary Home page content
// @Description Returns the dashboard content personalized for the logged-in user.
// @Tags pages
// @Produce json
// @Success 200 {object} HomeContent
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /pages/home [get]
func (h *Handlers) HandleHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.IDFromContext(r.Context())
		if !ok {
			apperror.WriteError(w, r, apperror.NewUnauthorizedError("no session in request context", nil))
			return
		}
		state, ok := h.registry.Get(id)
		if !ok {
			apperror.WriteError(w, r, apperror.NewUnauthorizedError("session expired, please log in again", nil))
			return
		}
		apperror.WriteJSON(w, http.StatusOK, Home(state.Username))
	}
}

// HandleContact godoc
// @Summary Contact page content
// @Description Returns support contact details.
// @Tags pages
// @Produce json
// @Success 200 {object} ContactContent
// @Security BearerAuth
// @Router /pages/contact [get]
func (h *Handlers) HandleContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, http.StatusOK, Contact())
	}
}
