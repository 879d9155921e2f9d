// Package auth, as part of the authentication module.
// This file handles the HTTP requests for registration, login, and logout.
// It acts as the "Controller" layer: decode the request DTO, call the
// service, map the outcome to a response.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
)

// Handlers wraps the auth Service to provide HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user in the credential store.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.MessageResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - missing fields or password mismatch"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - username already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful, session created"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		// Basic validation before touching the store.
		if req.Username == "" || req.Password == "" {
			apperror.WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Destroys the caller's server-side session unconditionally.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - missing or expired session"
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.IDFromContext(r.Context())
		if !ok {
			apperror.WriteError(w, r, apperror.NewUnauthorizedError("no session in request context", nil))
			return
		}
		h.service.Logout(id)
		apperror.WriteJSON(w, http.StatusOK, &MessageResponse{Message: "Logged out."})
	}
}
