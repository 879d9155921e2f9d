// Package resume, as part of the scoring module.
// This file handles the HTTP requests for the Resume Scorer page: the
// multipart upload that produces a score, and the mock feedback email.
package resume

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
)

// Handlers wraps the resume Service to provide HTTP handlers.
type Handlers struct {
	service        *Service
	maxUploadBytes int64
}

// NewHandlers creates a new Handlers instance. maxUploadBytes bounds the
// multipart form memory for uploads.
func NewHandlers(service *Service, maxUploadBytes int64) *Handlers {
	return &Handlers{service: service, maxUploadBytes: maxUploadBytes}
}

// HandleScore godoc
// @Summary Score an uploaded resume
// @Description Extracts text from the uploaded .pdf or .docx file, parses it, and returns a 0-100 score with feedback.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file (.pdf or .docx)"
// @Success 200 {object} resume.ScoreResponse "Parsed info, score, and feedback"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - missing file or wrong extension"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - missing or expired session"
// @Failure 422 {object} apperror.ErrorResponse "Unprocessable - not enough readable text"
// @Router /resume/score [post]
func (h *Handlers) HandleScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("failed to parse upload form: "+err.Error(), nil))
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("a resume file is required", nil))
			return
		}
		defer file.Close()

		// The declared input contract is PDF or DOCX; anything else is
		// rejected before extraction.
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".pdf" && ext != ".docx" {
			apperror.WriteError(w, r, apperror.NewValidationError("Upload a Resume (.pdf or .docx)", nil))
			return
		}

		payload, err := io.ReadAll(file)
		if err != nil {
			apperror.WriteError(w, r, apperror.NewInternalError("failed to read uploaded file", err))
			return
		}

		resp, err := h.service.Evaluate(header.Filename, payload)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleSendMockEmail godoc
// @Summary Send the feedback email (mock)
// @Description Pretends to mail the feedback to the address parsed from the resume. No mail is sent.
// @Tags Resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param emailBody body resume.MockEmailRequest true "Parsed email address"
// @Success 200 {object} resume.MockEmailResponse "Mock outcome"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - invalid body"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - missing or expired session"
// @Router /resume/email [post]
func (h *Handlers) HandleSendMockEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MockEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		apperror.WriteJSON(w, http.StatusOK, h.service.SendMockEmail(req.Email))
	}
}
