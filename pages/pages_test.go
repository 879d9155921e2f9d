package pages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
)

func TestHome_PersonalizesTitle(t *testing.T) {
	got := Home("alice")
	require.Equal(t, "Welcome, alice!", got.Title)
	require.Equal(t, "AI Resume Scoring Dashboard", got.Heading)
	require.Len(t, got.KeyFeatures, 3)
}

func TestContact_SupportDetails(t *testing.T) {
	got := Contact()
	require.Equal(t, "support@resumescorer.com", got.SupportEmail)
	require.Equal(t, "+1 (555) 123-4567", got.SupportPhone)
	require.Equal(t, "Mon - Fri, 9am - 5pm EST", got.SupportHours)
}

func TestHandleHome(t *testing.T) {
	registry := session.NewRegistry(time.Hour)
	id, _ := registry.Create("alice")
	h := NewHandlers(registry)

	req := httptest.NewRequest(http.MethodGet, "/pages/home", nil)
	req = req.WithContext(session.NewContextWithID(req.Context(), id))
	rec := httptest.NewRecorder()
	h.HandleHome().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got HomeContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Welcome, alice!", got.Title)
}

func TestHandleHome_NoSession(t *testing.T) {
	h := NewHandlers(session.NewRegistry(time.Hour))

	rec := httptest.NewRecorder()
	h.HandleHome().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/home", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleContact(t *testing.T) {
	h := NewHandlers(session.NewRegistry(time.Hour))

	rec := httptest.NewRecorder()
	h.HandleContact().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/contact", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got ContactContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Get in Touch", got.Heading)
}
