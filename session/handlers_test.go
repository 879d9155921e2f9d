package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// withSession builds a request carrying the given session ID in its context,
// the way the auth middleware would.
func withSession(method, target, body, id string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(NewContextWithID(req.Context(), id))
}

func TestHandleGetState(t *testing.T) {
	registry := NewRegistry(time.Hour)
	id, _ := registry.Create("alice")
	h := NewHandlers(registry)

	rec := httptest.NewRecorder()
	h.HandleGetState().ServeHTTP(rec, withSession(http.MethodGet, "/session", "", id))

	require.Equal(t, http.StatusOK, rec.Code)
	var got StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.LoggedIn)
	require.Equal(t, "Home", got.CurrentPage)
	require.Equal(t, "alice", got.Username)
}

func TestHandleGetState_UnknownSession(t *testing.T) {
	h := NewHandlers(NewRegistry(time.Hour))

	rec := httptest.NewRecorder()
	h.HandleGetState().ServeHTTP(rec, withSession(http.MethodGet, "/session", "", "gone"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleNavigate_MovesAndPersists(t *testing.T) {
	registry := NewRegistry(time.Hour)
	id, _ := registry.Create("alice")
	h := NewHandlers(registry)

	rec := httptest.NewRecorder()
	h.HandleNavigate().ServeHTTP(rec,
		withSession(http.MethodPost, "/session/navigate", `{"page":"Resume Scorer"}`, id))

	require.Equal(t, http.StatusOK, rec.Code)
	var got StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Resume Scorer", got.CurrentPage)

	state, ok := registry.Get(id)
	require.True(t, ok)
	require.Equal(t, PageResumeScorer, state.CurrentPage)
}

func TestHandleNavigate_Rejections(t *testing.T) {
	registry := NewRegistry(time.Hour)
	id, _ := registry.Create("alice")
	h := NewHandlers(registry)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"unknown page", `{"page":"Admin"}`, http.StatusBadRequest},
		{"auth page while logged in", `{"page":"Login"}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleNavigate().ServeHTTP(rec,
				withSession(http.MethodPost, "/session/navigate", tt.body, id))
			require.Equal(t, tt.wantCode, rec.Code)

			state, ok := registry.Get(id)
			require.True(t, ok)
			require.Equal(t, PageHome, state.CurrentPage, "failed navigation must not move the session")
		})
	}
}
