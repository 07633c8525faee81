package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService is a canned ChatService.
type stubService struct {
	reply      string
	chatErr    error
	resetErr   error
	lastID     string
	lastText   string
	resetCalls []string
}

func (s *stubService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	s.lastID = sessionID
	s.lastText = message
	return s.reply, s.chatErr
}

func (s *stubService) ResetSession(ctx context.Context, sessionID string) error {
	s.resetCalls = append(s.resetCalls, sessionID)
	return s.resetErr
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	t.Run("turn with explicit session", func(t *testing.T) {
		service := &stubService{reply: "240 kPa front, 230 kPa rear"}
		srv := New(service)

		rec := doRequest(t, srv.Handler(), "POST", "/chat",
			`{"session_id":"sess-9","message":"tire pressure?"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "sess-9", resp.SessionID)
		assert.Equal(t, "240 kPa front, 230 kPa rear", resp.Reply)
		assert.Equal(t, "tire pressure?", service.lastText)
	})

	t.Run("missing session gets a generated one", func(t *testing.T) {
		service := &stubService{reply: "ok"}
		srv := New(service)

		rec := doRequest(t, srv.Handler(), "POST", "/chat", `{"message":"hello"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, resp.SessionID, service.lastID)
	})

	t.Run("missing message rejected", func(t *testing.T) {
		srv := New(&stubService{})
		rec := doRequest(t, srv.Handler(), "POST", "/chat", `{"session_id":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		srv := New(&stubService{chatErr: errors.New("storage down")})
		rec := doRequest(t, srv.Handler(), "POST", "/chat", `{"message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestResetEndpoint(t *testing.T) {
	service := &stubService{}
	srv := New(service)

	rec := doRequest(t, srv.Handler(), "POST", "/sessions/sess-1/reset", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"sess-1"}, service.resetCalls)
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(&stubService{})
	rec := doRequest(t, srv.Handler(), "GET", "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
