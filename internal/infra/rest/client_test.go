package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientParams{
		Config: &config.Config{API: &config.APIConfig{BaseURL: srv.URL + "/", Timeout: timeout}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

var session = &entity.Session{User: entity.User{ID: "u-buyer"}, Token: "tkn"}

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, "req-123", r.Header.Get(deliverycontext.HeaderXRequestID))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "u-buyer", "fullName": "Sita"}})
	}, time.Second)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	user, err := NewAuthAPI(client).CurrentUser(ctx, "tkn")

	require.NoError(t, err)
	assert.Equal(t, "u-buyer", user.ID)
	assert.Equal(t, "Sita", user.FullName)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: domainerrors.ErrNotAuthenticated},
		{name: "forbidden", status: http.StatusForbidden, want: domainerrors.ErrNotAuthenticated},
		{name: "bad request", status: http.StatusBadRequest, want: domainerrors.ErrValidation},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: domainerrors.ErrValidation},
		{name: "server error", status: http.StatusInternalServerError, want: domainerrors.ErrNetwork},
		{name: "not found", status: http.StatusNotFound, want: domainerrors.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{"success": false, "error": "Receiver is required"})
			}, time.Second)

			_, err := NewChatAPI(client).OpenConversation(context.Background(), session, "u-farmer")

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_ValidationCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Text is required"})
	}, time.Second)

	_, err := NewChatAPI(client).SendMessage(context.Background(), session, "c-1", "x")

	appErr := domainerrors.AsAppError(err)
	assert.Equal(t, "Text is required", appErr.Message())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)

	_, err := NewProductSource(client).ListProducts(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.True(t, errors.IsTimeout(err))
	assert.Contains(t, domainerrors.AsAppError(err).Details(), "timed out")
}

func TestClient_MalformedBodyIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}, time.Second)

	_, err := NewChatAPI(client).ListConversations(context.Background(), session)

	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
}

func TestClient_UnsuccessfulEnvelopeIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "try later"})
	}, time.Second)

	err := NewAuthAPI(client).Logout(context.Background(), "tkn")

	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
}
