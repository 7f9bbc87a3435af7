package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_StreamsEvents(t *testing.T) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewEventHandler(EventHandlerParams{ChatUC: chatUC, Config: testConfig(), Logger: testLogger()})

	events := make(chan usecase.Event, 2)
	unsubscribed := make(chan struct{})
	chatUC.EXPECT().Subscribe(0).Return(usecase.NewSubscription(events, func() { close(unsubscribed) }))

	e := newTestEcho()
	e.GET("/chat/events", h.Stream)
	srv := httptest.NewServer(e)
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/chat/events", nil)
	require.NoError(t, err)

	events <- usecase.Event{ID: "e-1", Kind: usecase.EventNotification, Notification: "New message from Ram Thapa"}

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)

	var got usecase.Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "e-1", got.ID)
	assert.Equal(t, usecase.EventNotification, got.Kind)
	assert.Equal(t, "New message from Ram Thapa", got.Notification)

	require.NoError(t, ws.Close())

	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not released after the client left")
	}
}

func TestEventHandler_RejectsForeignOrigin(t *testing.T) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewEventHandler(EventHandlerParams{ChatUC: chatUC, Config: testConfig(), Logger: testLogger()})

	e := newTestEcho()
	e.GET("/chat/events", h.Stream)
	srv := httptest.NewServer(e)
	defer srv.Close()

	header := http.Header{"Origin": []string{"https://market.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/chat/events", header)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLocalOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{name: "no origin", origin: "", want: true},
		{name: "same host", origin: "http://gateway.lan:8088", want: true},
		{name: "localhost dev server", origin: "http://localhost:5173", want: true},
		{name: "loopback ip", origin: "http://127.0.0.1:3000", want: true},
		{name: "ipv6 loopback", origin: "http://[::1]:3000", want: true},
		{name: "foreign site", origin: "https://market.example.com", want: false},
		{name: "malformed", origin: "::not a url", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://gateway.lan:8088/chat/events", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, localOrigin(req))
		})
	}
}
