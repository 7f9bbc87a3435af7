package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ram = entity.User{ID: "u-ram", FullName: "Ram Thapa", Image: "ram.jpg"}
	t0  = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newChatRoutes(t *testing.T) (*mockUsecase.MockChatUsecase, func(method, target, body string) (int, envelope)) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(ChatHandlerParams{ChatUC: chatUC, Config: testConfig()})

	e := newTestEcho()
	e.GET("/chat", h.Snapshot)
	e.POST("/chat/open", h.Open)
	e.POST("/chat/close", h.Close)
	e.POST("/chat/back", h.Back)
	e.GET("/chat/conversations", h.ListConversations)
	e.POST("/chat/conversations", h.OpenConversation)
	e.POST("/chat/conversations/:id/select", h.SelectConversation)
	e.POST("/chat/conversations/:id/messages", h.SendMessage)

	return chatUC, func(method, target, body string) (int, envelope) {
		return doRequest(t, e, method, target, body)
	}
}

func decodeSnapshot(t *testing.T, env envelope) SnapshotResponse {
	t.Helper()

	var snap SnapshotResponse
	require.NoError(t, json.Unmarshal(env.Data, &snap))

	return snap
}

func TestChatHandler_SnapshotIncludesActiveDraft(t *testing.T) {
	chatUC, call := newChatRoutes(t)

	last := &entity.Message{ID: "m-1", ConversationID: "c-1", SenderID: ram.ID, Text: "Fresh spinach today", CreatedAt: t0}
	active := &entity.Conversation{ID: "c-1", Counterparty: ram, LastMessage: last, UpdatedAt: t0}
	empty := &entity.Conversation{ID: "c-2", Counterparty: entity.User{ID: "u-hari", FullName: "Hari"}}

	chatUC.EXPECT().Snapshot().Return(&usecase.ChatSnapshot{
		State:         usecase.ChatStateConversation,
		Conversations: []*entity.Conversation{active, empty},
		Active:        active,
		Messages:      []*entity.Message{last},
	})
	chatUC.EXPECT().Draft("c-1").Return("how much per kg?")

	code, env := call(http.MethodGet, "/chat", "")
	require.Equal(t, http.StatusOK, code)

	snap := decodeSnapshot(t, env)
	assert.Equal(t, usecase.ChatStateConversation, snap.State)
	require.Len(t, snap.Conversations, 2)
	assert.Equal(t, "Fresh spinach today", snap.Conversations[0].Preview)
	assert.Equal(t, "http://api.test/uploads/users/ram.jpg", snap.Conversations[0].AvatarURL)
	assert.Equal(t, "Draft", snap.Conversations[1].Preview)
	assert.Empty(t, snap.Conversations[1].AvatarURL)
	require.NotNil(t, snap.Active)
	assert.Equal(t, "c-1", snap.Active.ID)
	assert.Len(t, snap.Messages, 1)
	assert.Equal(t, "how much per kg?", snap.Draft)
}

func TestChatHandler_ClosedSnapshotHasEmptyMessages(t *testing.T) {
	chatUC, call := newChatRoutes(t)
	chatUC.EXPECT().Close().Return()
	chatUC.EXPECT().Snapshot().Return(&usecase.ChatSnapshot{State: usecase.ChatStateClosed})

	code, env := call(http.MethodPost, "/chat/close", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"messages":[]`)
}

func TestChatHandler_OpenConversation(t *testing.T) {
	chatUC, call := newChatRoutes(t)

	conv := &entity.Conversation{ID: "c-1", Counterparty: ram}
	chatUC.EXPECT().OpenConversation(mock.Anything, ram.ID).Return(conv, nil)
	chatUC.EXPECT().Snapshot().Return(&usecase.ChatSnapshot{
		State:         usecase.ChatStateConversation,
		Conversations: []*entity.Conversation{conv},
		Active:        conv,
	})
	chatUC.EXPECT().Draft("c-1").Return("")

	code, env := call(http.MethodPost, "/chat/conversations", `{"counterpartyId":"u-ram"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "c-1", decodeSnapshot(t, env).Active.ID)
}

func TestChatHandler_OpenConversationValidation(t *testing.T) {
	_, call := newChatRoutes(t)

	code, env := call(http.MethodPost, "/chat/conversations", `{"counterpartyId":""}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestChatHandler_SendMessage(t *testing.T) {
	chatUC, call := newChatRoutes(t)

	msg := &entity.Message{ID: "m-9", ConversationID: "c-1", SenderID: "u-me", Text: "hello", CreatedAt: t0}
	chatUC.EXPECT().SendMessage(mock.Anything, "c-1", "hello").Return(msg, nil)

	code, env := call(http.MethodPost, "/chat/conversations/c-1/messages", `{"text":"hello"}`)
	require.Equal(t, http.StatusCreated, code)

	var got entity.Message
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, *msg, got)
}

func TestChatHandler_SendMessageErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{
			name:     "empty text",
			err:      domainerrors.ErrEmptyMessage,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
			wantMsg:  "Message text cannot be empty",
		},
		{
			name:     "send in flight",
			err:      domainerrors.ErrSendInFlight,
			wantCode: http.StatusConflict,
			wantErr:  "SEND_IN_FLIGHT",
		},
		{
			name:     "network failure",
			err:      domainerrors.NewNetworkErrorAs(domainerrors.ErrSendFailed, assert.AnError, "POST /api/v1/chats/c-1/messages"),
			wantCode: http.StatusBadGateway,
			wantErr:  "NETWORK_ERROR",
			wantMsg:  "Failed to send message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatUC, call := newChatRoutes(t)
			chatUC.EXPECT().SendMessage(mock.Anything, "c-1", "   ").Return(nil, tt.err)

			code, env := call(http.MethodPost, "/chat/conversations/c-1/messages", `{"text":"   "}`)
			assert.Equal(t, tt.wantCode, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Message)
			}
		})
	}
}

func TestChatHandler_BackWithoutConversation(t *testing.T) {
	chatUC, call := newChatRoutes(t)
	chatUC.EXPECT().Back().Return(domainerrors.ErrNoActiveConversation)

	code, env := call(http.MethodPost, "/chat/back", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NO_ACTIVE_CONVERSATION", env.Error.Code)
}

func TestChatHandler_ListConversations(t *testing.T) {
	chatUC, call := newChatRoutes(t)
	chatUC.EXPECT().RefreshConversations(mock.Anything).Return([]*entity.Conversation{{ID: "c-1", Counterparty: ram}}, nil)

	code, env := call(http.MethodGet, "/chat/conversations", "")
	require.Equal(t, http.StatusOK, code)

	var rows []ConversationResponse
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ram Thapa", rows[0].Counterparty.FullName)
}

func TestChatHandler_SelectUnknownConversation(t *testing.T) {
	chatUC, call := newChatRoutes(t)
	chatUC.EXPECT().SelectConversation(mock.Anything, "c-404").Return(nil, domainerrors.ErrConversationNotFound)

	code, _ := call(http.MethodPost, "/chat/conversations/c-404/select", "")
	assert.Equal(t, http.StatusNotFound, code)
}
