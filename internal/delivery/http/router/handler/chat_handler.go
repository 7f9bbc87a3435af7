package handler

import (
	"net/http"
	"time"

	"harvest/config"
	"harvest/internal/delivery/http/response"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams defines the dependencies for the chat handler.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Config *config.Config
}

// ChatHandler exposes the chat session manager.
type ChatHandler struct {
	chatUC     usecase.ChatUsecase
	avatarBase string
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC:     params.ChatUC,
		avatarBase: params.Config.API.AvatarBase(),
	}
}

// OpenConversationRequest names the user to talk to.
type OpenConversationRequest struct {
	CounterpartyID string `json:"counterpartyId" validate:"required"`
}

// SendMessageRequest is the composer content. Whitespace-only text is rejected by the manager.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ConversationResponse is a conversation list row.
type ConversationResponse struct {
	ID           string          `json:"id"`
	Counterparty entity.User     `json:"counterparty"`
	AvatarURL    string          `json:"avatarUrl,omitempty"`
	Preview      string          `json:"preview"`
	LastMessage  *entity.Message `json:"lastMessage,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SnapshotResponse is the chat view state; Draft belongs to the active conversation.
type SnapshotResponse struct {
	State         usecase.ChatState       `json:"state"`
	Conversations []*ConversationResponse `json:"conversations"`
	Active        *ConversationResponse   `json:"active,omitempty"`
	Messages      []*entity.Message       `json:"messages"`
	Draft         string                  `json:"draft,omitempty"`
}

func (h *ChatHandler) conversation(conv *entity.Conversation) *ConversationResponse {
	if conv == nil {
		return nil
	}

	return &ConversationResponse{
		ID:           conv.ID,
		Counterparty: conv.Counterparty,
		AvatarURL:    conv.Counterparty.AvatarURL(h.avatarBase),
		Preview:      conv.Preview(),
		LastMessage:  conv.LastMessage,
		UpdatedAt:    conv.UpdatedAt,
	}
}

func (h *ChatHandler) conversations(list []*entity.Conversation) []*ConversationResponse {
	out := make([]*ConversationResponse, 0, len(list))
	for _, conv := range list {
		out = append(out, h.conversation(conv))
	}

	return out
}

func (h *ChatHandler) snapshot() *SnapshotResponse {
	snap := h.chatUC.Snapshot()
	resp := &SnapshotResponse{
		State:         snap.State,
		Conversations: h.conversations(snap.Conversations),
		Active:        h.conversation(snap.Active),
		Messages:      snap.Messages,
	}
	if resp.Messages == nil {
		resp.Messages = []*entity.Message{}
	}
	if snap.Active != nil {
		resp.Draft = h.chatUC.Draft(snap.Active.ID)
	}

	return resp
}

// Snapshot handles GET /chat.
func (h *ChatHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.snapshot(), "")
}

// Open handles POST /chat/open.
func (h *ChatHandler) Open(c echo.Context) error {
	if err := h.chatUC.Open(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.snapshot(), "Chat opened")
}

// Close handles POST /chat/close.
func (h *ChatHandler) Close(c echo.Context) error {
	h.chatUC.Close()

	return response.Success(c, http.StatusOK, h.snapshot(), "Chat closed")
}

// Back handles POST /chat/back.
func (h *ChatHandler) Back(c echo.Context) error {
	if err := h.chatUC.Back(); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.snapshot(), "")
}

// ListConversations handles GET /chat/conversations and reloads the list from the backend.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	list, err := h.chatUC.RefreshConversations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.conversations(list), "")
}

// OpenConversation handles POST /chat/conversations.
func (h *ChatHandler) OpenConversation(c echo.Context) error {
	var input OpenConversationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid conversation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.chatUC.OpenConversation(c.Request().Context(), input.CounterpartyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.snapshot(), "Conversation opened")
}

// SelectConversation handles POST /chat/conversations/:id/select.
func (h *ChatHandler) SelectConversation(c echo.Context) error {
	if _, err := h.chatUC.SelectConversation(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.snapshot(), "")
}

// SendMessage handles POST /chat/conversations/:id/messages.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var input SendMessageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid message input")
	}

	msg, err := h.chatUC.SendMessage(c.Request().Context(), c.Param("id"), input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, msg, "Message sent")
}
