package rest

import (
	"context"
	"net/http"
	"net/url"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
)

const chatsPath = "/api/v1/chats"

// chatAPI implements service.ChatAPI on top of the chat endpoints.
type chatAPI struct {
	client *Client
}

// NewChatAPI creates the REST chat adapter.
func NewChatAPI(client *Client) service.ChatAPI {
	return &chatAPI{client: client}
}

func (a *chatAPI) ListConversations(ctx context.Context, session *entity.Session) ([]*entity.Conversation, error) {
	var chats []*chatDTO
	if err := a.client.do(ctx, http.MethodGet, chatsPath, session.Token, nil, &chats); err != nil {
		return nil, err
	}

	out := make([]*entity.Conversation, 0, len(chats))
	for _, c := range chats {
		if c == nil || c.ID == "" {
			continue
		}
		out = append(out, c.toEntity())
	}

	return out, nil
}

// OpenConversation posts the counterparty; the backend returns the existing chat when there is one.
func (a *chatAPI) OpenConversation(ctx context.Context, session *entity.Session, counterpartyID string) (*entity.Conversation, error) {
	body := map[string]string{"receiverId": counterpartyID}

	var chat chatDTO
	if err := a.client.do(ctx, http.MethodPost, chatsPath, session.Token, body, &chat); err != nil {
		return nil, err
	}

	conv := chat.toEntity()
	// the create response is not always populated with the other participant
	if conv.Counterparty.ID == "" {
		conv.Counterparty.ID = counterpartyID
	}

	return conv, nil
}

func (a *chatAPI) ListMessages(ctx context.Context, session *entity.Session, conversationID string) ([]*entity.Message, error) {
	var messages []*messageDTO
	if err := a.client.do(ctx, http.MethodGet, messagesPath(conversationID), session.Token, nil, &messages); err != nil {
		return nil, err
	}

	out := make([]*entity.Message, 0, len(messages))
	for _, m := range messages {
		if m == nil {
			continue
		}
		out = append(out, m.toEntity(conversationID))
	}

	return out, nil
}

func (a *chatAPI) SendMessage(ctx context.Context, session *entity.Session, conversationID, text string) (*entity.Message, error) {
	body := map[string]string{"text": text}

	var message messageDTO
	if err := a.client.do(ctx, http.MethodPost, messagesPath(conversationID), session.Token, body, &message); err != nil {
		return nil, err
	}

	msg := message.toEntity(conversationID)
	if !msg.IsCanonical() {
		return nil, domainerrors.NewNetworkError(errors.New("sent message has no id"), http.MethodPost+" "+messagesPath(conversationID))
	}
	if msg.SenderID == "" {
		msg.SenderID = session.UserID()
	}

	return msg, nil
}

func messagesPath(conversationID string) string {
	return chatsPath + "/" + url.PathEscape(conversationID) + "/messages"
}
