package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// ChatAPI defines the durable chat operations of the REST backend
type ChatAPI interface {
	// ListConversations returns the session user's conversations, most recently active first
	ListConversations(ctx context.Context, session *entity.Session) ([]*entity.Conversation, error)

	// OpenConversation looks up or creates the conversation with the counterparty
	OpenConversation(ctx context.Context, session *entity.Session, counterpartyID string) (*entity.Conversation, error)

	// ListMessages returns the full history of a conversation in chronological order
	ListMessages(ctx context.Context, session *entity.Session, conversationID string) ([]*entity.Message, error)

	// SendMessage persists a message and returns the canonical copy with server id and timestamp
	SendMessage(ctx context.Context, session *entity.Session, conversationID, text string) (*entity.Message, error)
}
