// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"sync"
	"time"

	"harvest/internal/domain/entity"
)

// ChatState is the view state of the chat session manager.
type ChatState string

const (
	// ChatStateClosed means no conversation is displayed.
	ChatStateClosed ChatState = "closed"
	// ChatStateList means the conversation list is loaded and displayed.
	ChatStateList ChatState = "list"
	// ChatStateConversation means one conversation's history is loaded and kept current.
	ChatStateConversation ChatState = "conversation"
)

// ChatSnapshot is a copy of the manager state at one point in time.
type ChatSnapshot struct {
	State         ChatState              `json:"state"`
	Conversations []*entity.Conversation `json:"conversations"`
	Active        *entity.Conversation   `json:"active,omitempty"`
	Messages      []*entity.Message      `json:"messages"`
}

// EventKind identifies what changed in the manager.
type EventKind string

const (
	EventStateChanged         EventKind = "state_changed"
	EventConversationsChanged EventKind = "conversations_changed"
	EventMessageAppended      EventKind = "message_appended"
	EventNotification         EventKind = "notification"
)

// Event is published to subscribers whenever the manager state changes.
type Event struct {
	ID             string          `json:"id"`
	Kind           EventKind       `json:"kind"`
	State          ChatState       `json:"state,omitempty"`
	ConversationID string          `json:"conversationId,omitempty"`
	Message        *entity.Message `json:"message,omitempty"`
	Notification   string          `json:"notification,omitempty"`
	At             time.Time       `json:"at"`
}

// Subscription is a live event feed. C is closed after Unsubscribe.
type Subscription struct {
	C <-chan Event

	once   sync.Once
	cancel func()
}

// NewSubscription creates a subscription reading from c; cancel is called once on Unsubscribe.
func NewSubscription(c <-chan Event, cancel func()) *Subscription {
	return &Subscription{C: c, cancel: cancel}
}

// Unsubscribe stops delivery. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// ChatUsecase manages one realtime messaging session for the active user.
type ChatUsecase interface {
	// Activate binds the manager to a session and opens the push channel.
	Activate(ctx context.Context, session *entity.Session) error
	// Deactivate tears the push channel down and resets all state.
	Deactivate()

	// Open moves Closed to ListView and fetches the conversation list.
	Open(ctx context.Context) error
	// Close moves any state to Closed.
	Close()
	// Back moves ConversationView to ListView.
	Back() error

	// OpenConversation looks up or creates the conversation with a counterparty and enters it.
	OpenConversation(ctx context.Context, counterpartyID string) (*entity.Conversation, error)
	// SelectConversation enters a conversation from the loaded list.
	SelectConversation(ctx context.Context, conversationID string) (*entity.Conversation, error)
	// RefreshConversations re-fetches the conversation list. On failure the previous list stays.
	RefreshConversations(ctx context.Context) ([]*entity.Conversation, error)

	// SendMessage persists text through REST, notifies the counterparty and appends the canonical message.
	SendMessage(ctx context.Context, conversationID, text string) (*entity.Message, error)
	// OnMessageReceived handles an inbound push delivery.
	OnMessageReceived(event *entity.PushEvent)

	Snapshot() *ChatSnapshot
	// Draft returns the text kept from the last failed send to the conversation.
	Draft(conversationID string) string

	// Subscribe registers an event feed with the given channel buffer; 0 uses the configured default.
	Subscribe(buffer int) *Subscription
}
