package entity

import "time"

// Message is an immutable chat message belonging to exactly one Conversation.
type Message struct {
	ID             string    `json:"id"`             // Server-assigned identifier; empty for pushed copies.
	ConversationID string    `json:"conversationId"` // Owning conversation.
	SenderID       string    `json:"senderId"`       // One of the two conversation parties.
	Text           string    `json:"text"`           // Body text.
	CreatedAt      time.Time `json:"createdAt"`      // Server timestamp, or the client timestamp of a pushed copy.
}

// IsCanonical reports whether the message carries a server-assigned identifier.
func (m *Message) IsCanonical() bool {
	return m.ID != ""
}
