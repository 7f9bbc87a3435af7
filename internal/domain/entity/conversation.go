package entity

import "time"

// Conversation is a two-party messaging thread as seen by the viewing user.
type Conversation struct {
	ID           string    `json:"id"`                    // Backend identifier of the thread.
	Counterparty User      `json:"counterparty"`          // The other party; never the viewer.
	LastMessage  *Message  `json:"lastMessage,omitempty"` // Most recently exchanged message, if any.
	UpdatedAt    time.Time `json:"updatedAt"`             // Last activity timestamp.
}

// Preview returns the text shown in a conversation list row.
func (c *Conversation) Preview() string {
	if c.LastMessage == nil {
		return "Draft"
	}

	return c.LastMessage.Text
}
