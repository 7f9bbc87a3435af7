package entity

import "time"

// PushEvent is the payload exchanged over the realtime push channel, both for
// outbound send notifications and inbound delivery notifications.
type PushEvent struct {
	SenderID        string    `json:"senderId"`
	RecipientID     string    `json:"recipientId"`
	ConversationID  string    `json:"chatId"`
	Text            string    `json:"text"`
	ClientTimestamp time.Time `json:"createdAt"`
}

// Message converts the pushed payload into an id-less Message.
func (e *PushEvent) Message() *Message {
	return &Message{
		ConversationID: e.ConversationID,
		SenderID:       e.SenderID,
		Text:           e.Text,
		CreatedAt:      e.ClientTimestamp,
	}
}
