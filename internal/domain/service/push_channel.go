package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// PushHandler receives inbound delivery notifications from the push channel
type PushHandler func(event *entity.PushEvent)

// PushChannel defines the low-latency bidirectional event transport
type PushChannel interface {
	// Connect opens the channel for the session user and registers the identity
	// on every successful (re)connection. Inbound events are passed to handler.
	Connect(ctx context.Context, session *entity.Session, handler PushHandler) error

	// Emit sends an outbound send notification to the counterparty
	Emit(ctx context.Context, event *entity.PushEvent) error

	// Close tears the connection down and stops reconnecting
	Close() error
}
