package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// SessionUsecase owns the lifecycle of the explicit client session.
type SessionUsecase interface {
	// Start confirms the token owner and activates the chat session manager.
	Start(ctx context.Context, token string) (*entity.Session, error)
	// End logs out on a best-effort basis and deactivates chat.
	End(ctx context.Context) error
	// Current returns the active session or ErrNotAuthenticated.
	Current() (*entity.Session, error)
}
