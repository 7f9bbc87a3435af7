package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth   service.AuthService
	tokens service.TokenService
	chat   usecase.ChatUsecase
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	session *entity.Session
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthService  service.AuthService
	TokenService service.TokenService
	Chat         usecase.ChatUsecase
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		auth:   params.AuthService,
		tokens: params.TokenService,
		chat:   params.Chat,
		logger: params.Logger,
		now:    time.Now,
	}
}

// Start decodes token, confirms its owner with the backend and activates chat.
func (s *sessionService) Start(ctx context.Context, token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrNotAuthenticated.WithDetails("token is required")
	}

	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, domainerrors.ErrNotAuthenticated.WithDetails(err.Error())
	}
	if !claims.ExpiresAt.IsZero() && !s.now().Before(claims.ExpiresAt) {
		return nil, domainerrors.ErrNotAuthenticated.WithDetails("token expired")
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		s.logger.Warn("[Session] Failed to confirm token owner", slog.Any("error", err))

		return nil, err
	}
	if claims.UserID != "" && user.ID != claims.UserID {
		return nil, domainerrors.ErrNotAuthenticated.WithDetails("token subject does not match current user")
	}

	session := &entity.Session{User: *user, Token: token, StartedAt: s.now()}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if err := s.chat.Activate(ctx, session); err != nil {
		s.logger.Warn("[Session] Chat activated without push channel",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	s.logger.Info("[Session] Session started",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return session, nil
}

// End logs out on a best-effort basis. Ending without a session is a no-op.
func (s *sessionService) End(ctx context.Context) error {
	s.mu.Lock()
	session := s.session
	s.session = nil
	s.mu.Unlock()

	if session == nil {
		return nil
	}

	s.chat.Deactivate()

	if err := s.auth.Logout(ctx, session.Token); err != nil {
		s.logger.Warn("[Session] Backend logout failed", slog.String("user_id", session.UserID()), slog.Any("error", err))
	}

	s.logger.Info("[Session] Session ended", slog.String("user_id", session.UserID()))

	return nil
}

func (s *sessionService) Current() (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return s.session, nil
}
