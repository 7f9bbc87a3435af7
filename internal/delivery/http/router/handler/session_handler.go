package handler

import (
	"log/slog"
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

// SessionHandlerParams defines the dependencies for the session handler.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionHandler starts and ends the client session.
type SessionHandler struct {
	sessionUC  usecase.SessionUsecase
	avatarBase string
	logger     *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:  params.SessionUC,
		avatarBase: params.Config.API.AvatarBase(),
		logger:     params.Logger,
	}
}

// StartSessionRequest carries the bearer token issued by the marketplace backend.
type StartSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	UserID    string      `json:"userId"`
	FullName  string      `json:"fullName"`
	Role      entity.Role `json:"role,omitempty"`
	AvatarURL string      `json:"avatarUrl,omitempty"`
	StartedAt time.Time   `json:"startedAt"`
}

func (h *SessionHandler) toResponse(session *entity.Session) *SessionResponse {
	return &SessionResponse{
		UserID:    session.UserID(),
		FullName:  session.User.FullName,
		Role:      session.User.Role,
		AvatarURL: session.User.AvatarURL(h.avatarBase),
		StartedAt: session.StartedAt,
	}
}

// Start handles POST /session.
func (h *SessionHandler) Start(c echo.Context) error {
	var input StartSessionRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.sessionUC.Start(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.toResponse(session), "Session started")
}

// Current handles GET /session.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := h.sessionUC.Current()
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.toResponse(session), "")
}

// End handles DELETE /session.
func (h *SessionHandler) End(c echo.Context) error {
	if err := h.sessionUC.End(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session ended"}, "Session ended")
}
