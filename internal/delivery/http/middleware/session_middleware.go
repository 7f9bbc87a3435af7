package middleware

import (
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes that need an active client session.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// RequireSession rejects the request with NOT_AUTHENTICATED when no session is active
// and stores the session on the echo context otherwise.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionUC.Current()
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}
