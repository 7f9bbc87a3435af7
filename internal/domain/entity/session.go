package entity

import "time"

// Session is the explicit "current user" of the client. It is created on login
// and discarded on logout.
type Session struct {
	User      User      // The signed-in user.
	Token     string    // Bearer token presented to the REST backend.
	StartedAt time.Time // When the session became known.
}

// UserID returns the identifier of the session user.
func (s *Session) UserID() string {
	return s.User.ID
}
