package service

import "time"

// TokenClaims holds the claims the client reads from a bearer token.
type TokenClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenService decodes bearer tokens issued by the backend.
// The client never holds the signing secret, so tokens are decoded, not verified.
type TokenService interface {
	Decode(token string) (*TokenClaims, error)
}
