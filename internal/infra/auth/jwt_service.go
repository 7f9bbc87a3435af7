// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService decodes backend-issued JWTs without verifying the signature.
// The signing secret stays on the backend, which verifies every call.
type jwtService struct {
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService() service.TokenService {
	return &jwtService{parser: jwt.NewParser()}
}

// Decode reads the user id and expiry from token. The backend puts the user id
// in an "id" claim; "sub" is accepted as well.
func (s *jwtService) Decode(token string) (*service.TokenClaims, error) {
	token = strings.TrimPrefix(strings.TrimSpace(token), "Bearer ")

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	out := &service.TokenClaims{UserID: stringClaim(claims, "id")}
	if out.UserID == "" {
		sub, err := claims.GetSubject()
		if err != nil {
			return nil, errors.Wrap(err, "read subject")
		}
		out.UserID = sub
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read expiry")
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	if out.UserID == "" {
		return nil, errors.New("token carries no user id")
	}

	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, ok := claims[key].(string)
	if !ok {
		return ""
	}

	return v
}

