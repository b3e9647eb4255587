package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry parses the stored bearer token without verifying its
// signature and returns its expiry claim. Verification is the backend's
// job; the client only peeks at the claim to tell the user when a stored
// session has gone stale. Returns ok=false when no token is stored, the
// token is not a JWT, or it carries no expiry.
func (s *Session) TokenExpiry() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
