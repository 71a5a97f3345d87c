package auth

import "time"

// TokenIssuer exposes tokenIssuer to the external auth_test package.
const TokenIssuer = tokenIssuer

// SetNow replaces the service clock for tests in the external auth_test package.
func SetNow(s *AuthService, now func() time.Time) { s.now = now }
