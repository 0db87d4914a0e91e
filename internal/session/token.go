package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reads the exp claim without verifying the signature; the
// server remains the authority on token validity. A token we cannot parse or
// that carries no exp claim is given the benefit of the doubt and sent along.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
