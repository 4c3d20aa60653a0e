package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the given session token has expired.
//
// The server issues session tokens as JWTs; the token is parsed without
// signature verification (the client holds no verification key) purely to
// read its "exp" claim. Tokens that are not JWTs, or that carry no expiry
// claim, are treated as non-expiring and the function returns false; the
// server remains the authority and will reject a stale token anyway.
func TokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return now.After(exp.Time)
}
