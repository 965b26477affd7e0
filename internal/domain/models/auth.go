package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims represents the JWT claims issued by the authorization service.
// The subject carries the numeric user id; authority carries the role scope
// granted at token issuance. Both are trusted as already verified here.
type AccessClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	UserID               int64  `json:"user_id"`
	Authority            string `json:"authority"`
}

// ActorID returns the authenticated user's numeric id. Falls back to parsing
// the subject claim when the user_id claim is absent (older tokens).
func (c *AccessClaims) ActorID() int64 {
	if c.UserID != 0 {
		return c.UserID
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
