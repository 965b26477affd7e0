package auth

import "forumhub/internal/domain/models"

// TokenVerifier defines the interface for access token verification.
// This abstraction allows for different verification implementations
// while keeping the middleware agnostic to the verification details.
type TokenVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.AccessClaims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	// Should be called when the verifier is no longer needed.
	Close() error
}
