package service

import "github.com/golang-jwt/jwt/v5"

// TokenService issues and validates the access tokens the HTTP layer uses to
// carry the current-user fact. The core only ever reads the resulting
// "user id, or none" value.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a given user.
	GenerateAccessToken(userID int64) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
