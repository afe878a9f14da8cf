package model

import "github.com/google/uuid"

// TokenClaims is the verified subject identity extracted from an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and verifies signed access tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
