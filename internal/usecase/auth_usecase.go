package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user and their access token.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register validates the input, hashes the password and creates the
	// user. A duplicate email is reported distinctly from other failures.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates a user by email and password. Stored legacy
	// plaintext credentials are migrated to bcrypt on the first successful
	// login. Every failed attempt looks the same to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
