// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// LoginOutput returns the session token and identity after a successful login.
type LoginOutput struct {
	Token    string          `json:"token"`
	UserInfo entity.UserInfo `json:"user_info"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account. A taken username surfaces as
	// domainerrors.ErrDuplicateUsername.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a session token carrying the
	// identity and the cached cart count. Unknown username and wrong
	// password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
