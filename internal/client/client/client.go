package client

import (
	"context"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
)

// Client talks to the authentication endpoint.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	SendVerifyOTP(ctx context.Context, userID string) error
	Close() error
}

// ProfileRecorder is implemented by endpoints that keep the onboarding
// answers server-side, so a later login reports the profile as complete.
type ProfileRecorder interface {
	CompleteProfile(ctx context.Context, token string, answers models.Onboarding) error
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a successful register or login answer. Token may be empty
// after registration when the endpoint expects a separate login.
type AuthResult struct {
	Token string
	User  *models.User
}
