package commands

import (
	"context"
	"log/slog"

	"dealdesk/internal/pkg/config"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/pkg/jwt"
	"dealdesk/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Email       string
	AccessToken string
}

// AuthCommands authenticates the single configured operator. There is no
// user store; the principal lives in environment configuration.
type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	cfg        config.AuthConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.AuthConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	if email != a.cfg.OperatorEmail {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.cfg.OperatorPasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("operator logged in", "email", email)
	return &LoginResult{Email: email, AccessToken: token}, nil
}
