package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/adapter"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/utils"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

type authService struct {
	session   *Session
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthService(session *Session, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		session:   session,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger.GetChildLogger("auth"),
	}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Profile, error) {
	creds := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	a.session.authenticate(token.AccessToken)
	a.logTokenExpiry(token.AccessToken)

	profile, err := a.adapter.Me(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return models.Profile{}, err
		}
		a.logger.Warn().Err(err).Msg("logged in, but the operator profile is unavailable")
		return models.Profile{}, nil
	}

	a.session.setProfile(profile)
	a.logger.Info().
		Str("operator", profile.DisplayEmail()).
		Str("role", profile.DisplayRole()).
		Msg("operator logged in")

	return profile, nil
}

func (a *authService) logTokenExpiry(token string) {
	expiresAt, ok := utils.TokenExpiry(token)
	if !ok {
		a.logger.Debug().Msg("access token is opaque, expiry unknown")
		return
	}

	a.logger.Info().
		Time("expires_at", expiresAt).
		Dur("valid_for", time.Until(expiresAt).Round(time.Second)).
		Msg("access token acquired")
}
