package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/adapter"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

type accountService struct {
	session   *Session
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewAccountService(session *Session, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{
		session:   session,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger.GetChildLogger("accounts"),
	}
}

func (s *accountService) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	user.Name = strings.TrimSpace(user.Name)
	if user.CompanyID.IsZero() {
		user.CompanyID = s.session.CompanyID()
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.adapter.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCreateUser, err)
	}

	s.logger.Info().
		Stringer("user_id", created.ID).
		Stringer("company_id", user.CompanyID).
		Bool("send_email", user.SendEmail).
		Msg("user created")

	return created, nil
}

func (s *accountService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if err := s.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.adapter.ChangePassword(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrChangePassword, err)
	}

	s.logger.Info().Msg("password changed")
	return nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.adapter.ListUsers(ctx, s.session.CompanyID())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListUsers, err)
	}

	return users, nil
}

func (s *accountService) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	workers, err := s.adapter.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListWorkers, err)
	}

	return workers, nil
}

func (s *accountService) AssignWorker(ctx context.Context, user models.User, worker models.Worker) error {
	if err := s.validator.Validate(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.validator.Validate(ctx, worker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.adapter.AssignWorker(ctx, worker.ID, user.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrAssignWorker, err)
	}

	s.logger.Info().
		Stringer("user_id", user.ID).
		Stringer("worker_id", worker.ID).
		Msg("worker assigned")

	return nil
}
