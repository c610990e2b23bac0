package service

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

// AuthService authenticates the operator and owns the [Session].
type AuthService interface {
	// Login validates the credentials locally, exchanges them for a token
	// and fetches the operator profile.
	//
	// Empty credentials fail with validators.ErrEmptyCredential before any
	// request. A rejected or malformed login fails with [ErrLoginFailed] and
	// leaves the session empty. A failed profile fetch does not fail the
	// login: the session stays authenticated and the returned profile is
	// empty, so every display field reads "unknown".
	Login(ctx context.Context, email, password string) (models.Profile, error)
}

// AccountService performs the administrative operations of a logged-in
// operator.
type AccountService interface {
	// CreateUser creates an account. Email and name are trimmed; a zero
	// company id is replaced by the operator's own company.
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)

	// ChangePassword rotates the operator's password after checking the
	// confirmation and the minimum length locally.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// ListUsers lists the users of the operator's company, or every user
	// the API returns when the company is unknown.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListWorkers lists the workers visible to the operator.
	ListWorkers(ctx context.Context) ([]models.Worker, error)

	// AssignWorker grants user access to worker.
	AssignWorker(ctx context.Context, user models.User, worker models.Worker) error
}
