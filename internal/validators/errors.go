package validators

import (
	"errors"
	"fmt"
)

// MinPasswordLength is the minimum number of characters (runes) of a new
// password.
const MinPasswordLength = 8

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyCredential is matched by both ErrEmptyEmail and ErrEmptyPassword.
	ErrEmptyCredential = errors.New("email and password are required")
	ErrEmptyEmail      = fmt.Errorf("%w: empty email", ErrEmptyCredential)
	ErrEmptyPassword   = fmt.Errorf("%w: empty password", ErrEmptyCredential)

	ErrEmptyName            = errors.New("name is required")
	ErrEmptyCompanyID       = errors.New("company id is required")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyNewPassword     = errors.New("new password is required")
	ErrPasswordMismatch     = errors.New("new password and confirmation do not match")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrMissingUserID        = errors.New("user has no id")
	ErrMissingWorkerID      = errors.New("worker has no id")
)
