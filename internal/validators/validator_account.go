package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldCompanyID       = "company_id"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmation    = "confirmation"
	FieldID              = "id"
)

// AccountValidator checks credentials, new accounts, password changes and
// the entities of an assignment.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NewUser:
		return v.validateNewUser(value, fields...)
	case *models.NewUser:
		return v.validateNewUser(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case models.Worker:
		return v.validateWorker(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *AccountValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(creds.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateNewUser(user models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldCompanyID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(user.Email) {
				return ErrEmptyEmail
			}
		case FieldName:
			if blank(user.Name) {
				return ErrEmptyName
			}
		case FieldCompanyID:
			if blank(user.CompanyID.String()) {
				return ErrEmptyCompanyID
			}
		case FieldPassword:
			// optional; the server generates one when empty
			if user.Password != "" && utf8.RuneCountInString(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePasswordChange(change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if change.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if change.NewPassword == "" {
				return ErrEmptyNewPassword
			}
		case FieldConfirmation:
			if change.NewPassword != change.Confirmation {
				return ErrPasswordMismatch
			}
			if utf8.RuneCountInString(change.NewPassword) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID.IsZero() {
				return ErrMissingUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateWorker(worker models.Worker, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if worker.ID.IsZero() {
				return ErrMissingWorkerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
