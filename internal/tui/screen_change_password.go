package tui

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

func (t *TUI) changePassword(ctx context.Context) error {
	t.console.Printf("%s", renderHeader("CHANGE PASSWORD"))

	var change models.PasswordChange
	var err error

	if change.CurrentPassword, err = t.console.ReadSecret(ctx, "Current password: "); err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, change, validators.FieldCurrentPassword); err != nil {
		return err
	}

	if change.NewPassword, err = t.console.ReadSecret(ctx, "New password (minimum 8 characters): "); err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, change, validators.FieldNewPassword); err != nil {
		return err
	}

	if change.Confirmation, err = t.console.ReadSecret(ctx, "Confirm the new password: "); err != nil {
		return err
	}

	t.console.Printf("%s", renderProgress("Changing password..."))

	if err = t.accounts.ChangePassword(ctx, change); err != nil {
		return err
	}

	t.console.Printf("\n%s", renderSuccess("Password changed!"))
	return nil
}
