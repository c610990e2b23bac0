package tui

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

// createUser collects a new account. The company is asked for only when the
// operator profile carries none.
func (t *TUI) createUser(ctx context.Context) error {
	t.console.Printf("%s", renderHeader("CREATE NEW USER"))

	var user models.NewUser
	var err error

	if user.Email, err = t.console.ReadLine(ctx, "User email: "); err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, user, validators.FieldEmail); err != nil {
		return err
	}

	if user.Name, err = t.console.ReadLine(ctx, "Full name: "); err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, user, validators.FieldName); err != nil {
		return err
	}

	if user.Password, err = t.console.ReadSecret(ctx, "Password (leave empty to generate one): "); err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, user, validators.FieldPassword); err != nil {
		return err
	}

	if t.session.CompanyID().IsZero() {
		companyID, err := t.console.ReadLine(ctx, "Company ID: ")
		if err != nil {
			return err
		}
		user.CompanyID = models.NewID(companyID)
		if err = t.validator.Validate(ctx, user, validators.FieldCompanyID); err != nil {
			return err
		}
	}

	if user.SendEmail, err = workflow.Confirm(ctx, t.console, "Send welcome email? (Y/n): "); err != nil {
		return err
	}

	t.console.Printf("%s", renderProgress("Creating user..."))

	created, err := t.accounts.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	t.console.Printf("\n%s", renderSuccess("User created!"))
	t.console.Printf("   ID:    %s\n", valueOrNA(created.ID.String()))
	t.console.Printf("   Name:  %s\n", valueOrNA(created.Name))
	t.console.Printf("   Email: %s\n", valueOrNA(created.Email))
	if user.Password == "" && user.SendEmail {
		t.console.Printf("   An email with a temporary password was sent\n")
	}

	return nil
}
