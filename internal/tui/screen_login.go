package tui

import (
	"context"
	"fmt"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

// Login asks for the operator credentials and authenticates once. Any
// failure, including an interrupted prompt, is returned; there is no
// second attempt.
func (t *TUI) Login(ctx context.Context) error {
	t.console.Printf("%s", renderHeader("QUBE ADMIN CLI - LOGIN"))

	email, err := t.console.ReadLine(ctx, "Email: ")
	if err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		t.report(err)
		return err
	}

	password, err := t.console.ReadSecret(ctx, "Password: ")
	if err != nil {
		return err
	}
	if err = t.validator.Validate(ctx, models.Credentials{Password: password}, validators.FieldPassword); err != nil {
		t.report(err)
		return err
	}

	t.console.Printf("%s", renderProgress("Authenticating..."))

	profile, err := t.auth.Login(ctx, email, password)
	if err != nil {
		t.report(err)
		t.console.Printf("%s", errorStyle.Render("✗ Login failed. Check your credentials.")+"\n\n")
		return err
	}

	t.console.Printf("%s\n", renderSuccess("Login successful!"))
	t.console.Printf("%s", renderProfile(profile))

	return nil
}

func renderProfile(p models.Profile) string {
	return fmt.Sprintf("User:    %s\nEmail:   %s\nCompany: %s\nRole:    %s\n",
		p.DisplayName(), p.DisplayEmail(), p.DisplayCompany(), p.DisplayRole())
}
