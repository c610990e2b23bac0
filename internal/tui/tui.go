// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the admin client: the banner,
// the login screen, the main menu and one screen per operation.
//
// Screens print through a workflow.Console and call the client services.
// Every failure is shown as a notice with a short hint; the operation is
// abandoned and the menu comes back. Only cancellation leaves the menu.
package tui

import (
	"context"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/service"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

const (
	menuCreateUser     = "1"
	menuChangePassword = "2"
	menuAssociate      = "3"
	menuQuit           = "0"
)

type TUI struct {
	console   workflow.Console
	session   *service.Session
	auth      service.AuthService
	accounts  service.AccountService
	validator validators.Validator

	apiURL string
	info   models.AppBuildInfo

	logger *logger.Logger
}

func New(console workflow.Console, services *service.ClientServices, apiURL string, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		console:   console,
		session:   services.Session,
		auth:      services.AuthService,
		accounts:  services.AccountService,
		validator: validators.NewAccountValidator(),
		apiURL:    apiURL,
		info:      info,
		logger:    log.GetChildLogger("tui"),
	}
}

// Banner prints the application banner and the API address.
func (t *TUI) Banner() {
	t.console.Printf("%s", renderBanner(t.apiURL, t.info))
}

// MainLoop shows the menu until the operator quits. It returns nil on quit
// and a cancellation error when the operator interrupts a prompt or closes
// the input. Failed operations are reported and the menu is shown again.
func (t *TUI) MainLoop(ctx context.Context) error {
	for {
		t.console.Printf("%s", renderMenu())

		choice, err := t.console.ReadLine(ctx, "\n> Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case menuCreateUser:
			err = t.createUser(ctx)
		case menuChangePassword:
			err = t.changePassword(ctx)
		case menuAssociate:
			err = t.associate(ctx)
		case menuQuit:
			return nil
		default:
			t.console.Printf("\n%s", errorStyle.Render("✗ Invalid option! Choose 1, 2, 3 or 0")+"\n")
		}

		if err != nil {
			if workflow.IsCancelled(err) {
				return err
			}
			t.report(err)
		}

		if _, err = t.console.ReadLine(ctx, "\nPress ENTER to continue..."); err != nil {
			return err
		}
	}
}

// Goodbye prints the farewell line.
func (t *TUI) Goodbye() {
	t.console.Printf("\nGoodbye!\n\n")
}

// report prints the notice for err. Errors without a dedicated notice are
// logged with their full chain.
func (t *TUI) report(err error) {
	n := describeError(err, t.apiURL)
	if n.unexpected {
		t.logger.Error().Err(err).Msg("operation failed")
	} else {
		t.logger.Debug().Err(err).Msg("operation failed")
	}

	t.console.Printf("\n%s", renderNotice(n))
}

func renderMenu() string {
	var b strings.Builder

	b.WriteString(renderHeader("MAIN MENU"))
	b.WriteString(menuCreateUser + " - Create user\n")
	b.WriteString(menuChangePassword + " - Change password\n")
	b.WriteString(menuAssociate + " - Associate user/worker\n")
	b.WriteString(menuQuit + " - Quit\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	return b.String()
}
