package client

import (
	"context"
	"fmt"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, log *logger.Logger) *App {
	return &App{
		ui:     ui,
		logger: log.GetChildLogger("app"),
	}
}

// Run shows the banner, logs the operator in and runs the menu.
//
// A failed or interrupted login ends the run with [ErrNotLoggedIn]. Quitting
// from the menu, an interrupt or the end of input all end it cleanly.
func (a *App) Run(ctx context.Context) error {
	a.ui.Banner()

	if err := a.ui.Login(ctx); err != nil {
		a.logger.Error().Err(err).Msg("login failed")
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}

	err := a.ui.MainLoop(ctx)
	a.ui.Goodbye()

	if err != nil {
		if workflow.IsCancelled(err) {
			a.logger.Info().Err(err).Msg("session interrupted")
			return nil
		}
		a.logger.Error().Err(err).Msg("session ended with error")
		return err
	}

	a.logger.Info().Msg("session finished")
	return nil
}

// ExitCode maps the result of [App.Run] to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
