package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/adapter"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/client"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/config"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/service"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/tui"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "qube-admin: %v\n", err)
		return 1
	}

	if cfg.ShowVersion {
		fmt.Print(tui.RenderBuildInfo(info))
		return 0
	}

	log, err := logger.NewClientLogger("qube-admin", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qube-admin: error creating logger: %v\n", err)
		return 1
	}

	session := service.NewSession()
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, session, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintf(os.Stderr, "qube-admin: %v\n", err)
		return 1
	}

	services := service.NewClientServices(session, serverAdapter, log)
	ui := tui.New(tui.NewConsole(os.Stdin, os.Stdout), services, cfg.Adapter.BaseURL, info, log)
	app := client.NewApp(ui, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("api", cfg.Adapter.BaseURL).Str("build", info.String()).Msg("qube admin client started")

	return client.ExitCode(app.Run(ctx))
}
