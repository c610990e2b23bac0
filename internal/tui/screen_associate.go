package tui

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
)

func (t *TUI) associate(ctx context.Context) error {
	t.console.Printf("%s", renderHeader("ASSOCIATE USER/WORKER"))

	assoc, err := workflow.NewAssociator(t.console, t.accounts).Run(ctx)
	if err != nil {
		return err
	}

	t.console.Printf("\n%s", renderSuccess("Association completed!"))
	t.console.Printf("   User '%s' now has access to worker '%s'\n",
		valueOrNA(assoc.User.Name), valueOrNA(assoc.Worker.Name))

	return nil
}
