package workflow

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

// Accounts is the part of the account service the association needs.
type Accounts interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListWorkers(ctx context.Context) ([]models.Worker, error)
	AssignWorker(ctx context.Context, user models.User, worker models.Worker) error
}

// Association is a completed user/worker assignment.
type Association struct {
	User   models.User
	Worker models.Worker
}

// Associator grants a user access to a worker in three steps: pick a user,
// pick a worker, confirm.
type Associator struct {
	console  Console
	accounts Accounts
}

func NewAssociator(console Console, accounts Accounts) *Associator {
	return &Associator{console: console, accounts: accounts}
}

// Run executes the association. The worker list is fetched only after a
// user was selected, and the assignment is sent only after a positive
// confirmation. A declined confirmation returns [ErrDeclined].
func (a *Associator) Run(ctx context.Context) (Association, error) {
	user, err := RunSelection(ctx, a.console, Step[models.User]{
		Noun:    "users",
		Heading: "Available users:",
		Prompt:  "Select the user number: ",
		List:    a.accounts.ListUsers,
	})
	if err != nil {
		return Association{}, err
	}

	worker, err := RunSelection(ctx, a.console, Step[models.Worker]{
		Noun:    "workers",
		Heading: "Available workers:",
		Prompt:  "Select the worker number: ",
		List:    a.accounts.ListWorkers,
	})
	if err != nil {
		return Association{}, err
	}

	a.console.Printf("\nConfirm association:\n")
	a.console.Printf("  User:   %s (%s)\n", orNotAvailable(user.Name), orNotAvailable(user.Email))
	a.console.Printf("  Worker: %s\n", orNotAvailable(worker.Name))

	ok, err := Confirm(ctx, a.console, "Continue? (Y/n): ")
	if err != nil {
		return Association{}, err
	}
	if !ok {
		return Association{}, ErrDeclined
	}

	if err = a.accounts.AssignWorker(ctx, user, worker); err != nil {
		if IsCancelled(err) {
			return Association{}, cancelled(err)
		}
		return Association{}, err
	}

	return Association{User: user, Worker: worker}, nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
