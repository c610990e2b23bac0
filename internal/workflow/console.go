// Package workflow runs the multi-step interactive operations of the admin
// client: choosing an entity from a fetched list, confirming an action and
// the user/worker association built from both.
//
// A workflow talks to the operator only through a [Console] and to the API
// only through the listers and services it is given, so every step can be
// driven by a scripted console in tests.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Console is the operator's terminal.
//
// ReadLine and ReadSecret return one sanitized line without its terminator.
// An interrupt or the end of input is reported as [ErrCancelled] or
// [io.EOF]; both are treated as cancellation.
type Console interface {
	Printf(format string, args ...any)
	ReadLine(ctx context.Context, prompt string) (string, error)
	ReadSecret(ctx context.Context, prompt string) (string, error)
}

// IsCancelled reports whether err means the operator abandoned the
// operation: an interrupt, the end of input or a cancelled context.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}

func cancelled(err error) error {
	if errors.Is(err, ErrCancelled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
