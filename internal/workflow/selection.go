package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Entity is anything that can be listed for selection.
type Entity interface {
	Label() string
}

// Lister fetches the candidates of a selection step.
type Lister[T Entity] func(ctx context.Context) ([]T, error)

// Step describes one selection.
type Step[T Entity] struct {
	// Noun names the entities in plural, e.g. "users".
	Noun string
	// Heading is printed above the numbered list.
	Heading string
	// Prompt asks for the number.
	Prompt string
	// List fetches the candidates.
	List Lister[T]
}

// RunSelection fetches the candidates of step, prints them numbered from 1
// and reads exactly one answer.
//
// A failed or empty fetch ends the step with [ErrNothingToSelect] before any
// prompt. An answer that is not a number or lies outside [1, N] ends it with
// [ErrInvalidSelection]; there is no second attempt.
func RunSelection[T Entity](ctx context.Context, console Console, step Step[T]) (T, error) {
	var zero T

	console.Printf("\nFetching %s...\n", step.Noun)
	items, err := step.List(ctx)
	if err != nil {
		if IsCancelled(err) {
			return zero, cancelled(err)
		}
		return zero, fmt.Errorf("%w: %w", ErrNothingToSelect, err)
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: no %s found", ErrNothingToSelect, step.Noun)
	}

	console.Printf("\n%s\n", step.Heading)
	for i, item := range items {
		console.Printf("%d. %s\n", i+1, item.Label())
	}

	answer, err := console.ReadLine(ctx, step.Prompt)
	if err != nil {
		if IsCancelled(err) {
			return zero, cancelled(err)
		}
		return zero, err
	}

	n, err := ParseSelection(answer, len(items))
	if err != nil {
		return zero, err
	}

	return items[n-1], nil
}

// ParseSelection converts a typed answer into a 1-based index valid in
// [1, count].
func ParseSelection(answer string, count int) (int, error) {
	answer = strings.TrimSpace(answer)

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, answer)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrOutOfRange, n, count)
	}

	return n, nil
}
