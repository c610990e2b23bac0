package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled ends the running operation without side effects.
	ErrCancelled = errors.New("operation cancelled")
	// ErrDeclined is returned when the operator answers "no" to a
	// confirmation.
	ErrDeclined = errors.New("operation declined")

	ErrNothingToSelect  = errors.New("nothing to select")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNotANumber       = fmt.Errorf("%w: not a number", ErrInvalidSelection)
	ErrOutOfRange       = fmt.Errorf("%w: out of range", ErrInvalidSelection)
)
