package workflow

import (
	"context"
	"strings"
)

// Confirm asks a yes/no question whose default is yes. Only "n" and "no"
// (any case) decline.
func Confirm(ctx context.Context, console Console, prompt string) (bool, error) {
	answer, err := console.ReadLine(ctx, prompt)
	if err != nil {
		if IsCancelled(err) {
			return false, cancelled(err)
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return false, nil
	default:
		return true, nil
	}
}
