package workflow

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
)

// scriptedConsole answers prompts from a fixed script. A script entry of
// io.EOF or ErrCancelled is returned as an error instead of a line.
type scriptedConsole struct {
	t       *testing.T
	answers []any
	prompts []string
	out     strings.Builder
}

func newScriptedConsole(t *testing.T, answers ...any) *scriptedConsole {
	return &scriptedConsole{t: t, answers: answers}
}

func (c *scriptedConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

func (c *scriptedConsole) ReadLine(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		c.t.Fatalf("unexpected prompt %q", prompt)
	}

	next := c.answers[0]
	c.answers = c.answers[1:]

	switch v := next.(type) {
	case string:
		return v, nil
	case error:
		return "", v
	default:
		c.t.Fatalf("bad script entry %v", next)
		return "", io.ErrUnexpectedEOF
	}
}

func (c *scriptedConsole) ReadSecret(ctx context.Context, prompt string) (string, error) {
	return c.ReadLine(ctx, prompt)
}

func (c *scriptedConsole) Output() string {
	return c.out.String()
}
