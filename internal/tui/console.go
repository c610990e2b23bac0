package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/utils"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type lineResult struct {
	line string
	err  error
}

// Console is the operator terminal. On a TTY every prompt is a small
// bubbletea program with a masked echo for secrets; otherwise lines are read
// from the input stream as they are, which keeps the client scriptable.
//
// Every line is sanitized before it is returned.
type Console struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	// plain mode: one reader goroutine, started on first use
	startReader sync.Once
	lines       chan lineResult
}

// NewConsole returns a console over the process terminal. Interactive mode
// is selected when stdin is a terminal.
func NewConsole(stdin *os.File, stdout io.Writer) *Console {
	return newConsole(stdin, stdout, term.IsTerminal(int(stdin.Fd())))
}

func newConsole(in io.Reader, out io.Writer, interactive bool) *Console {
	return &Console{
		in:          in,
		out:         out,
		interactive: interactive,
		lines:       make(chan lineResult),
	}
}

// Interactive reports whether prompts run as terminal programs.
func (c *Console) Interactive() bool {
	return c.interactive
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	return c.read(ctx, prompt, false)
}

func (c *Console) ReadSecret(ctx context.Context, prompt string) (string, error) {
	return c.read(ctx, prompt, true)
}

func (c *Console) read(ctx context.Context, prompt string, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", workflow.ErrCancelled, err)
	}

	var (
		line string
		err  error
	)
	if c.interactive {
		line, err = c.readInteractive(ctx, prompt, secret)
	} else {
		line, err = c.readPlain(ctx, prompt)
	}
	if err != nil {
		return "", err
	}

	return utils.SanitizeInput(line), nil
}

func (c *Console) readInteractive(ctx context.Context, prompt string, secret bool) (string, error) {
	program := tea.NewProgram(
		newPromptModel(prompt, secret),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", workflow.ErrCancelled, ctxErr)
		}
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", fmt.Errorf("%w: %w", workflow.ErrCancelled, err)
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}

	model, ok := final.(promptModel)
	if !ok || model.cancelled {
		return "", workflow.ErrCancelled
	}

	return model.Value(), nil
}

func (c *Console) readPlain(ctx context.Context, prompt string) (string, error) {
	c.startReader.Do(func() {
		go c.scan()
	})

	fmt.Fprint(c.out, prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", fmt.Errorf("%w: %w", workflow.ErrCancelled, ctx.Err())
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			fmt.Fprintln(c.out)
			return "", res.err
		}
		return res.line, nil
	}
}

// scan feeds c.lines until the input ends. A line abandoned by a cancelled
// read is consumed by the next read.
func (c *Console) scan() {
	reader := bufio.NewReader(c.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			c.lines <- lineResult{err: err}
			close(c.lines)
			return
		}

		c.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
		if err != nil {
			close(c.lines)
			return
		}
	}
}
