package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/battle-arena/internal/errors"
)

// InvalidInputMessage is shown before re-prompting
const InvalidInputMessage = "Invalid Input"

// Console is a Prompter over a line-oriented reader and writer.
// Reads run on a background goroutine so a cancelled ctx unblocks a waiting
// prompt; a line that arrives after cancellation is kept for the next prompt.
// A Console is not safe for concurrent use.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	lines   chan scanResult
	reading bool
}

type scanResult struct {
	line string
	err  error
}

// ConsoleConfig contains the streams for a Console
type ConsoleConfig struct {
	In  io.Reader
	Out io.Writer
}

// Validate ensures both streams are provided
func (cfg *ConsoleConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.In == nil {
		vb.RequiredField("In")
	}
	if cfg.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// NewConsole creates a console prompter
func NewConsole(cfg *ConsoleConfig) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Console{
		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		lines:   make(chan scanResult, 1),
	}, nil
}

// Choose accepts the option number or the option text (case-insensitive)
func (c *Console) Choose(ctx context.Context, description string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.InvalidArgument("at least one option is required")
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		c.printf("%s\n", description)
		for i, option := range options {
			c.printf("%d. %s\n", i+1, option)
		}
		c.printf("> ")

		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}

		if index, ok := parseChoice(line, options); ok {
			return index, nil
		}

		c.printf("%s\n", InvalidInputMessage)
	}
}

func (c *Console) ReadLine(ctx context.Context, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.printf("%s\n> ", description)
	return c.readLine(ctx)
}

func (c *Console) Say(message string) {
	c.printf("%s\n", message)
}

// readLine waits for the next line or for ctx to end, whichever is first.
// Input that races with cancellation is never acted on.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if !c.reading {
		c.reading = true
		go func() {
			c.lines <- c.scan()
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-c.lines:
		c.reading = false
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return result.line, result.err
	}
}

func (c *Console) scan() scanResult {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return scanResult{err: errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read input")}
		}
		return scanResult{err: errors.WrapWithCode(io.EOF, errors.CodeUnavailable, "input closed")}
	}
	return scanResult{line: strings.TrimSpace(c.scanner.Text())}
}

// output errors are not actionable at the console
func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...) // nolint:errcheck
}

func parseChoice(line string, options []string) (int, bool) {
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}

	for i, option := range options {
		if line != "" && strings.EqualFold(line, option) {
			return i, true
		}
	}
	return 0, false
}

var _ Prompter = (*Console)(nil)
