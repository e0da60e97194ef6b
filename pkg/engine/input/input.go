// Package input reads console tokens and maps raw key codes to viewer intents.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a prompt gives up on bad input
var ErrInvalid = errors.New("invalid input")

// arrowCodes maps the escape sequences a cooked terminal passes through for
// arrow keys to direction tokens.
var arrowCodes = map[string]string{
	"\x1b[A": "up",
	"\x1b[B": "down",
	"\x1b[C": "right",
	"\x1b[D": "left",
	"\x1bOA": "up",
	"\x1bOB": "down",
	"\x1bOC": "right",
	"\x1bOD": "left",
}

// Prompter asks questions on out and reads line answers from in. It is not
// safe for concurrent use.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	invalid string

	// pending holds a read that outlived a cancelled prompt; the next
	// prompt takes its answer instead of starting a second read.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewPrompter creates a prompter. invalid is printed after a rejected answer.
func NewPrompter(in io.Reader, out io.Writer, invalid string) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, invalid: invalid}
}

// Line prints prompt and reads one trimmed line. Arrow key sequences are
// turned into direction words. Cancelling ctx abandons the wait but not the
// read: a line typed afterwards answers the next prompt.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)

	if p.pending == nil {
		ch := make(chan readResult, 1)
		p.pending = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	var line string
	var err error
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		line, err = r.line, r.err
	}
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	for code, word := range arrowCodes {
		line = strings.ReplaceAll(line, code, " "+word+" ")
	}
	return strings.TrimSpace(line), nil
}

// Token prompts until valid accepts the answer
func (p *Prompter) Token(ctx context.Context, prompt string, valid func(string) bool) (string, error) {
	for {
		line, err := p.Line(ctx, prompt)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		p.reject()
	}
}

// Int prompts until the answer is an integer in [min, max]
func (p *Prompter) Int(ctx context.Context, prompt string, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: empty range %d-%d", ErrInvalid, min, max)
	}
	for {
		line, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= min && n <= max {
			return n, nil
		}
		p.reject()
	}
}

func (p *Prompter) reject() {
	if p.invalid != "" {
		fmt.Fprintln(p.out, p.invalid)
	}
}
