package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInterrupted is returned by Ask when the context is cancelled,
// which the entry point does on SIGINT or SIGTERM.
var ErrInterrupted = errors.New("interrupted")

// Prompter writes a prompt and reads one line of the answer.
// Lines are read on a separate goroutine so a pending prompt can be
// abandoned when the context is cancelled. Lines have no length limit.
type Prompter struct {
	out   io.Writer
	lines <-chan string
	err   error // read error that ended input; valid once lines is closed
}

// NewPrompter starts reading lines from in. Prompts are written to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)
	p := &Prompter{out: out, lines: lines}
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if line != "" || err == nil {
				lines <- strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					p.err = err
				}
				return
			}
		}
	}()
	return p
}

// Ask writes label and returns the next input line without its newline.
// Returns io.EOF at end of input, the underlying error if reading failed,
// and ErrInterrupted on cancellation.
func (p *Prompter) Ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("read input: %w", p.err)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// CancelMessage returns the notice shown when a prompt is abandoned.
func CancelMessage(err error) string {
	if errors.Is(err, ErrInterrupted) {
		return "Operation cancelled by user."
	}
	if errors.Is(err, io.EOF) {
		return "Operation cancelled."
	}
	return fmt.Sprintf("Operation cancelled: %v", err)
}
