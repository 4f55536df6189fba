package tasking

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

var (
	ErrNoInput = errors.New("operator input closed")
)

// Prompter asks the operator for the next task.
// Returning an empty string keeps the current task.
type Prompter interface {
	Prompt(current string) (string, error)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(current string) (string, error)

func (f PromptFunc) Prompt(current string) (string, error) {
	return f(current)
}

var _ Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter reads one line per prompt from an operator's input.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

// NewTerminalPrompter prompts on out and reads answers from in.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(interface{ Fd() uintptr }); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// Interactive reports whether answers are read from a terminal.
func (p *TerminalPrompter) Interactive() bool {
	return p.tty
}

// Prompt writes the prompt and blocks until a line is read.
// Surrounding whitespace is trimmed from the answer.
func (p *TerminalPrompter) Prompt(current string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "Task to send (enter keeps '%s'): ", current); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if len(line) == 0 {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}
