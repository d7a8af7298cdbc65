// Package confirmations asks the user to pick one of a few choices on the
// console.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/style"
)

// Choice is one answer to a prompt. Key is what the user types (any prefix
// of it is accepted); Label describes it.
type Choice struct {
	Key   string
	Label string
}

// Prompt is a question with a fixed set of answers.
type Prompt struct {
	Choices []Choice
	// Default is the Key picked on an empty answer; empty means re-ask.
	Default string
}

// ConsoleDialog reads answers line by line.
type ConsoleDialog struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewConsoleDialog creates a dialog on stdin/stdout/stderr.
func NewConsoleDialog() *ConsoleDialog {
	return NewDialog(os.Stdin, os.Stdout, os.Stderr)
}

// NewDialog creates a dialog on the given streams.
func NewDialog(in io.Reader, out, errOut io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// Ask shows p and returns the Key of the selected choice. End of input
// cancels with a USER_CANCELLED error.
func (d *ConsoleDialog) Ask(p Prompt) (string, error) {
	if len(p.Choices) == 0 {
		return "", errors.New(errors.ErrInternal, "prompt without choices")
	}
	menu := render(p)

	for {
		if _, err := fmt.Fprint(d.out, menu); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
		}

		line, err := d.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			_, _ = fmt.Fprintln(d.out)
			if err == io.EOF {
				return "", errors.Cancelled()
			}
			return "", errors.Wrap(err, errors.ErrInternal, "failed to read user input")
		}

		raw := strings.TrimRight(line, "\r\n")
		answer := strings.ToLower(strings.TrimSpace(raw))

		switch answer {
		case "":
			if p.Default != "" {
				return p.Default, nil
			}
			continue
		case "?":
			continue
		}

		var matches []string
		for _, c := range p.Choices {
			if strings.HasPrefix(strings.ToLower(c.Key), answer) {
				matches = append(matches, c.Key)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
			_, _ = fmt.Fprintf(d.errOut, "Invalid choice: %s\n", raw)
		default:
			_, _ = fmt.Fprintf(d.errOut, "Ambiguous choice: %s\n", raw)
		}
	}
}

// render produces
//
//	s: Strip trailing whitespace (default)
//	p: Preserve all whitespace
//	? [s]
func render(p Prompt) string {
	var b strings.Builder
	for _, c := range p.Choices {
		b.WriteString(style.Render("Choice", c.Key[:1]))
		b.WriteString(": ")
		b.WriteString(c.Label)
		if c.Key == p.Default {
			b.WriteString(" ")
			b.WriteString(style.Render("Default", "(default)"))
		}
		b.WriteByte('\n')
	}
	b.WriteString("?")
	if p.Default != "" {
		fmt.Fprintf(&b, " [%s]", p.Default[:1])
	}
	b.WriteString(" ")
	return b.String()
}
