// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/edit-move/pkg/style"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// Renderer writes output styled through the style registry.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a new terminal renderer
func New(out, errOut io.Writer) *Renderer {
	return &Renderer{out: out, errOut: errOut}
}

func operation(op types.RenameOperation) string {
	return fmt.Sprintf("%s %s %s",
		style.Render("Source", fmt.Sprintf("%q", op.Source)),
		style.Render("Arrow", "=>"),
		style.Render("Destination", fmt.Sprintf("%q", op.Destination)))
}

func (r *Renderer) RenderPreview(plan types.RenamePlan) error {
	if _, err := fmt.Fprintln(r.out, style.Render("Header", "The following files will be moved or renamed:")); err != nil {
		return err
	}
	for _, op := range plan {
		if _, err := fmt.Fprintf(r.out, "  %s\n", operation(op)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderMoves(ops []types.RenameOperation) error {
	for _, op := range ops {
		if _, err := fmt.Fprintf(r.out, "%s %s\n", style.Render("Verb", op.Verb()+":"), operation(op)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintln(r.errOut, style.Render("Warning", msg))
	return err
}

func (r *Renderer) RenderProblems(msgs []string) error {
	for _, m := range msgs {
		if _, err := fmt.Fprintf(r.errOut, "%s %s\n", style.Render("Error", "✗"), m); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.errOut, "%s %v\n", style.Render("Error", "Error:"), err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}
