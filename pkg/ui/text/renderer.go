// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/edit-move/pkg/types"
)

// Renderer writes unstyled output.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a new text renderer
func New(out, errOut io.Writer) *Renderer {
	return &Renderer{out: out, errOut: errOut}
}

func (r *Renderer) RenderPreview(plan types.RenamePlan) error {
	if _, err := fmt.Fprintln(r.out, "The following files will be moved or renamed:"); err != nil {
		return err
	}
	for _, op := range plan {
		if _, err := fmt.Fprintf(r.out, "  %s\n", op); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderMoves(ops []types.RenameOperation) error {
	for _, op := range ops {
		if _, err := fmt.Fprintf(r.out, "%s: %s\n", op.Verb(), op); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintln(r.errOut, msg)
	return err
}

func (r *Renderer) RenderProblems(msgs []string) error {
	for _, m := range msgs {
		if _, err := fmt.Fprintln(r.errOut, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.errOut, "Error: %v\n", err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}
