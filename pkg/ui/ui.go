// Package ui renders session output: previews, results, warnings and errors.
// Regular output goes to one writer, diagnostics to another.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/edit-move/pkg/types"
	"github.com/arthur-debert/edit-move/pkg/ui/terminal"
	"github.com/arthur-debert/edit-move/pkg/ui/text"
)

// Renderer is the output surface of an edit session.
type Renderer interface {
	// RenderPreview lists the operations about to be applied.
	RenderPreview(plan types.RenamePlan) error

	// RenderMoves reports operations that were applied.
	RenderMoves(ops []types.RenameOperation) error

	// RenderWarning reports a problem the user is about to be asked about.
	RenderWarning(msg string) error

	// RenderProblems lists individual violations, one per line.
	RenderProblems(msgs []string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto picks FormatTerminal when out is a colour-capable terminal.
func NewRenderer(format Format, out, errOut io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := out.(*os.File); ok {
			return NewRenderer(DetectFormat(file), out, errOut)
		}
		return NewRenderer(FormatText, out, errOut)
	case FormatTerminal:
		return terminal.New(out, errOut), nil
	case FormatText:
		return text.New(out, errOut), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
