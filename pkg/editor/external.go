package editor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	emerrors "github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/logging"
)

// External edits lines by spawning Command on a temporary file.
type External struct {
	Command Command
	// TempDir holds the listing file; empty means os.TempDir.
	TempDir string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	logger zerolog.Logger
}

// NewExternal returns an External wired to the process's terminal.
func NewExternal(cmd Command) *External {
	return &External{
		Command: cmd,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		logger:  logging.GetLogger("editor"),
	}
}

// Edit writes lines to a temporary file, runs the editor on it with the cursor
// on cursorLine and returns the file's lines once the editor exits. A launch
// failure or non-zero exit yields EDITOR_LAUNCH_FAILED; the exit status is
// kept in the error details.
func (e *External) Edit(ctx context.Context, lines []string, cursorLine int) ([]string, error) {
	f, err := os.CreateTemp(e.TempDir, "edit-move-*.txt")
	if err != nil {
		return nil, emerrors.Wrap(err, emerrors.ErrEditorLaunchFailed, "cannot create listing file")
	}
	name := f.Name()
	defer func() {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			e.logger.Warn().Err(err).Str("file", name).Msg("Cannot remove listing file")
		}
	}()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return nil, emerrors.Wrapf(err, emerrors.ErrEditorLaunchFailed, "cannot write listing file %q", name)
	}
	if err := f.Close(); err != nil {
		return nil, emerrors.Wrapf(err, emerrors.ErrEditorLaunchFailed, "cannot write listing file %q", name)
	}

	argv := e.Command.Argv(name, cursorLine)
	logging.LogCommand(e.logger, argv[0], argv[1:])

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, emerrors.Wrapf(err, emerrors.ErrEditorLaunchFailed, "failed to execute editor: %s", e.Command).
				WithDetail(emerrors.DetailExitCode, exitErr.ExitCode())
		}
		return nil, emerrors.Wrapf(err, emerrors.ErrEditorLaunchFailed, "failed to execute editor: %s", e.Command)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, emerrors.Wrapf(err, emerrors.ErrEditorLaunchFailed, "cannot read listing file %q", name)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits editor output into lines, accepting both LF and CRLF
// endings. A final line terminator does not produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
