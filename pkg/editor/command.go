package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/arthur-debert/edit-move/pkg/errors"
)

// DefaultPosixEditor is tried before falling back to vi.
const DefaultPosixEditor = "/usr/bin/editor"

// Editors that take the cursor line as a "file:line" suffix instead of "+line".
var colonLineEditors = map[string]bool{
	"sublime_text": true,
	"code":         true,
}

// Command is a resolved editor invocation.
type Command struct {
	Path string
	Args []string
	// LineNumbers is false for editors that cannot be told where to put the cursor.
	LineNumbers bool
	// Posix enables "--" before file names that look like flags.
	Posix bool
}

// Parse splits a user supplied editor command line such as `code --wait`.
func Parse(s string) (Command, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return Command{}, errors.Wrapf(err, errors.ErrEditorLaunchFailed, "invalid editor command %q", s)
	}
	if len(words) == 0 {
		return Command{}, errors.Newf(errors.ErrEditorLaunchFailed, "invalid editor command %q", s)
	}
	return Command{Path: words[0], Args: words[1:], LineNumbers: true, Posix: runtime.GOOS != "windows"}, nil
}

// Resolve picks the editor to run: explicit, then $VISUAL, then $EDITOR, then
// the platform default. getenv and exists are injected so callers and tests
// control what is consulted.
func Resolve(explicit string, getenv func(string) string, exists func(string) bool) (Command, error) {
	candidates := []string{explicit}
	if getenv != nil {
		candidates = append(candidates, getenv("VISUAL"), getenv("EDITOR"))
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return Parse(c)
		}
	}
	return platformDefault(runtime.GOOS, exists)
}

func platformDefault(goos string, exists func(string) bool) (Command, error) {
	switch goos {
	case "windows":
		return Command{Path: "notepad.exe"}, nil
	case "plan9", "js", "wasip1":
		return Command{}, errors.New(errors.ErrEditorLaunchFailed,
			"unable to determine what text editor to use, set the EDITOR environment variable")
	}
	if exists != nil && exists(DefaultPosixEditor) {
		return Command{Path: DefaultPosixEditor, LineNumbers: true, Posix: true}, nil
	}
	return Command{Path: "vi", LineNumbers: true, Posix: true}, nil
}

// Argv returns the full argument vector for editing file with the cursor on
// line (1-based; 0 means no preference).
func (c Command) Argv(file string, line int) []string {
	argv := append([]string{c.Path}, c.Args...)
	if line > 0 && c.LineNumbers {
		if colonLineEditors[filepath.Base(c.Path)] {
			file = file + ":" + strconv.Itoa(line)
		} else {
			argv = append(argv, "+"+strconv.Itoa(line))
		}
	}
	if c.Posix && strings.HasPrefix(file, "-") {
		argv = append(argv, "--")
	}
	return append(argv, file)
}

// String renders the command for logs and messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// FileExists reports whether path names an existing entry.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
