// Package editor runs an external text editor over a list of lines.
//
// Resolution of which editor to run happens once, up front, through Resolve.
// The resulting Command is a plain value: nothing in this package reads the
// environment while a session is running.
//
//	cmd, err := editor.Resolve(cfg.Editor, os.Getenv, editor.FileExists)
//	ed := editor.NewExternal(cmd)
//	lines, err := ed.Edit(ctx, []string{"a", "b"}, 1)
//
// Edit writes the lines to a temporary file, one per line, waits for the
// editor to exit and reads the file back. The temporary file is always
// removed.
package editor
