package executor_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/arthur-debert/edit-move/pkg/filesystem"
	"github.com/arthur-debert/edit-move/pkg/types"
	"github.com/stretchr/testify/require"
)

// call is one mutation seen by recordingFS.
type call struct {
	Op   string
	From string
	To   string
}

// recordingFS records mutations and can be told to fail renames.
type recordingFS struct {
	types.FS
	calls    []call
	failFrom map[string]error
}

func newRecordingFS(t *testing.T, files ...string) *recordingFS {
	t.Helper()
	mem := filesystem.NewMemFS()
	require.NoError(t, mem.MkdirAll("/work", 0755))
	for _, f := range files {
		require.NoError(t, mem.WriteFile(f, []byte(f), 0644))
	}
	return &recordingFS{FS: mem, failFrom: map[string]error{}}
}

func (r *recordingFS) Rename(oldpath, newpath string) error {
	if err, ok := r.failFrom[oldpath]; ok {
		return err
	}
	r.calls = append(r.calls, call{Op: "rename", From: oldpath, To: newpath})
	return r.FS.Rename(oldpath, newpath)
}

func (r *recordingFS) Mkdir(name string, perm fs.FileMode) error {
	r.calls = append(r.calls, call{Op: "mkdir", To: name})
	return r.FS.Mkdir(name, perm)
}

func (r *recordingFS) Remove(name string) error {
	r.calls = append(r.calls, call{Op: "remove", To: name})
	return r.FS.Remove(name)
}

func (r *recordingFS) renames() []call {
	var out []call
	for _, c := range r.calls {
		if c.Op == "rename" {
			out = append(out, c)
		}
	}
	return out
}

func content(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "expected %s to exist", path)
	return string(data)
}

func exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

func notExist(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return os.IsNotExist(err)
}
