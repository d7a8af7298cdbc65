package executor_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/executor"
	"github.com/arthur-debert/edit-move/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DirectMoves(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b", "/work/c", "/work/d")
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/A"},
		{Source: "/work/b", Destination: "/work/B"},
		{Source: "/work/c", Destination: "/work/C"},
		{Source: "/work/d", Destination: "/work/D"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)

	assert.False(t, result.Failed())
	assert.Equal(t, 4, result.Moves)
	assert.Len(t, fs.renames(), 4)
	for _, op := range p {
		assert.Equal(t, op.Source, content(t, fs, op.Destination))
		assert.True(t, notExist(fs, op.Source))
	}
	for _, c := range fs.renames() {
		assert.NotContains(t, c.To, executor.DefaultScratchPrefix)
	}
}

func TestRun_RotationUsesOneScratch(t *testing.T) {
	fs := newRecordingFS(t, "/work/foo.1", "/work/foo.2", "/work/foo.3", "/work/foo.4")
	p := types.RenamePlan{
		{Source: "/work/foo.1", Destination: "/work/foo.2"},
		{Source: "/work/foo.2", Destination: "/work/foo.3"},
		{Source: "/work/foo.3", Destination: "/work/foo.4"},
		{Source: "/work/foo.4", Destination: "/work/foo.1"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Equal(t, 5, result.Moves)

	calls := fs.renames()
	require.Len(t, calls, 5)
	scratch := calls[0].To
	assert.True(t, strings.HasPrefix(scratch, "/work/"+executor.DefaultScratchPrefix+"-"), scratch)
	assert.Equal(t, []call{
		{Op: "rename", From: "/work/foo.4", To: scratch},
		{Op: "rename", From: "/work/foo.3", To: "/work/foo.4"},
		{Op: "rename", From: "/work/foo.2", To: "/work/foo.3"},
		{Op: "rename", From: "/work/foo.1", To: "/work/foo.2"},
		{Op: "rename", From: scratch, To: "/work/foo.1"},
	}, calls)

	for _, op := range p {
		assert.Equal(t, op.Source, content(t, fs, op.Destination))
	}
	assert.True(t, notExist(fs, scratch))
}

func TestRun_Swap(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b")
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/b"},
		{Source: "/work/b", Destination: "/work/a"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	assert.Len(t, result.Completed, 2)
	assert.Equal(t, "/work/b", content(t, fs, "/work/a"))
	assert.Equal(t, "/work/a", content(t, fs, "/work/b"))
}

func TestRun_CreatesParentsShallowestFirst(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b")
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/dir1/a"},
		{Source: "/work/b", Destination: "/work/dir2/dir3/dir4/b"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	assert.False(t, result.Failed())

	var dirs []string
	for _, c := range fs.calls {
		if c.Op == "mkdir" {
			dirs = append(dirs, c.To)
		}
	}
	assert.Equal(t, []string{"/work/dir1", "/work/dir2", "/work/dir2/dir3", "/work/dir2/dir3/dir4"}, dirs)
	assert.Equal(t, "/work/b", content(t, fs, "/work/dir2/dir3/dir4/b"))
	// Two moves plus four directories.
	assert.Equal(t, 6, result.Undo.Len())
}

func TestRun_OrderIndependent(t *testing.T) {
	base := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/b"},
		{Source: "/work/b", Destination: "/work/c"},
		{Source: "/work/c", Destination: "/work/a"},
		{Source: "/work/d", Destination: "/work/e"},
		{Source: "/work/f", Destination: "/work/d"},
	}
	orders := [][]int{{0, 1, 2, 3, 4}, {4, 3, 2, 1, 0}, {2, 4, 0, 3, 1}}

	for _, order := range orders {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			fs := newRecordingFS(t, "/work/a", "/work/b", "/work/c", "/work/d", "/work/f")
			p := make(types.RenamePlan, 0, len(order))
			for _, i := range order {
				p = append(p, base[i])
			}

			result, err := executor.New(executor.Options{FS: fs}).Run(p)
			require.NoError(t, err)
			assert.False(t, result.Failed())
			for _, op := range base {
				assert.Equal(t, op.Source, content(t, fs, op.Destination))
			}
			assert.True(t, notExist(fs, "/work/f"))
		})
	}
}

func TestRun_RefusesCollisions(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b")
	p := types.RenamePlan{{Source: "/work/a", Destination: "/work/b"}}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	assert.Empty(t, fs.calls)
}

func TestRun_RefusesAncestorConflicts(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		plan  types.RenamePlan
	}{
		{
			name:  "ancestor is a file",
			files: []string{"/work/a", "/work/f"},
			plan:  types.RenamePlan{{Source: "/work/a", Destination: "/work/f/a"}},
		},
		{
			name:  "ancestor is another destination",
			files: []string{"/work/a", "/work/b"},
			plan: types.RenamePlan{
				{Source: "/work/a", Destination: "/work/x"},
				{Source: "/work/b", Destination: "/work/x/b"},
			},
		},
		{
			name:  "ancestor is being moved",
			files: []string{"/work/a", "/work/d/keep"},
			plan: types.RenamePlan{
				{Source: "/work/d", Destination: "/work/e"},
				{Source: "/work/a", Destination: "/work/d/a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newRecordingFS(t)
			for _, f := range tt.files {
				require.NoError(t, fs.MkdirAll(parent(f), 0755))
				require.NoError(t, fs.WriteFile(f, []byte(f), 0644))
			}
			fs.calls = nil

			_, err := executor.New(executor.Options{FS: fs}).Run(tt.plan)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAncestorDirectory), err.Error())
			assert.Empty(t, fs.calls)
		})
	}
}

func TestRun_PartialFailureContinues(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b", "/work/c")
	fs.failFrom["/work/b"] = fmt.Errorf("permission denied")
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/x"},
		{Source: "/work/b", Destination: "/work/y"},
		{Source: "/work/c", Destination: "/work/z"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	require.True(t, result.Failed())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, p[1], result.Failures[0].Op)
	assert.Contains(t, result.Failures[0].String(), `Failed to move "/work/b" to "/work/y"`)
	assert.Contains(t, result.Failures[0].String(), "permission denied")
	assert.Equal(t, []types.RenameOperation{p[0], p[2]}, result.Completed)

	require.NoError(t, result.Undo.Rollback(fs))
	for _, f := range []string{"/work/a", "/work/b", "/work/c"} {
		assert.Equal(t, f, content(t, fs, f))
	}
	for _, f := range []string{"/work/x", "/work/y", "/work/z"} {
		assert.True(t, notExist(fs, f))
	}
}

func TestRun_FailureInsideChainBlocksRest(t *testing.T) {
	fs := newRecordingFS(t, "/work/a", "/work/b")
	fs.failFrom["/work/b"] = fmt.Errorf("busy")
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/b"},
		{Source: "/work/b", Destination: "/work/c"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	assert.Empty(t, result.Completed)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, p[1], result.Failures[0].Op)
	assert.Equal(t, p[0], result.Failures[1].Op)
	assert.Contains(t, result.Failures[1].Err.Error(), "not attempted")
	assert.Equal(t, "/work/a", content(t, fs, "/work/a"))
}

func TestRun_FailureInsideCycleReportsScratch(t *testing.T) {
	fs := newRecordingFS(t, "/work/foo.1", "/work/foo.2", "/work/foo.3", "/work/foo.4")
	fs.failFrom["/work/foo.2"] = fmt.Errorf("busy")
	p := types.RenamePlan{
		{Source: "/work/foo.1", Destination: "/work/foo.2"},
		{Source: "/work/foo.2", Destination: "/work/foo.3"},
		{Source: "/work/foo.3", Destination: "/work/foo.4"},
		{Source: "/work/foo.4", Destination: "/work/foo.1"},
	}

	result, err := executor.New(executor.Options{FS: fs}).Run(p)
	require.NoError(t, err)
	assert.Equal(t, []types.RenameOperation{p[2]}, result.Completed)
	require.Len(t, result.Failures, 3)

	var parked executor.Failure
	for _, f := range result.Failures {
		if f.Scratch != "" {
			parked = f
		}
	}
	assert.Equal(t, p[3], parked.Op)
	assert.Equal(t, "/work/foo.4", content(t, fs, parked.Scratch))
	assert.Contains(t, parked.String(), "left at")

	require.NoError(t, result.Undo.Rollback(fs))
	for _, f := range []string{"/work/foo.1", "/work/foo.2", "/work/foo.3", "/work/foo.4"} {
		assert.Equal(t, f, content(t, fs, f))
	}
	assert.True(t, notExist(fs, parked.Scratch))
}

func TestRun_ScratchAvoidsExistingEntries(t *testing.T) {
	taken := fmt.Sprintf("/work/tmp-%d-1", os.Getpid())
	fs := newRecordingFS(t, "/work/a", "/work/b", taken)
	e := executor.New(executor.Options{FS: fs, ScratchPrefix: "tmp"})
	p := types.RenamePlan{
		{Source: "/work/a", Destination: "/work/b"},
		{Source: "/work/b", Destination: "/work/a"},
	}

	result, err := e.Run(p)
	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Equal(t, fmt.Sprintf("/work/tmp-%d-2", os.Getpid()), fs.renames()[0].To)
	assert.Equal(t, taken, content(t, fs, taken))
	assert.True(t, exists(fs, "/work/a"))
}

func parent(path string) string {
	i := strings.LastIndex(path, "/")
	return path[:i]
}
