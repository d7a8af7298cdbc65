package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"already clean", "foo/bar", "foo/bar"},
		{"redundant separators", "foo//bar/", "foo/bar"},
		{"dot segments", "./foo/../bar", "bar"},
		{"empty becomes current dir", "", "."},
		{"trailing whitespace kept", "foo ", "foo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.path, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Absolute(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := Normalize("sub//file", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "sub", "file"), got)
}

func TestNormalizeSources(t *testing.T) {
	got, err := NormalizeSources([]string{"qux", "foo", "./bar", "foo/", "baz"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz", "foo", "qux"}, got)
}

func TestAncestors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"top level file", "foo", nil},
		{"relative nested", "dir2/dir3/dir4/foo", []string{"dir2", "dir2/dir3", "dir2/dir3/dir4"}},
		{"absolute", "/work/dir1/bar", []string{"/", "/work", "/work/dir1"}},
		{"parent reference", "../x/y", []string{"..", "../x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ancestors(tt.path))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	assert.Equal(t, "/custom/config/config.toml", ConfigFilePath())
}
