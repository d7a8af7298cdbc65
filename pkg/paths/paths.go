package paths

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/edit-move/pkg/errors"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "edit-move"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// EnvConfigDir overrides the XDG config directory for edit-move
	EnvConfigDir = "EDIT_MOVE_CONFIG_DIR"
)

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the default location of the user configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// Normalize cleans path, collapsing redundant separators and dot segments.
// With absolute set, the result is made absolute against the working directory.
func Normalize(path string, absolute bool) (string, error) {
	if !absolute {
		return filepath.Clean(path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %q", path)
	}
	return abs, nil
}

// NormalizeAll applies Normalize to every element, keeping order and duplicates.
func NormalizeAll(paths []string, absolute bool) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		n, err := Normalize(p, absolute)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// NormalizeSources normalizes the paths given on the command line, removes
// duplicates and sorts the result. The output order is the order of the lines
// presented in the editor.
func NormalizeSources(paths []string, absolute bool) ([]string, error) {
	normalized, err := NormalizeAll(paths, absolute)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(normalized))
	unique := make([]string, 0, len(normalized))
	for _, p := range normalized {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}
	sort.Strings(unique)
	return unique, nil
}

// Ancestors returns the directories above path, shallowest first. The current
// directory "." is never included.
func Ancestors(path string) []string {
	var out []string
	dir := filepath.Dir(filepath.Clean(path))
	for dir != "." {
		out = append(out, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
