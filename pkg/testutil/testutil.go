package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// envOverrides lists the EDIT_MOVE_* variables read by the config loader.
var envOverrides = []string{
	"EDIT_MOVE_EDITOR",
	"EDIT_MOVE_PREVIEW",
	"EDIT_MOVE_ABSOLUTE",
	"EDIT_MOVE_SANITIZE",
	"EDIT_MOVE_INSTRUCTIONS",
	"EDIT_MOVE_SCRATCH_PREFIX",
	"EDIT_MOVE_FORMAT",
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateScript writes an executable file.
func CreateScript(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := CreateFile(t, dir, name, content)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("Failed to make %s executable: %v", path, err)
	}
	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		t.Fatalf("File %s does not exist", path)
	}

	actual := ReadFile(t, path)
	if actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNotExists checks that nothing exists at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected %s not to exist", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Failed to stat %s: %v", path, err)
	}
}

// Chdir changes the working directory until the test completes.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

// Isolate points the config and log directories at fresh temporary
// directories, disables colour and clears every EDIT_MOVE_* override.
func Isolate(t *testing.T) {
	t.Helper()

	t.Setenv("EDIT_MOVE_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, key := range envOverrides {
		// Setenv first so the original value is restored on cleanup.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
}
