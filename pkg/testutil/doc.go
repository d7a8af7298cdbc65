// Package testutil provides helpers for tests that touch the real filesystem
// or the process environment: file fixtures, working directory changes and
// isolation from the user's edit-move configuration.
//
// Tests that only need a filesystem should prefer filesystem.NewMemFS.
package testutil
