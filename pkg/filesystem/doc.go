// Package filesystem provides filesystem implementations for edit-move.
//
// This package contains implementations of the types.FS interface:
// the real OS filesystem used by the command, and an afero-backed
// filesystem that tests use to run plans against memory.
package filesystem
