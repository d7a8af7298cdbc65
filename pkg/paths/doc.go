// Package paths provides centralized path handling for edit-move.
//
// It handles:
//
//   - Normalization of the paths given on the command line and read back
//     from the editor (cleaned, optionally absolute, deduplicated, sorted)
//   - Sanitization of paths that cannot survive a line-oriented text buffer
//   - Validation of the source set before any editing starts
//   - XDG locations for the configuration file
//
// Every component compares paths by exact textual equality, so all paths must
// pass through Normalize before they are compared.
//
// # Environment Variables
//
//   - EDIT_MOVE_CONFIG_DIR: Override the XDG config directory
//     (default: $XDG_CONFIG_HOME/edit-move)
package paths
