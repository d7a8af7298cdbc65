// Package config loads edit-move's settings.
//
// Sources are layered, later ones winning:
//
//  1. the embedded defaults.toml
//  2. the user file, $XDG_CONFIG_HOME/edit-move/config.toml or --config
//  3. EDIT_MOVE_* environment variables, e.g. EDIT_MOVE_PREVIEW=false
//  4. command-line flags the user actually set
package config
