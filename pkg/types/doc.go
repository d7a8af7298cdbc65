// Package types defines the core types and interfaces used throughout edit-move.
// This includes the FS capability every filesystem-touching component depends on,
// and the RenameOperation / RenamePlan values passed between the plan builder,
// the collision detector and the executor.
package types
