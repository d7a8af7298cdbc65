package types

import (
	"fmt"
	"path/filepath"
)

// RenameOperation moves Source to Destination. Source never equals Destination
// inside a built plan.
type RenameOperation struct {
	Source      string
	Destination string
}

// Verb returns "Renamed" when the entry stays in the same directory and
// "Moved" otherwise.
func (op RenameOperation) Verb() string {
	if filepath.Dir(op.Source) == filepath.Dir(op.Destination) {
		return "Renamed"
	}
	return "Moved"
}

func (op RenameOperation) String() string {
	return fmt.Sprintf("%q => %q", op.Source, op.Destination)
}

// RenamePlan is an ordered list of operations. Once validated, destinations are
// pairwise distinct and no source appears twice.
type RenamePlan []RenameOperation

// SourceIndex maps every source path to its position in the plan.
func (p RenamePlan) SourceIndex() map[string]int {
	index := make(map[string]int, len(p))
	for i, op := range p {
		index[op.Source] = i
	}
	return index
}

// Destinations returns the destination of every operation, in plan order.
func (p RenamePlan) Destinations() []string {
	dests := make([]string, len(p))
	for i, op := range p {
		dests[i] = op.Destination
	}
	return dests
}

// Touches reports whether path is a source or destination of any operation.
func (p RenamePlan) Touches(path string) bool {
	for _, op := range p {
		if op.Source == path || op.Destination == path {
			return true
		}
	}
	return false
}
