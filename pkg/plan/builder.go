package plan

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/paths"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// CheckStructure rejects edits that cannot be paired line by line with the
// original paths.
func CheckStructure(original, edited []string) error {
	if len(edited) == 0 {
		return errors.New(errors.ErrEmptyPlan, "cancelling due to an empty file list")
	}
	if len(edited) != len(original) {
		return errors.Newf(errors.ErrLineCountMismatch,
			"lines added or removed: expected %d, got %d", len(original), len(edited)).
			WithDetail("expected", len(original)).
			WithDetail("actual", len(edited))
	}
	return nil
}

// TrailingWhitespace returns the indexes of the lines ending in whitespace.
func TrailingWhitespace(lines []string) []int {
	var idx []int
	for i, line := range lines {
		if paths.HasTrailingWhitespace(line) {
			idx = append(idx, i)
		}
	}
	return idx
}

// StripTrailingWhitespace returns a copy of lines with trailing whitespace removed.
func StripTrailingWhitespace(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return out
}

// Pair builds the plan from positionally matched original and edited paths.
// Edited paths are normalized the way the originals were (absolute must match
// the mode used for original); pairs left unchanged are dropped.
func Pair(original, edited []string, absolute bool) (types.RenamePlan, error) {
	if err := CheckStructure(original, edited); err != nil {
		return nil, err
	}

	var plan types.RenamePlan
	for i, line := range edited {
		dest, err := paths.Normalize(line, absolute)
		if err != nil {
			return nil, err
		}
		if dest == original[i] {
			continue
		}
		plan = append(plan, types.RenameOperation{Source: original[i], Destination: dest})
	}

	if len(plan) == 0 {
		return nil, errors.New(errors.ErrNothingToDo, "nothing to do")
	}
	return plan, nil
}

// Build validates and pairs edited against original, stripping trailing
// whitespace first.
func Build(original, edited []string, absolute bool) (types.RenamePlan, error) {
	return Pair(original, StripTrailingWhitespace(edited), absolute)
}
