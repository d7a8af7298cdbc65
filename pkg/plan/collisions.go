package plan

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/paths"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// AncestorConflict describes a destination whose parent chain cannot be used
// as a directory.
type AncestorConflict struct {
	Destination string
	Ancestor    string
	Reason      string
}

func (c AncestorConflict) String() string {
	return fmt.Sprintf("%q cannot be created: %q %s", c.Destination, c.Ancestor, c.Reason)
}

// Report lists every collision found in a plan.
type Report struct {
	// Duplicates are destinations used by more than one operation.
	Duplicates []string
	// Existing are destinations already present that no operation vacates.
	Existing []string
	// Ancestors are destinations whose parent directories are unusable.
	Ancestors []AncestorConflict
}

// Empty reports whether the plan is free of collisions.
func (r Report) Empty() bool {
	return len(r.Duplicates) == 0 && len(r.Existing) == 0 && len(r.Ancestors) == 0
}

// Messages returns one path-qualified line per violation.
func (r Report) Messages() []string {
	var msgs []string
	for _, d := range r.Duplicates {
		msgs = append(msgs, fmt.Sprintf("%q already used as a destination.", d))
	}
	for _, e := range r.Existing {
		msgs = append(msgs, fmt.Sprintf("%q already exists.", e))
	}
	for _, a := range r.Ancestors {
		msgs = append(msgs, a.String()+".")
	}
	return msgs
}

// Err converts the report into a coded error, or nil when it is empty. The
// code reflects the first non-empty category.
func (r Report) Err() error {
	var code errors.ErrorCode
	switch {
	case len(r.Duplicates) > 0:
		code = errors.ErrDuplicateDestination
	case len(r.Existing) > 0:
		code = errors.ErrDestinationExists
	case len(r.Ancestors) > 0:
		code = errors.ErrInvalidAncestorDirectory
	default:
		return nil
	}
	return errors.New(code, strings.Join(r.Messages(), " ")).
		WithDetail("duplicates", r.Duplicates).
		WithDetail("existing", r.Existing).
		WithDetail("ancestors", r.Ancestors)
}

// DetectCollisions checks plan against itself and the filesystem. All checks
// run, so the report holds every violation at once.
//
// A destination that is also a source in the plan is not a collision: another
// operation vacates it first, which is what makes swaps and rotations possible.
func DetectCollisions(fs types.FS, plan types.RenamePlan) Report {
	logger := logging.GetLogger("plan.collisions")
	var report Report

	counts := make(map[string]int, len(plan))
	for _, op := range plan {
		counts[op.Destination]++
		if counts[op.Destination] == 2 {
			report.Duplicates = append(report.Duplicates, op.Destination)
		}
	}

	sources := plan.SourceIndex()
	reported := make(map[string]bool)
	for _, op := range plan {
		if _, vacated := sources[op.Destination]; vacated || reported[op.Destination] {
			continue
		}
		_, err := fs.Lstat(op.Destination)
		if err == nil {
			reported[op.Destination] = true
			report.Existing = append(report.Existing, op.Destination)
		} else if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", op.Destination).Msg("Cannot inspect destination")
		}
	}

	report.Ancestors = CheckAncestors(fs, plan)

	logger.Debug().
		Int("operations", len(plan)).
		Int("duplicates", len(report.Duplicates)).
		Int("existing", len(report.Existing)).
		Int("ancestors", len(report.Ancestors)).
		Msg("Collision detection finished")
	return report
}

// CheckAncestors verifies that every missing parent of every destination can
// be created as a directory. An ancestor conflicts when it exists as something
// other than a directory, when it is itself a destination, or when it is a
// source that the plan moves away.
func CheckAncestors(fs types.FS, plan types.RenamePlan) []AncestorConflict {
	sources := plan.SourceIndex()
	dests := make(map[string]bool, len(plan))
	for _, op := range plan {
		dests[op.Destination] = true
	}

	var conflicts []AncestorConflict
	for _, op := range plan {
		for _, ancestor := range paths.Ancestors(op.Destination) {
			reason := ""
			if dests[ancestor] {
				reason = "is also a destination"
			} else if _, moved := sources[ancestor]; moved {
				reason = "is being moved"
			} else if info, err := fs.Stat(ancestor); err == nil && !info.IsDir() {
				reason = "is not a directory"
			}
			if reason != "" {
				conflicts = append(conflicts, AncestorConflict{
					Destination: op.Destination,
					Ancestor:    ancestor,
					Reason:      reason,
				})
				break
			}
		}
	}
	return conflicts
}
