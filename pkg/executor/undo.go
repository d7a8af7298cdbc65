package executor

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// UndoKind tags an UndoStep.
type UndoKind int

const (
	// UndoMove moves From back to To.
	UndoMove UndoKind = iota
	// UndoRemoveDir removes the empty directory at Path.
	UndoRemoveDir
)

// UndoStep is the inverse of one successful mutation.
type UndoStep struct {
	Kind UndoKind
	From string
	To   string
	Path string
}

func (s UndoStep) String() string {
	if s.Kind == UndoRemoveDir {
		return fmt.Sprintf("remove directory %q", s.Path)
	}
	return fmt.Sprintf("move %q back to %q", s.From, s.To)
}

// UndoStack records inverse steps in the order their forward actions succeeded.
type UndoStack struct {
	steps []UndoStep
}

// Push records step. Call it only after the forward action succeeded.
func (s *UndoStack) Push(step UndoStep) {
	s.steps = append(s.steps, step)
}

// Len returns the number of recorded steps.
func (s *UndoStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.steps)
}

// Steps returns a copy of the recorded steps, oldest first.
func (s *UndoStack) Steps() []UndoStep {
	out := make([]UndoStep, len(s.steps))
	copy(out, s.steps)
	return out
}

// Discard forgets every recorded step.
func (s *UndoStack) Discard() {
	s.steps = nil
}

// Rollback drains the stack newest first. Failing steps are not retried; they
// are collected and returned as a single UNDO_FAILED error once every step has
// been attempted.
func (s *UndoStack) Rollback(fs types.FS) error {
	logger := logging.GetLogger("executor.undo")
	var failures []string

	for len(s.steps) > 0 {
		step := s.steps[len(s.steps)-1]
		s.steps = s.steps[:len(s.steps)-1]

		if err := apply(fs, step); err != nil {
			logger.Error().Err(err).Str("step", step.String()).Msg("Undo step failed")
			failures = append(failures, fmt.Sprintf("failed to %s: %v", step, err))
			continue
		}
		logger.Debug().Str("step", step.String()).Msg("Undo step applied")
	}

	if len(failures) > 0 {
		return errors.New(errors.ErrUndoFailed, "failed to undo changes: "+strings.Join(failures, "; ")).
			WithDetail("failures", failures)
	}
	return nil
}

func apply(fs types.FS, step UndoStep) error {
	switch step.Kind {
	case UndoRemoveDir:
		return fs.Remove(step.Path)
	case UndoMove:
		if _, err := fs.Lstat(step.To); err == nil {
			return &os.PathError{Op: "rename", Path: step.To, Err: os.ErrExist}
		}
		return fs.Rename(step.From, step.To)
	default:
		return fmt.Errorf("unknown undo step kind %d", step.Kind)
	}
}
