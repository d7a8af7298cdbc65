package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/filesystem"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/paths"
	"github.com/arthur-debert/edit-move/pkg/plan"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// DefaultScratchPrefix names the temporary entries used to break cycles.
const DefaultScratchPrefix = ".edit-move-scratch"

// Options configures an Executor.
type Options struct {
	// FS is the filesystem to mutate; defaults to the OS filesystem.
	FS types.FS
	// Logger defaults to the "executor" logger.
	Logger *zerolog.Logger
	// ScratchPrefix is the base name of scratch entries.
	ScratchPrefix string
	// DirPerm is used for created parent directories.
	DirPerm os.FileMode
}

// Executor applies rename plans.
type Executor struct {
	fs            types.FS
	logger        zerolog.Logger
	scratchPrefix string
	dirPerm       os.FileMode
	pid           int
	counter       int
}

// Failure records an operation that could not be completed.
type Failure struct {
	Op types.RenameOperation
	// Scratch is set when the entry was left on a scratch path.
	Scratch string
	Err     error
}

func (f Failure) String() string {
	msg := fmt.Sprintf("Failed to move %q to %q: %v", f.Op.Source, f.Op.Destination, f.Err)
	if f.Scratch != "" {
		msg += fmt.Sprintf(" (left at %q)", f.Scratch)
	}
	return msg
}

// Result is the outcome of Run.
type Result struct {
	Completed []types.RenameOperation
	Failures  []Failure
	// Undo holds the inverse of every successful mutation.
	Undo *UndoStack
	// Moves counts successful rename calls, scratch moves included.
	Moves int
}

// Failed reports whether any operation failed.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// New creates an executor.
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	prefix := opts.ScratchPrefix
	if prefix == "" {
		prefix = DefaultScratchPrefix
	}
	perm := opts.DirPerm
	if perm == 0 {
		perm = 0o755
	}
	return &Executor{
		fs:            fs,
		logger:        logger,
		scratchPrefix: prefix,
		dirPerm:       perm,
		pid:           os.Getpid(),
	}
}

// Run applies p. The plan is checked for collisions and ancestor conflicts
// first; if any are found nothing is touched and the error is returned.
// Otherwise every operation is attempted and failures are reported in the
// result, never as an error.
func (e *Executor) Run(p types.RenamePlan) (*Result, error) {
	if report := plan.DetectCollisions(e.fs, p); !report.Empty() {
		e.logger.Warn().Strs("violations", report.Messages()).Msg("Refusing to run plan with collisions")
		return nil, report.Err()
	}

	done := logging.LogOperationStart(e.logger, "apply plan")
	defer done()

	result := &Result{Undo: &UndoStack{}}
	steps := Schedule(p, e.scratchPath(p))
	e.logger.Debug().Int("operations", len(p)).Int("steps", len(steps)).Msg("Plan scheduled")

	// A failure poisons the rest of its group: later steps need the vacancy
	// the failed one would have created.
	blocked := make(map[int]error)
	parked := make(map[int]string)

	for _, step := range steps {
		if cause, ok := blocked[step.Group]; ok {
			e.logger.Debug().Str("from", step.From).Str("to", step.To).Msg("Skipping step after earlier failure")
			if step.Kind == StepFromScratch {
				continue
			}
			result.Failures = append(result.Failures, Failure{
				Op:  step.Op,
				Err: fmt.Errorf("not attempted: %w", cause),
			})
			continue
		}

		if err := e.apply(step, result.Undo); err != nil {
			e.logger.Error().Err(err).Str("from", step.From).Str("to", step.To).Msg("Move failed")
			blocked[step.Group] = err
			f := Failure{Op: step.Op, Err: err}
			if step.Kind == StepFromScratch {
				f.Scratch = step.From
			}
			result.Failures = append(result.Failures, f)
			if tmp, ok := parked[step.Group]; ok && step.Kind != StepFromScratch {
				// The parked entry never reaches its destination.
				result.Failures = append(result.Failures, Failure{
					Op:      stepOpFor(steps, step.Group),
					Scratch: tmp,
					Err:     fmt.Errorf("not attempted: %w", err),
				})
			}
			continue
		}

		result.Moves++
		switch step.Kind {
		case StepToScratch:
			parked[step.Group] = step.To
		case StepFromScratch:
			delete(parked, step.Group)
			result.Completed = append(result.Completed, step.Op)
		default:
			result.Completed = append(result.Completed, step.Op)
		}
	}

	e.logger.Info().
		Int("completed", len(result.Completed)).
		Int("failed", len(result.Failures)).
		Int("moves", result.Moves).
		Msg("Plan executed")
	return result, nil
}

// stepOpFor returns the operation parked on scratch in group.
func stepOpFor(steps []Step, group int) types.RenameOperation {
	for _, s := range steps {
		if s.Group == group && s.Kind == StepToScratch {
			return s.Op
		}
	}
	return types.RenameOperation{}
}

func (e *Executor) apply(step Step, undo *UndoStack) error {
	if err := e.ensureParents(step.To, undo); err != nil {
		return err
	}
	if _, err := e.fs.Lstat(step.To); err == nil {
		return errors.Newf(errors.ErrDestinationExists, "%q already exists", step.To)
	}
	if err := e.fs.Rename(step.From, step.To); err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed, "rename %q", step.From)
	}
	undo.Push(UndoStep{Kind: UndoMove, From: step.To, To: step.From})
	e.logger.Debug().Str("kind", step.Kind.String()).Str("from", step.From).Str("to", step.To).Msg("Moved")
	return nil
}

func (e *Executor) ensureParents(path string, undo *UndoStack) error {
	for _, dir := range paths.Ancestors(path) {
		info, err := e.fs.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return errors.Newf(errors.ErrInvalidAncestorDirectory, "%q is not a directory", dir)
			}
			continue
		}
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrMoveFailed, "inspect %q", dir)
		}
		if err := e.fs.Mkdir(dir, e.dirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrMoveFailed, "create directory %q", dir)
		}
		undo.Push(UndoStep{Kind: UndoRemoveDir, Path: dir})
		e.logger.Debug().Str("path", dir).Msg("Created directory")
	}
	return nil
}

// scratchPath returns a generator of unused scratch paths next to the source
// being parked.
func (e *Executor) scratchPath(p types.RenamePlan) func(types.RenameOperation) string {
	return func(op types.RenameOperation) string {
		dir := filepath.Dir(op.Source)
		for {
			e.counter++
			candidate := filepath.Join(dir, fmt.Sprintf("%s-%d-%d", e.scratchPrefix, e.pid, e.counter))
			if p.Touches(candidate) {
				continue
			}
			if _, err := e.fs.Lstat(candidate); os.IsNotExist(err) {
				return candidate
			}
		}
	}
}
