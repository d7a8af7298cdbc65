package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/executor"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/paths"
	"github.com/arthur-debert/edit-move/pkg/plan"
	"github.com/arthur-debert/edit-move/pkg/types"
	"github.com/arthur-debert/edit-move/pkg/ui"
	"github.com/arthur-debert/edit-move/pkg/ui/confirmations"
)

// Editor edits lines, placing the cursor on cursorLine (1-based, 0 for none).
type Editor interface {
	Edit(ctx context.Context, lines []string, cursorLine int) ([]string, error)
}

// EditorFunc adapts a function to Editor.
type EditorFunc func(ctx context.Context, lines []string, cursorLine int) ([]string, error)

func (f EditorFunc) Edit(ctx context.Context, lines []string, cursorLine int) ([]string, error) {
	return f(ctx, lines, cursorLine)
}

// Prompter asks the user to pick a choice.
type Prompter interface {
	Ask(p confirmations.Prompt) (string, error)
}

// Options tunes a session.
type Options struct {
	// Preview shows the plan and asks before applying it.
	Preview bool
	// Absolute edits absolute paths.
	Absolute bool
	// Sanitize replaces non-printable characters without asking.
	Sanitize bool
	// Instructions puts InstructionHeader above the paths.
	Instructions bool
	// ScratchPrefix is handed to the executor.
	ScratchPrefix string
}

// Session is a single edit-move run over a fixed set of sources.
type Session struct {
	fs       types.FS
	editor   Editor
	prompter Prompter
	renderer ui.Renderer
	executor *executor.Executor
	opts     Options
	logger   zerolog.Logger

	// original holds the normalized sources; it never changes.
	original []string
	// pristine is the first content handed to the editor.
	pristine []string
}

// New creates a session.
func New(fs types.FS, ed Editor, prompter Prompter, renderer ui.Renderer, opts Options) *Session {
	return &Session{
		fs:       fs,
		editor:   ed,
		prompter: prompter,
		renderer: renderer,
		executor: executor.New(executor.Options{FS: fs, ScratchPrefix: opts.ScratchPrefix}),
		opts:     opts,
		logger:   logging.GetLogger("session"),
	}
}

// Run edits sources and applies the result. It returns the executor result
// once the session is Done, or the error that aborted it; cancellations are
// errors for which errors.IsCancellation holds.
func (s *Session) Run(ctx context.Context, sources []string) (*executor.Result, error) {
	state := s.Start(sources)
	for !Terminal(state) {
		next := s.Step(ctx, state)
		s.logger.Debug().Str("from", state.String()).Str("to", next.String()).Msg("Transition")
		state = next
	}

	switch st := state.(type) {
	case Done:
		return st.Result, nil
	case Aborted:
		return nil, st.Err
	}
	return nil, errors.New(errors.ErrInternal, "session ended in a non-terminal state")
}

// Start normalizes and validates sources and runs the sanitization gate.
// It returns the first Editing state, or Aborted.
func (s *Session) Start(sources []string) State {
	if len(sources) == 0 {
		return Aborted{Err: errors.New(errors.ErrInvalidInput, "no files given")}
	}
	original, err := paths.NormalizeSources(sources, s.opts.Absolute)
	if err != nil {
		return Aborted{Err: err}
	}
	if err := paths.ValidateSources(s.fs, original); err != nil {
		return Aborted{Err: err}
	}
	s.original = original

	content := original
	if sanitized, changed := paths.SanitizeAll(original); changed {
		answer := AnswerReplace
		if !s.opts.Sanitize {
			s.warn("Non-printable characters found in paths.")
			if answer, err = s.prompter.Ask(sanitizePrompt); err != nil {
				return Aborted{Err: err}
			}
		}
		switch answer {
		case AnswerQuit:
			return Aborted{Err: errors.Cancelled()}
		case AnswerReplace:
			content = sanitized
		}
	}

	s.pristine = content
	s.logger.Info().Int("sources", len(original)).Msg("Session started")
	return Editing{Content: content}
}

// Step performs one transition.
func (s *Session) Step(ctx context.Context, state State) State {
	switch st := state.(type) {
	case Editing:
		return s.edit(ctx, st)
	case Validating:
		return s.validate(st)
	case Previewing:
		return s.preview(st)
	case Applying:
		return s.apply(st)
	default:
		return state
	}
}

func (s *Session) edit(ctx context.Context, st Editing) State {
	lines := st.Content
	cursor := 1
	if s.opts.Instructions {
		lines = append(append([]string{}, InstructionHeader...), st.Content...)
		cursor = len(InstructionHeader) + 1
	}

	raw, err := s.editor.Edit(ctx, lines, cursor)
	if err != nil {
		return Aborted{Err: err}
	}
	return Validating{Edited: plan.ExtractPaths(raw), Content: st.Content}
}

func (s *Session) validate(st Validating) State {
	edited := st.Edited

	if err := plan.CheckStructure(s.original, edited); err != nil {
		if !errors.IsErrorCode(err, errors.ErrLineCountMismatch) {
			return Aborted{Err: err}
		}
		s.warn("Lines added or removed.")
		return s.gate(restartPrompt, map[string]State{
			AnswerRestart: Editing{Content: s.pristine},
		})
	}

	if lines := plan.TrailingWhitespace(edited); len(lines) > 0 {
		s.warn("Lines with trailing whitespace detected.")
		answer, err := s.prompter.Ask(whitespacePrompt)
		if err != nil {
			return Aborted{Err: err}
		}
		switch answer {
		case AnswerStrip:
			edited = plan.StripTrailingWhitespace(edited)
		case AnswerEdit:
			return Editing{Content: edited}
		case AnswerQuit:
			return Aborted{Err: errors.Cancelled()}
		}
	}

	p, err := plan.Pair(s.original, edited, s.opts.Absolute)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNothingToDo) {
			s.warn("Nothing to do.")
		}
		return Aborted{Err: err}
	}

	if report := plan.DetectCollisions(s.fs, p); !report.Empty() {
		s.problems(report.Messages())
		return s.gate(collisionPrompt, map[string]State{
			AnswerEdit: Editing{Content: edited},
		})
	}

	if s.opts.Preview {
		return Previewing{Plan: p, Edited: edited}
	}
	return Applying{Plan: p}
}

func (s *Session) preview(st Previewing) State {
	if err := s.renderer.RenderPreview(st.Plan); err != nil {
		return Aborted{Err: errors.Wrap(err, errors.ErrInternal, "failed to render preview")}
	}
	return s.gate(previewPrompt, map[string]State{
		AnswerProceed: Applying{Plan: st.Plan},
		AnswerEdit:    Editing{Content: st.Edited},
	})
}

func (s *Session) apply(st Applying) State {
	result, err := s.executor.Run(st.Plan)
	if err != nil {
		return Aborted{Err: err}
	}
	if err := s.renderer.RenderMoves(result.Completed); err != nil {
		s.logger.Warn().Err(err).Msg("Cannot render results")
	}

	if !result.Failed() {
		result.Undo.Discard()
		return Done{Result: result}
	}

	msgs := make([]string, len(result.Failures))
	for i, f := range result.Failures {
		msgs[i] = f.String()
	}
	s.problems(msgs)

	if result.Undo.Len() == 0 {
		return Done{Result: result}
	}

	answer, err := s.prompter.Ask(failurePrompt)
	if err != nil {
		// Walking away from the prompt keeps what was done.
		s.logger.Info().Err(err).Msg("Failure prompt cancelled, keeping changes")
		answer = AnswerKeep
	}
	if answer == AnswerKeep {
		result.Undo.Discard()
		return Done{Result: result}
	}

	if err := result.Undo.Rollback(s.fs); err != nil {
		return Aborted{Err: err}
	}
	s.logger.Info().Int("operations", len(result.Completed)).Msg("Changes rolled back")
	return Done{Result: result, RolledBack: true}
}

// gate asks p; answers found in next select the following state, quit or
// end of input cancel.
func (s *Session) gate(p confirmations.Prompt, next map[string]State) State {
	answer, err := s.prompter.Ask(p)
	if err != nil {
		return Aborted{Err: err}
	}
	if st, ok := next[answer]; ok {
		return st
	}
	if answer == AnswerQuit {
		return Aborted{Err: errors.Cancelled()}
	}
	return Aborted{Err: errors.New(errors.ErrInternal, fmt.Sprintf("unexpected answer %q", answer))}
}

func (s *Session) warn(msg string) {
	if err := s.renderer.RenderWarning(msg); err != nil {
		s.logger.Warn().Err(err).Msg("Cannot render warning")
	}
}

func (s *Session) problems(msgs []string) {
	if err := s.renderer.RenderProblems(msgs); err != nil {
		s.logger.Warn().Err(err).Msg("Cannot render problems")
	}
}
