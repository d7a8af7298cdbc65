// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, exit code mapping

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/edit-move/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "empty_plan",
			code:    errors.ErrEmptyPlan,
			message: "empty file list",
			wantStr: "[EMPTY_PLAN] empty file list",
		},
		{
			name:    "duplicate_destination",
			code:    errors.ErrDuplicateDestination,
			message: "destination used twice",
			wantStr: "[DUPLICATE_DESTINATION] destination used twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrMoveFailed, "failed to move %q", "foo")

		if err.Wrapped != baseErr {
			t.Error("Wrapf() should preserve wrapped error")
		}

		wantStr := `[MOVE_FAILED] failed to move "foo": permission denied`
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDestinationExists, "exists").
		WithDetail("path", "/test/path").
		WithDetails(map[string]interface{}{"count": 2})

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}
	if err.Details["count"] != 2 {
		t.Errorf("WithDetails() count = %v, want 2", err.Details["count"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrMoveFailed, "error 1")
	err2 := errors.New(errors.ErrMoveFailed, "error 2")
	err3 := errors.New(errors.ErrUndoFailed, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNothingToDo, "nothing to do"),
			code:     errors.ErrNothingToDo,
			expected: true,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrEditorLaunchFailed, "editor"),
			code:     errors.ErrEditorLaunchFailed,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknown,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknown,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.Cancelled()); got != errors.ErrUserCancelled {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUserCancelled)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "cancelled", err: errors.Cancelled(), want: 0},
		{name: "nothing_to_do", err: errors.New(errors.ErrNothingToDo, "nothing"), want: 0},
		{name: "empty_plan", err: errors.New(errors.ErrEmptyPlan, "empty"), want: 1},
		{name: "standard_error", err: stderrors.New("boom"), want: 1},
		{
			name: "editor_exit_status",
			err: errors.New(errors.ErrEditorLaunchFailed, "editor failed").
				WithDetail(errors.DetailExitCode, 3),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
