package session

import (
	"github.com/arthur-debert/edit-move/pkg/executor"
	"github.com/arthur-debert/edit-move/pkg/types"
)

// State is one of Editing, Validating, Previewing, Applying, Done, Aborted.
type State interface {
	isState()
	String() string
}

// Editing opens Content in the editor.
type Editing struct {
	Content []string
}

// Validating checks the extracted lines of one edit round. Content is what
// was handed to the editor in that round.
type Validating struct {
	Edited  []string
	Content []string
}

// Previewing shows Plan and asks for confirmation.
type Previewing struct {
	Plan   types.RenamePlan
	Edited []string
}

// Applying runs Plan.
type Applying struct {
	Plan types.RenamePlan
}

// Done is terminal: the plan ran, possibly with failures the user resolved.
type Done struct {
	Result     *executor.Result
	RolledBack bool
}

// Aborted is terminal. Err is a cancellation when the user chose to stop.
type Aborted struct {
	Err error
}

func (Editing) isState()    {}
func (Validating) isState() {}
func (Previewing) isState() {}
func (Applying) isState()   {}
func (Done) isState()       {}
func (Aborted) isState()    {}

func (Editing) String() string    { return "editing" }
func (Validating) String() string { return "validating" }
func (Previewing) String() string { return "previewing" }
func (Applying) String() string   { return "applying" }
func (Done) String() string       { return "done" }
func (Aborted) String() string    { return "aborted" }

// Terminal reports whether s ends the session.
func Terminal(s State) bool {
	switch s.(type) {
	case Done, Aborted:
		return true
	}
	return false
}
