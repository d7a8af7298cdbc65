// Package session drives one edit-move invocation.
//
// A session is a state machine over tagged states:
//
//	Editing -> Validating -> [Previewing] -> Applying -> Done
//	               |              |
//	               +---> Editing <+          (restart)
//	any gate ----------------------------> Aborted
//
// Each Step is a function from the current state to the next one. A restart
// is simply a transition back to Editing carrying the content to edit: the
// pristine listing after a line count problem, the latest edit otherwise.
//
// The session talks to the outside world through three capabilities: an
// Editor, a Prompter and a ui.Renderer. Filesystem access goes through
// types.FS, so the whole machine runs against an in-memory filesystem in tests.
package session
