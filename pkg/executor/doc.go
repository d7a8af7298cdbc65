// Package executor performs a validated rename plan on the filesystem.
//
// A plan's source -> destination relation has in-degree and out-degree of at
// most one, so it splits into chains and cycles. Chains run tail-first: the
// last operation's destination is free, and each earlier operation becomes
// runnable once the one ahead of it has vacated its destination. A cycle has
// no such starting point, so one member is first moved to a scratch path,
// which turns the cycle into a chain; the scratch entry is moved to its real
// destination at the end.
//
// Missing destination directories are created shallowest first. Every
// successful mutation pushes an inverse step on an UndoStack, which the caller
// either discards or drains with Rollback.
//
// Moves are attempted independently: one failure does not stop unrelated
// operations, only the rest of its own chain or cycle.
package executor
