// Package plan turns one round of edited lines into a validated rename plan.
//
// The stages are small functions so the session can interleave them with
// user prompts:
//
//	lines := plan.ExtractPaths(raw)            // drop header and trailing blanks
//	err := plan.CheckStructure(orig, lines)    // EMPTY_PLAN, LINE_COUNT_MISMATCH
//	ws := plan.TrailingWhitespace(lines)       // reported, never fatal
//	p, err := plan.Pair(orig, lines, abs)      // NOTHING_TO_DO when unchanged
//	report := plan.DetectCollisions(fs, p)     // duplicates, existing, ancestors
//
// Build runs the structural stages in one call for callers that have no
// whitespace policy to apply.
package plan
