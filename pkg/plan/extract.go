package plan

import "strings"

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ExtractPaths returns the path lines of an edited listing.
//
// Trailing blank lines are ignored. Above the last non-blank line, everything
// up to and including the nearest blank line is treated as the instruction
// header and dropped. Without any blank line the whole remainder is kept.
// A listing made only of blank lines yields nil.
func ExtractPaths(lines []string) []string {
	last := len(lines) - 1
	for last >= 0 && isBlank(lines[last]) {
		last--
	}
	if last < 0 {
		return nil
	}

	first := 0
	for i := last - 1; i >= 0; i-- {
		if isBlank(lines[i]) {
			first = i + 1
			break
		}
	}

	out := make([]string, last-first+1)
	copy(out, lines[first:last+1])
	return out
}
