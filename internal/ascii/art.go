package ascii

import "strings"

// Art is a newline-joined block of ramp characters.
type Art string

// String implements fmt.Stringer.
func (a Art) String() string { return string(a) }

// Empty reports whether there is nothing to render or export.
func (a Art) Empty() bool { return len(a) == 0 }

// Lines splits the art on newlines. An empty Art yields a single empty line,
// matching how the bitmap renderer lays out rows.
func (a Art) Lines() []string {
	return strings.Split(string(a), "\n")
}

// Height returns the number of rows, 0 for empty art.
func (a Art) Height() int {
	if a.Empty() {
		return 0
	}
	return strings.Count(string(a), "\n") + 1
}

// Width returns the length of the longest row in characters.
func (a Art) Width() int {
	longest := 0
	for _, line := range a.Lines() {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return longest
}
