package report

// Position is a single line/column source coordinate.  Lines and columns are
// both 1-indexed, except for the special position (0, 0) used by the
// "Missing return value" diagnostic (see SPEC_FULL.md §4.3, §9).
type Position struct {
	Line, Col int
}

// ZeroPosition is the sentinel position used when a diagnostic has no
// sensible source location of its own.
var ZeroPosition = Position{Line: 0, Col: 0}
