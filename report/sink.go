// Package report implements the error sink: a line/column-tagged diagnostic
// reporter injected into both the name-analysis and type-check walks.
//
// Unlike the teacher's package-level `var rep *Reporter`, a Sink is a plain
// value constructed per analysis run (see DESIGN.md, "Open-question
// resolutions" #4) so that table-driven tests never share mutable global
// state between cases.
package report

import (
	"fmt"
	"os"
)

// Enumeration of the different possible log levels, mirroring the teacher's
// logging.LogLevel* constants.
const (
	LogLevelSilent  = iota // No output at all.
	LogLevelError          // Only errors.
	LogLevelWarn           // Errors and warnings.
	LogLevelVerbose        // Errors, warnings, and source excerpts (default).
)

// Message is a single reported diagnostic.
type Message struct {
	Pos     Position
	Text    string
	IsError bool
}

// Sink collects and displays diagnostics for a single analysis run.
type Sink struct {
	// LogLevel controls how much of what is reported actually gets printed.
	// Diagnostics are always recorded in Messages regardless of LogLevel.
	LogLevel int

	// SourceLines holds the source text being analyzed, split by line, so
	// that errors can be displayed with a caret-underlined excerpt.  It may
	// be nil, in which case excerpts are simply omitted.
	SourceLines []string

	// TreatWarningsAsErrors makes Warn raise the had-error flag the same
	// way Fatal does, following config.Config's switch of the same name.
	TreatWarningsAsErrors bool

	// Messages is the ordered list of every diagnostic reported so far, in
	// emission order.  Tests read this directly instead of scraping stderr.
	Messages []Message

	hadError bool
}

// NewSink creates a new diagnostic sink at the given log level.  source may
// be empty if no source excerpts should be displayed.
func NewSink(logLevel int, source string) *Sink {
	var lines []string
	if source != "" {
		lines = splitLines(source)
	}

	return &Sink{LogLevel: logLevel, SourceLines: lines}
}

// Fatal reports a fatal, user-visible diagnostic about the analyzed program
// at the given position.  It raises the had-error flag.  Reporting is a side
// effect only: it never unwinds control flow.
func (s *Sink) Fatal(pos Position, format string, args ...interface{}) {
	s.hadError = true
	msg := Message{Pos: pos, Text: fmt.Sprintf(format, args...), IsError: true}
	s.Messages = append(s.Messages, msg)

	if s.LogLevel > LogLevelSilent {
		s.display(msg)
	}
}

// Warn reports a non-fatal diagnostic. If TreatWarningsAsErrors is set, it
// raises the had-error flag exactly as Fatal does.
func (s *Sink) Warn(pos Position, format string, args ...interface{}) {
	if s.TreatWarningsAsErrors {
		s.hadError = true
	}

	msg := Message{Pos: pos, Text: fmt.Sprintf(format, args...), IsError: false}
	s.Messages = append(s.Messages, msg)

	if s.LogLevel >= LogLevelWarn {
		s.display(msg)
	}
}

// HadError reports whether any fatal diagnostic has been raised so far.
func (s *Sink) HadError() bool {
	return s.hadError
}

// ICE reports an internal compiler error: a defect in the analyzer itself
// (e.g. symtab.ErrEmptyTable, or an AST node of a kind a walk does not
// expect), not in the analyzed program.  ICEs are always displayed regardless of log level and
// terminate the process, mirroring the teacher's report.ReportICE.
func (s *Sink) ICE(format string, args ...interface{}) {
	displayICE(fmt.Sprintf(format, args...))
	os.Exit(2)
}

// logLevelNames maps the CLI/config level names to their numeric constants.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// ParseLogLevel converts a level name ("silent", "error", "warn",
// "verbose") into its numeric constant.
func ParseLogLevel(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i, c := range source {
		if c == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}
