package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Color styles for diagnostic output, matching the teacher's
// src/logging/display.go palette.
var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// display prints a single diagnostic following the project's conventional
// format: "<line>:<col> ***ERROR*** <message>", prefixed with a colored
// banner and, when source text is available, a caret-underlined excerpt.
func (s *Sink) display(msg Message) {
	fmt.Fprintln(os.Stderr)

	if msg.IsError {
		fmt.Fprint(os.Stderr, errorStyleBG.Sprint(" Error "))
	} else {
		fmt.Fprint(os.Stderr, warnStyleBG.Sprint(" Warning "))
	}

	fmt.Fprint(os.Stderr, " ")

	label := "***ERROR***"
	colorFG := errorColorFG
	if !msg.IsError {
		label = "***WARNING***"
		colorFG = warnColorFG
	}

	fmt.Fprintf(os.Stderr, "%d:%d %s %s\n", msg.Pos.Line, msg.Pos.Col, label, msg.Text)

	if s.LogLevel == LogLevelVerbose && s.SourceLines != nil && msg.Pos.Line >= 1 && msg.Pos.Line <= len(s.SourceLines) {
		s.displaySourceExcerpt(msg.Pos, colorFG)
	}
}

// displaySourceExcerpt prints the offending source line with a caret placed
// under the reported column, mirroring the teacher's displayCodeSelection.
func (s *Sink) displaySourceExcerpt(pos Position, colorFG pterm.Color) {
	line := s.SourceLines[pos.Line-1]
	trimmed := strings.ReplaceAll(line, "\t", "    ")

	fmt.Fprint(os.Stderr, infoColorFG.Sprintf("%4d", pos.Line))
	fmt.Fprint(os.Stderr, " |  ")
	fmt.Fprintln(os.Stderr, trimmed)

	fmt.Fprint(os.Stderr, "     |  ")
	col := pos.Col - 1
	if col < 0 {
		col = 0
	}
	if col > len(trimmed) {
		col = len(trimmed)
	}
	fmt.Fprint(os.Stderr, strings.Repeat(" ", col))
	fmt.Fprintln(os.Stderr, colorFG.Sprint("^"))
}

// displayICE displays an internal compiler error message.  These always
// print, regardless of log level.
func displayICE(message string) {
	fmt.Fprintln(os.Stderr, errorStyleBG.Sprint(" Internal Error "))
	fmt.Fprintln(os.Stderr, errorColorFG.Sprint(message))
	fmt.Fprintln(os.Stderr, infoColorFG.Sprint("this is a bug in the analyzer, not in the analyzed program"))
}
