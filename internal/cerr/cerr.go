// Package cerr renders the core's error taxonomy as structural,
// position-aware errors. It never writes anything itself — the core
// returns these values, and only a caller (e.g. the CLI) decides whether
// and how to print them.
package cerr

import (
	"fmt"
	"strings"

	"github.com/hatchan/smellcop/internal/ast"
)

// Kind classifies which branch of the error taxonomy an Error belongs to.
type Kind string

const (
	KindSyntaxError     Kind = "SyntaxError"
	KindUnknownNodeRole Kind = "UnknownNodeRole"
	KindBadConfiguration Kind = "BadConfiguration"
	KindDetectorFailure Kind = "DetectorFailure"
)

// Error is a structural error produced while examining one source file.
// It carries enough context (source text + position) to render a
// caret-pointer diagnostic.
type Error struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     ast.Position

	// Detector/Context identify the offending detector for DetectorFailure.
	Detector string
	Context  string
	Cause    error
}

func (e *Error) Error() string {
	return e.Format(false)
}

func (e *Error) Unwrap() error { return e.Cause }

// Format renders the error with a source line and a caret pointing at the
// offending column.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *Error) sourceLine(line int) string {
	if e.Source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SyntaxError wraps a parse failure reported by the (external) parser
// collaborator; analysis of the offending file ends.
func SyntaxError(source, file, message string, pos ast.Position) *Error {
	return &Error{Kind: KindSyntaxError, Message: message, Source: source, File: file, Pos: pos}
}

// FromUnknownNodeRole converts a structural classification failure into the
// corresponding pseudo-error; fatal to this file only.
func FromUnknownNodeRole(source, file string, cause *ast.UnknownNodeRole) *Error {
	return &Error{
		Kind:    KindUnknownNodeRole,
		Message: cause.Error(),
		Source:  source,
		File:    file,
		Pos:     cause.Pos,
		Cause:   cause,
	}
}

// BadConfiguration is raised at configuration load time; fatal to the run.
func BadConfiguration(message string, cause error) *Error {
	return &Error{Kind: KindBadConfiguration, Message: message, Cause: cause}
}

// DetectorFailure converts a detector panic/error into a pseudo-warning
// source; other detectors continue.
func DetectorFailure(detector, context string, cause error) *Error {
	return &Error{
		Kind:     KindDetectorFailure,
		Message:  fmt.Sprintf("detector %q failed on %q: %v", detector, context, cause),
		Detector: detector,
		Context:  context,
		Cause:    cause,
	}
}
