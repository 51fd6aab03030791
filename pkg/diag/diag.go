// Package diag holds the diagnostic records produced while parsing and
// validating application schemas. Errors block acceptance of the document or
// node they belong to; warnings never block anything.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityError marks diagnostics that block acceptance.
	SeverityError Severity = "error"
	// SeverityWarning marks advisory diagnostics that never block.
	SeverityWarning Severity = "warning"
)

// Diagnostic describes a single finding tied to a source document. Line and
// Column are 1-based and zero when unknown.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Message  string
	Severity Severity
}

// String renders the diagnostic in a file:line: severity: message shape.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.File != "" {
		b.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&b, ":%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&b, ":%d", d.Column)
			}
		}
		b.WriteString(": ")
	}
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// Errorf builds an error-severity diagnostic for the given file.
func Errorf(file, format string, args ...any) Diagnostic {
	return Diagnostic{File: file, Message: fmt.Sprintf(format, args...), Severity: SeverityError}
}

// Warnf builds a warning-severity diagnostic for the given file.
func Warnf(file, format string, args ...any) Diagnostic {
	return Diagnostic{File: file, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning}
}

// List aggregates diagnostics in the order they were collected. Traversal
// order is significant and preserved; callers must not rely on de-duplication.
type List []Diagnostic

// Errors returns the error-severity subset, preserving order.
func (l List) Errors() List {
	return l.filter(SeverityError)
}

// Warnings returns the warning-severity subset, preserving order.
func (l List) Warnings() List {
	return l.filter(SeverityWarning)
}

// HasErrors reports whether the list contains at least one error.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Messages returns the raw message strings in order.
func (l List) Messages() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.Message
	}
	return out
}

func (l List) filter(severity Severity) List {
	var out List
	for _, d := range l {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
