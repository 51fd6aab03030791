package schema

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formtree/pkg/diag"
)

// SchemaError reports that a document could not be accepted: either the YAML
// itself was malformed or validation produced at least one error-severity
// diagnostic. It is always scoped to a single document; sibling documents are
// unaffected.
type SchemaError struct {
	File        string
	Diagnostics diag.List
	Err         error
}

// Error renders the file, the wrapped cause, and any error diagnostics.
func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "schema: %s", e.File)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if errs := e.Diagnostics.Errors(); len(errs) > 0 {
		fmt.Fprintf(&b, ": %d validation error(s)", len(errs))
		for _, d := range errs {
			b.WriteString("\n\t")
			b.WriteString(d.Message)
		}
	}
	return b.String()
}

// Unwrap exposes the underlying YAML error, if any.
func (e *SchemaError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
