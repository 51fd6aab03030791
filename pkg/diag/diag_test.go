package diag_test

import (
	"testing"

	"github.com/goliatone/go-formtree/pkg/diag"
)

func TestDiagnostic_String(t *testing.T) {
	d := diag.Errorf("form_template.yaml", "bad component %q", "x")
	d.Line = 12
	d.Column = 3

	want := "form_template.yaml:12:3: error: bad component \"x\""
	if got := d.String(); got != want {
		t.Fatalf("unexpected rendering: %s", got)
	}
}

func TestDiagnostic_StringWithoutPosition(t *testing.T) {
	d := diag.Warnf("", "component has no name")
	if got := d.String(); got != "warning: component has no name" {
		t.Fatalf("unexpected rendering: %s", got)
	}
}

func TestList_Filters(t *testing.T) {
	list := diag.List{
		diag.Errorf("a.yaml", "first"),
		diag.Warnf("a.yaml", "second"),
		diag.Errorf("b.yaml", "third"),
	}

	if !list.HasErrors() {
		t.Fatalf("expected errors present")
	}
	if got := len(list.Errors()); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}
	if got := len(list.Warnings()); got != 1 {
		t.Fatalf("expected 1 warning, got %d", got)
	}

	messages := list.Messages()
	if len(messages) != 3 || messages[0] != "first" || messages[2] != "third" {
		t.Fatalf("messages out of order: %v", messages)
	}

	var empty diag.List
	if empty.HasErrors() {
		t.Fatalf("empty list should have no errors")
	}
	if empty.Messages() != nil {
		t.Fatalf("empty list should yield nil messages")
	}
}
