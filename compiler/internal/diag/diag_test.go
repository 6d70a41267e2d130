package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCatalogLookup(t *testing.T) {
	ce, ok := Lookup("type", "undeclared")
	if !ok {
		t.Fatalf("undeclared code missing from catalog")
	}
	if ce.ID != "JTE0001" {
		t.Fatalf("got id %q, want JTE0001", ce.ID)
	}
	if _, ok := Lookup("nope", "undeclared"); ok {
		t.Fatalf("unknown domain should not resolve")
	}
	fb := MustLookup("type", "missing_key", "X0000", "fallback")
	if fb.ID != "X0000" || fb.Title != "fallback" {
		t.Fatalf("fallback not used: %+v", fb)
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Sema("undeclared", At(3, 7, 1), "undeclared identifier %q", "cont")
	d.Suggest = "count"
	got := d.Error()
	want := `3:7: semantic error: undeclared identifier "cont" (did you mean "count"?)`
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if d.Code != "JTE0001" {
		t.Fatalf("code = %q", d.Code)
	}

	e := Expect(At(1, 2, 1), "';'", "'}'")
	if e.Kind != Syntax || e.Expected != "';'" {
		t.Fatalf("unexpected syntax diagnostic: %+v", e)
	}
}

func TestKindOfUnwraps(t *testing.T) {
	err := fmt.Errorf("translate a.java: %w", Lex("bad_number", 1, 1, "trailing dot"))
	k, ok := KindOf(err)
	if !ok || k != Lexical {
		t.Fatalf("KindOf = %v, %v", k, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain error should not carry a kind")
	}
}

func TestRenderPretty(t *testing.T) {
	src := []byte("class A {\n  int x = y;\n}\n")
	d := Sema("undeclared", At(2, 11, 1), "undeclared identifier %q", "y")
	out := RenderPretty(d, "A.java", src)
	for _, want := range []string{
		"error[JTE0001]: semantic error: undeclared identifier \"y\"",
		" --> A.java:2:11",
		" 2 |   int x = y;",
		"   |           ^",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if got := RenderPretty(errors.New("boom"), "", nil); got != "error: boom\n" {
		t.Fatalf("plain error rendered as %q", got)
	}
}
