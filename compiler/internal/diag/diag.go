package diag

import (
	"errors"
	"fmt"
)

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// At returns a span covering n columns starting at line:col.
func At(line, col, n int) Span {
	if n < 1 {
		n = 1
	}
	return Span{Start: Pos{line, col}, End: Pos{line, col + n}}
}

// Kind classifies a diagnostic by the stage that raised it.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// ErrEmptyFile is reported when the source holds no tokens at all.
var ErrEmptyFile = errors.New("File is empty")

// Diagnostic is a compiler message with an optional span.
// Expected is set for syntax errors, Suggest for unresolved names.
type Diagnostic struct {
	Kind     Kind
	Code     string
	Span     Span
	Msg      string
	Expected string
	Suggest  string
}

func (d Diagnostic) Error() string {
	msg := d.Msg
	if d.Suggest != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, d.Suggest)
	}
	if d.Span.Start.Line == 0 {
		return fmt.Sprintf("%s error: %s", d.Kind, msg)
	}
	return fmt.Sprintf("%d:%d: %s error: %s", d.Span.Start.Line, d.Span.Start.Col, d.Kind, msg)
}

// New builds a diagnostic for (domain, key) using the catalog code when one exists.
func New(kind Kind, key string, span Span, format string, a ...any) Diagnostic {
	ce := MustLookup(domainOf(kind), key, "", "")
	return Diagnostic{Kind: kind, Code: ce.ID, Span: span, Msg: fmt.Sprintf(format, a...)}
}

// Lex reports a malformed literal or operator run at line:col.
func Lex(key string, line, col int, format string, a ...any) Diagnostic {
	return New(Lexical, key, At(line, col, 1), format, a...)
}

// Expect reports a missing token or symbol.
func Expect(span Span, want, got string) Diagnostic {
	d := New(Syntax, "expected", span, "expected %s, got %s", want, got)
	d.Expected = want
	return d
}

// Sema reports a scope or type violation.
func Sema(key string, span Span, format string, a ...any) Diagnostic {
	return New(Semantic, key, span, format, a...)
}

// KindOf reports the diagnostic kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var d Diagnostic
	if errors.As(err, &d) {
		return d.Kind, true
	}
	return 0, false
}

func domainOf(k Kind) string {
	switch k {
	case Lexical:
		return "lexer"
	case Syntax:
		return "parser"
	default:
		return "type"
	}
}
