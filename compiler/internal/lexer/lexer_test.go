package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/j2cs/j2cs/compiler/internal/diag"
)

func classesFrom(t *testing.T, src string) ([]Class, []string) {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	var cs []Class
	var lexes []string
	for _, tk := range toks {
		cs = append(cs, tk.Class)
		lexes = append(lexes, tk.Lex)
	}
	return cs, lexes
}

func TestEOFIsIdempotent(t *testing.T) {
	lx := New("  \n\t")
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if tok.Class != ClassEOF {
			t.Fatalf("call %d: expected EOF, got %v", i, tok.Class)
		}
	}
}

func TestClassHeaderAndMethod(t *testing.T) {
	src := "public class A {\n  public static void m() { int x = 1 + 2; }\n}"
	cs, lexes := classesFrom(t, src)
	want := []Class{
		ClassAccess, ClassKeyword, ClassIdent, ClassPunct,
		ClassAccess, ClassKeyword, ClassType, ClassIdent, ClassPunct, ClassPunct, ClassPunct,
		ClassType, ClassIdent, ClassOperator, ClassInt, ClassOperator, ClassInt, ClassPunct,
		ClassPunct, ClassPunct, ClassEOF,
	}
	if len(cs) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(cs), len(want), lexes)
	}
	for i := range want {
		if cs[i] != want[i] {
			t.Fatalf("cs[%d]=%v, want %v (lex %q)", i, cs[i], want[i], lexes[i])
		}
	}
}

func TestPositions(t *testing.T) {
	toks, err := Tokenize("int x;\n  x = 10;")
	if err != nil {
		t.Fatal(err)
	}
	// "x" on line 2 is the fourth token.
	x := toks[3]
	if x.Lex != "x" || x.Line != 2 || x.Col != 3 {
		t.Fatalf("got %+v, want x at 2:3", x)
	}
	ten := toks[5]
	if ten.Lex != "10" || ten.Line != 2 || ten.Col != 7 {
		t.Fatalf("got %+v, want 10 at 2:7", ten)
	}
}

func TestLiterals(t *testing.T) {
	cases := []struct {
		src   string
		class Class
		lex   string
	}{
		{`"hello world"`, ClassString, "hello world"},
		{`""`, ClassString, ""},
		{`'c'`, ClassChar, "c"},
		{`42`, ClassInt, "42"},
		{`3.14`, ClassFloat, "3.14"},
		{`true`, ClassBool, "true"},
		{`false`, ClassBool, "false"},
		{`counter1`, ClassIdent, "counter1"},
		{`trueish`, ClassIdent, "trueish"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tok, err := New(c.src).Next()
			if err != nil {
				t.Fatalf("next: %v", err)
			}
			if tok.Class != c.class || tok.Lex != c.lex {
				t.Fatalf("got %v %q, want %v %q", tok.Class, tok.Lex, c.class, c.lex)
			}
		})
	}
}

func TestStringHasNoEscapes(t *testing.T) {
	_, lexes := classesFrom(t, `"a\" b"`)
	// the backslash is kept and the second quote closes the literal
	if lexes[0] != `a\` {
		t.Fatalf("got %q", lexes[0])
	}
}

func TestOperatorsAreGreedyPrefixes(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"a<=b", []string{"a", "<=", "b", ""}},
		{"i++", []string{"i", "++", ""}},
		{"x=-1", []string{"x", "=", "-", "1", ""}},
		{"a&&!b", []string{"a", "&&", "!", "b", ""}},
		{"x += 2", []string{"x", "+=", "2", ""}},
		{"a != b || c", []string{"a", "!=", "b", "||", "c", ""}},
	}
	for _, c := range cases {
		_, lexes := classesFrom(t, c.src)
		if strings.Join(lexes, " ") != strings.Join(c.want, " ") {
			t.Fatalf("%q: got %q, want %q", c.src, lexes, c.want)
		}
	}
}

func TestComments(t *testing.T) {
	src := "int x; // trailing words ; 1.2.3\n/* block\n comment */ x = 1;"
	_, lexes := classesFrom(t, src)
	want := []string{"int", "x", ";", "x", "=", "1", ";", ""}
	if strings.Join(lexes, "|") != strings.Join(want, "|") {
		t.Fatalf("got %q, want %q", lexes, want)
	}
}

func TestReservedWordsMatchIncrementally(t *testing.T) {
	cs, lexes := classesFrom(t, "format break")
	want := []string{"for", "mat", "break", ""}
	if strings.Join(lexes, " ") != strings.Join(want, " ") {
		t.Fatalf("got %q, want %q", lexes, want)
	}
	if cs[0] != ClassKeyword || cs[1] != ClassIdent || cs[2] != ClassKeyword {
		t.Fatalf("classes = %v", cs)
	}
}

func TestPrintMethodMerged(t *testing.T) {
	cs, lexes := classesFrom(t, `System.out.println("hi"); System.out.print(1);`)
	if lexes[0] != "System.out.println" || cs[0] != ClassIdent {
		t.Fatalf("first token = %v %q", cs[0], lexes[0])
	}
	if lexes[5] != "System.out.print" {
		t.Fatalf("sixth token = %q", lexes[5])
	}

	// other dotted names stay split
	_, lexes = classesFrom(t, "System.err")
	if strings.Join(lexes, " ") != "System . err " {
		t.Fatalf("got %q", lexes)
	}
}

func TestLexicalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		key  string
		line int
		col  int
	}{
		{"trailing dot", "x = 12.;", "JLE0003", 1, 5},
		{"second dot", "x = 1.2.3;", "JLE0003", 1, 5},
		{"letter in number", "\n  12ab", "JLE0003", 2, 3},
		{"long char", "'ab'", "JLE0002", 1, 1},
		{"empty char", "''", "JLE0002", 1, 1},
		{"lone ampersand", "a & b", "JLE0004", 1, 3},
		{"lone bar", "a | b", "JLE0004", 1, 3},
		{"unterminated string", `"abc`, "JLE0001", 1, 1},
		{"unterminated comment", "/* abc", "JLE0006", 1, 1},
		{"stray rune", "int #x;", "JLE0005", 1, 5},
		{"non-ascii digit", "x = \u0663;", "JLE0005", 1, 5},
		{"non-ascii digit in number", "x = 1\u0663;", "JLE0003", 1, 5},
		{"fullwidth digit", "x = \uff17;", "JLE0005", 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Tokenize(c.src)
			var d diag.Diagnostic
			if !errors.As(err, &d) {
				t.Fatalf("expected diagnostic, got %v", err)
			}
			if d.Kind != diag.Lexical || d.Code != c.key {
				t.Fatalf("got kind %v code %s (%v)", d.Kind, d.Code, d)
			}
			if d.Span.Start.Line != c.line || d.Span.Start.Col != c.col {
				t.Fatalf("got %d:%d, want %d:%d", d.Span.Start.Line, d.Span.Start.Col, c.line, c.col)
			}
		})
	}
}

func TestFromTokensReplaysEOF(t *testing.T) {
	toks, err := Tokenize("x")
	if err != nil {
		t.Fatal(err)
	}
	src := FromTokens(toks)
	for i := 0; i < 4; i++ {
		tok, _ := src.Next()
		if i >= 1 && tok.Class != ClassEOF {
			t.Fatalf("call %d: %v", i, tok)
		}
	}
}
