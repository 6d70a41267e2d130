package parser_test

import (
	"testing"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
	"github.com/j2cs/j2cs/compiler/internal/parser"
)

// The parser only pulls tokens; a replayed stream must give the same tree
// as lexing on demand.
func TestParseFromTokenStream(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "empty_method",
			src:  "public class A { public static void m() { } }",
		},
		{
			name: "loop_and_switch",
			src: `public class Counter {
  public static int tally(int n) {
    int total = 0;
    for (int i = 0; i < n; i++) {
      switch (i % 3) { case 0: total += 2; break; default: total++; }
    }
    return total;
  }
}`,
		},
		{
			name: "prints",
			src: `public class Hello {
  public static void main() {
    String who = "world";
    System.out.print("hello ");
    System.out.println(who);
  }
}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := lexer.Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			fromToks, err := parser.NewFromSource(lexer.FromTokens(toks)).ParseProgram()
			if err != nil {
				t.Fatalf("parse from tokens: %v", err)
			}
			direct, err := parser.Parse(c.src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got, want := ast.Dump(fromToks), ast.Dump(direct); got != want {
				t.Fatalf("trees differ\nfrom tokens:\n%s\ndirect:\n%s", got, want)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := `public class D {
  public static double f(double x) {
    double y = x * 2.5 + 1.0;
    if (y > 3.0) { y -= 1.0; } else { y += 1.0; }
    return y;
  }
}`
	first, err := parser.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Dump(first)
	for i := 0; i < 5; i++ {
		p, err := parser.Parse(src)
		if err != nil {
			t.Fatal(err)
		}
		if got := ast.Dump(p); got != want {
			t.Fatalf("run %d differs:\n%s\nwant:\n%s", i, got, want)
		}
	}
}
