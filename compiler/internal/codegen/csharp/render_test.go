package csharp

import (
	"strings"
	"testing"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/parser"
)

func translate(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return Generate(prog)
}

func TestGenerateMinimal(t *testing.T) {
	got := translate(t, "public class A { public static void m() { int x = 1 + 2; } }")
	want := "class A \n{\npublic void m() \n{\nint x = 3;\n}\n}"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestGenerateEmptyClass(t *testing.T) {
	if got, want := translate(t, "public class Empty { }"), "class Empty \n{\n}"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateStatements(t *testing.T) {
	src := `public class Demo {
  public static boolean check(int n, String s) {
    boolean ok = n > 2;
    if (ok) { System.out.println(s); } else if (n == 0) { System.out.print("zero"); } else { n--; }
    while (n < 10) { n += 3; }
    for (int i = 0; i < n; i++) { System.out.println(i * 2); }
    switch (s) { case "a": n = 1; break; default: System.out.println(); }
    char c = 'q';
    return !ok;
  }
  private static double half(double d) {
    return d / 2.0;
  }
}`
	want := strings.Join([]string{
		"class Demo \n{\n",
		"public bool check(int n, string s) \n{\n",
		"bool ok = (n > 2);\n",
		"if (ok) \n{\nConsole.WriteLine(s);\n}\n",
		"else if ((n == 0)) \n{\nConsole.Write(\"zero\");\n}\n",
		"else \n{\nn--;\n}\n",
		"while ((n < 10)) \n{\nn += 3;\n}\n",
		"for (int i = 0; (i < n); i++) \n{\nConsole.WriteLine((i * 2));\n}\n",
		"switch (s) \n{\ncase \"a\":\nn = 1;\nbreak;\ndefault:\nConsole.WriteLine();\nbreak;\n}\n",
		"char c = 'q';\n",
		"return !ok;\n",
		"}\n",
		"private double half(double d) \n{\n",
		"return (d / 2.0);\n",
		"}\n",
		"}",
	}, "")
	if got := translate(t, src); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateNestedNegation(t *testing.T) {
	got := translate(t, "public class A { public static void m(int x) { int y = -(-x); boolean b = !(!true); } }")
	want := "class A \n{\npublic void m(int x) \n{\nint y = -(-x);\nbool b = true;\n}\n}"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestRenderExpressions(t *testing.T) {
	a, b, c := &ast.Var{Name: "a"}, &ast.Var{Name: "b"}, &ast.Var{Name: "c"}
	cases := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"string", &ast.Lit{Kind: ast.LitString, Value: "hi there"}, `"hi there"`},
		{"char", &ast.Lit{Kind: ast.LitChar, Value: "x"}, `'x'`},
		{"double", &ast.Lit{Kind: ast.LitFloat, Value: "2.0"}, "2.0"},
		{"bool", &ast.Lit{Kind: ast.LitBool, Value: "true"}, "true"},
		{"nested binary", &ast.Binary{Op: ast.OpAdd, Left: &ast.Binary{Op: ast.OpMul, Left: a, Right: b}, Right: c}, "((a * b) + c)"},
		{"right nested", &ast.Binary{Op: ast.OpSub, Left: a, Right: &ast.Binary{Op: ast.OpSub, Left: b, Right: c}}, "(a - (b - c))"},
		{"negate group", &ast.Unary{Op: ast.OpNeg, X: &ast.Binary{Op: ast.OpAdd, Left: a, Right: b}}, "-(a + b)"},
		{"not", &ast.Unary{Op: ast.OpNot, X: a}, "!a"},
		{"double negation", &ast.Unary{Op: ast.OpNeg, X: &ast.Unary{Op: ast.OpNeg, X: a}}, "-(-a)"},
		{"double not", &ast.Unary{Op: ast.OpNot, X: &ast.Unary{Op: ast.OpNot, X: a}}, "!(!a)"},
		{"negate negative literal", &ast.Unary{Op: ast.OpNeg, X: &ast.Lit{Kind: ast.LitInt, Value: "-3"}}, "-(-3)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.expr); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderTypeNames(t *testing.T) {
	cases := map[string]string{
		"boolean": "bool",
		"String":  "string",
		"string":  "string",
		"int":     "int",
		"double":  "double",
		"char":    "char",
		"long":    "long",
	}
	for src, want := range cases {
		got := Render(&ast.Decl{Type: src, Name: "v"})
		if got != want+" v;\n" {
			t.Fatalf("%s: got %q, want %q", src, got, want+" v;\n")
		}
	}
}

func TestRenderNestedBlock(t *testing.T) {
	blk := &ast.Block{Stmts: []ast.Stmt{
		&ast.Block{Stmts: []ast.Stmt{&ast.IncDec{Name: "i", Op: ast.OpInc}}},
		&ast.Return{},
	}}
	if got, want := Render(blk), "{\ni++;\n}\nreturn;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	src := "public class R { public static int f(int a) { int b = a % 7; return b * b - a; } }"
	first := translate(t, src)
	for i := 0; i < 5; i++ {
		if got := translate(t, src); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}
