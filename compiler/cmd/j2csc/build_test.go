package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j2cs/j2cs/compiler/internal/lexer"
)

func TestParseBuildArgs(t *testing.T) {
	a, err := parseBuildArgs([]string{"A.java", "--tree", "--out", "gen", "B.java", "--jobs=2"})
	if err != nil {
		t.Fatal(err)
	}
	if a.out != "gen" || !a.tree || a.jobs != 2 || len(a.files) != 2 || a.files[1] != "B.java" {
		t.Fatalf("unexpected args: %+v", a)
	}

	a, err = parseBuildArgs([]string{"--", "--odd.java"})
	if err != nil || len(a.files) != 1 || a.files[0] != "--odd.java" {
		t.Fatalf("-- handling: %+v, %v", a, err)
	}

	bad := [][]string{
		nil,
		{"--out"},
		{"--jobs=0", "A.java"},
		{"--bogus", "A.java"},
		{"--csc", "A.java"},
	}
	for _, argv := range bad {
		if _, err := parseBuildArgs(argv); !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("%v: expected ErrHelp, got %v", argv, err)
		}
	}
}

func TestOutputFor(t *testing.T) {
	if got := outputFor("x/Out.cs", "A.java", 1); got != "x/Out.cs" {
		t.Fatalf("got %s", got)
	}
	if got, want := outputFor("gen", "src/A.java", 2), filepath.Join("gen", "A.cs"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestCmdBuildWritesFiles(t *testing.T) {
	dir := t.TempDir()
	srcs := map[string]string{
		"A.java": "public class A { public static void m() { int x = 1 + 2; } }",
		"B.java": "public class B { public static boolean f(int n) { return n > 1; } }",
	}
	var files []string
	for name, src := range srcs {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, p)
	}
	out := filepath.Join(dir, "gen")
	if code := cmdBuild(append([]string{"--out=" + out, "--jobs=2"}, files...)); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	got, err := os.ReadFile(filepath.Join(out, "B.cs"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "class B \n{\npublic bool f(int n) \n{\nreturn (n > 1);\n}\n}\n"; string(got) != want {
		t.Fatalf("B.cs = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(out, "A.cs")); err != nil {
		t.Fatalf("A.cs: %v", err)
	}
}

func TestCmdBuildExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "Bad.java")
	if err := os.WriteFile(bad, []byte("public class Bad { public static void m() { x = 1; } }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := cmdBuild([]string{bad}); code != 1 {
		t.Fatalf("translation error: exit = %d, want 1", code)
	}
	if code := cmdBuild([]string{"--nope"}); code != 2 {
		t.Fatalf("usage error: exit = %d, want 2", code)
	}
}

func TestCmdBuildWithCompiler(t *testing.T) {
	if _, err := exec.LookPath("mcs"); err != nil {
		t.Skip("mcs not found; skipping csc hand-off test")
	}
	t.Setenv("J2CS_CSC", "mcs")
	dir := t.TempDir()
	src := filepath.Join(dir, "Hello.java")
	java := `public class Hello {
  public static void main() {
    for (int i = 0; i < 3; i++) { System.out.println(i); }
  }
}`
	if err := os.WriteFile(src, []byte(java), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "Hello.cs")
	if code := cmdBuild([]string{"--csc", "--out=" + out, src}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "Hello.dll")); err != nil {
		t.Fatalf("assembly missing: %v", err)
	}
}

func TestReplEval(t *testing.T) {
	var out, errw bytes.Buffer
	r := &repl{out: &out, errw: &errw}

	if r.eval(":tree") || !r.tree {
		t.Fatalf(":tree did not toggle")
	}
	if r.eval("public class A { public static void m() { char c = 'x'; } }") {
		t.Fatalf("eval asked to quit")
	}
	if !strings.Contains(out.String(), "Program A") || !strings.Contains(out.String(), "char c = 'x';") {
		t.Fatalf("output: %q", out.String())
	}

	r.eval("public class A { public static void m() { int c = 'x'; } }")
	if !strings.Contains(errw.String(), "error[JTE0003]") {
		t.Fatalf("stderr: %q", errw.String())
	}
	if !r.eval(":quit") {
		t.Fatalf(":quit should end the session")
	}
}

func TestNeedsMore(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"public class A {", true},
		{"public class A {\n public static void m() {", true},
		{"public class A { }", false},
		{":tree", false},
		{"\"unterminated", false},
		{"", false},
	}
	for _, c := range cases {
		if got := needsMore(c.src); got != c.want {
			t.Fatalf("needsMore(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestParseTokenDump(t *testing.T) {
	src := "public class T { public static int f(int a) { return a * 2; } }"
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := lexer.WriteNDJSON(&buf, toks, nil); err != nil {
		t.Fatal(err)
	}
	dump := filepath.Join(t.TempDir(), "T.ndjson")
	if err := os.WriteFile(dump, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	u, err := parseTokenDump(dump)
	if err != nil {
		t.Fatal(err)
	}
	if want := "class T \n{\npublic int f(int a) \n{\nreturn (a * 2);\n}\n}"; u.CS != want {
		t.Fatalf("got %q, want %q", u.CS, want)
	}
	if code := cmdParse([]string{"--tokens=" + dump}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if code := cmdParse([]string{"--tokens=" + dump, "T.java"}); code != 2 {
		t.Fatalf("both inputs: exit = %d, want 2", code)
	}
}
