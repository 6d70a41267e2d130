// Package csharp renders a checked syntax tree as C# source text.
package csharp

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/term"
)

// typeNames covers the types whose C# spelling is not just the lower-cased
// source spelling.
var typeNames = map[string]string{
	"boolean": "bool",
}

var printMethods = map[bool]string{
	true:  "Console.WriteLine",
	false: "Console.Write",
}

// renderer holds per-call state; a Caser must not be shared between
// goroutines.
type renderer struct {
	lower cases.Caser
	b     strings.Builder
}

func newRenderer() *renderer {
	return &renderer{lower: cases.Lower(language.Und)}
}

// Render returns the C# text for any node. A Program renders as its class
// body only; Generate adds the header and braces.
func Render(n ast.Node) string {
	r := newRenderer()
	r.node(n)
	return r.b.String()
}

func (r *renderer) printf(format string, a ...any) { term.Bprintf(&r.b, format, a...) }

func (r *renderer) word(s string) string { return r.lower.String(s) }

func (r *renderer) typ(s string) string {
	if cs, ok := typeNames[s]; ok {
		return cs
	}
	return r.word(s)
}

// open writes the " \n{\n" that follows every construct head.
func (r *renderer) open() { r.b.WriteString(" \n{\n") }

func (r *renderer) node(n ast.Node) {
	switch v := n.(type) {
	case *ast.Program:
		for _, m := range v.Methods {
			r.node(m)
		}
	case *ast.Method:
		r.printf("%s %s %s(", r.word(v.Access), r.typ(v.Ret), v.Name)
		r.node(v.Params)
		r.b.WriteString(")")
		r.open()
		r.node(v.Body)
		r.b.WriteString("}\n")
	case *ast.Params:
		for i, p := range v.List {
			if i > 0 {
				r.b.WriteString(", ")
			}
			r.printf("%s %s", r.typ(p.Type), p.Name)
		}
	case *ast.Block:
		for _, s := range v.Stmts {
			r.stmt(s)
		}
	case ast.Stmt:
		r.stmt(v)
	case ast.Expr:
		r.b.WriteString(r.expr(v))
	default:
		panic(fmt.Sprintf("csharp: unhandled node %T", n))
	}
}

// stmt renders one statement inside a block, with its terminator.
func (r *renderer) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Block:
		r.b.WriteString("{\n")
		r.node(v)
		r.b.WriteString("}\n")
	case *ast.If:
		r.printf("if (%s)", r.expr(v.Cond))
		r.open()
		r.node(v.Then)
		r.b.WriteString("}\n")
		switch e := v.Else.(type) {
		case nil:
		case *ast.If:
			r.b.WriteString("else ")
			r.stmt(e)
		case *ast.Block:
			r.b.WriteString("else")
			r.open()
			r.node(e)
			r.b.WriteString("}\n")
		default:
			panic(fmt.Sprintf("csharp: unexpected else branch %T", e))
		}
	case *ast.While:
		r.printf("while (%s)", r.expr(v.Cond))
		r.open()
		r.node(v.Body)
		r.b.WriteString("}\n")
	case *ast.For:
		r.printf("for (%s; %s; %s)", r.simple(v.Init), r.expr(v.Cond), r.simple(v.Post))
		r.open()
		r.node(v.Body)
		r.b.WriteString("}\n")
	case *ast.Switch:
		r.printf("switch (%s)", r.expr(v.Tag))
		r.open()
		for _, c := range v.Cases {
			r.printf("case %s:\n", r.expr(c.Value))
			r.node(c.Body)
			r.b.WriteString("break;\n")
		}
		r.b.WriteString("default:\n")
		r.node(v.Default)
		r.b.WriteString("break;\n")
		r.b.WriteString("}\n")
	default:
		r.b.WriteString(r.simple(s))
		r.b.WriteString(";\n")
	}
}

// simple renders a statement that is terminated by ';', without the ';'.
func (r *renderer) simple(s ast.Stmt) string {
	switch v := s.(type) {
	case *ast.Decl:
		if v.Init == nil {
			return r.typ(v.Type) + " " + v.Name
		}
		return fmt.Sprintf("%s %s = %s", r.typ(v.Type), v.Name, r.expr(v.Init))
	case *ast.Assign:
		return fmt.Sprintf("%s %s %s", v.Name, v.Op, r.expr(v.Value))
	case *ast.IncDec:
		return v.Name + v.Op.String()
	case *ast.Print:
		arg := ""
		if v.Arg != nil {
			arg = r.expr(v.Arg)
		}
		return printMethods[v.Newline] + "(" + arg + ")"
	case *ast.Return:
		if v.Value == nil {
			return "return"
		}
		return "return " + r.expr(v.Value)
	default:
		panic(fmt.Sprintf("csharp: unhandled statement %T", s))
	}
}

func (r *renderer) expr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Lit:
		switch v.Kind {
		case ast.LitString:
			return `"` + v.Value + `"`
		case ast.LitChar:
			return "'" + v.Value + "'"
		default:
			return v.Value
		}
	case *ast.Var:
		return v.Name
	case *ast.Unary:
		x := r.expr(v.X)
		if nestsUnary(v.X) {
			x = "(" + x + ")"
		}
		return v.Op.String() + x
	case *ast.Binary:
		return "(" + r.expr(v.Left) + " " + v.Op.String() + " " + r.expr(v.Right) + ")"
	default:
		panic(fmt.Sprintf("csharp: unhandled expression %T", e))
	}
}

// nestsUnary reports whether x renders with a leading prefix operator,
// which must not fuse with an outer one into -- or similar.
func nestsUnary(x ast.Expr) bool {
	switch v := x.(type) {
	case *ast.Unary:
		return true
	case *ast.Lit:
		return strings.HasPrefix(v.Value, "-")
	}
	return false
}
