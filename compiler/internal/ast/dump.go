package ast

import (
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/term"
)

/*** DUMP (debug tree for the CLI) ***/

// Dump renders n as an indented outline, one node per line.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func line(b *strings.Builder, level int, format string, a ...any) {
	if level > 0 {
		b.WriteString(strings.Repeat("|   ", level-1))
		b.WriteString("|+-")
	}
	term.Bprintf(b, format, a...)
	b.WriteByte('\n')
}

func dump(b *strings.Builder, n Node, level int) {
	switch v := n.(type) {
	case *Program:
		line(b, level, "Program %s", v.Class)
		for _, m := range v.Methods {
			dump(b, m, level+1)
		}
	case *Method:
		line(b, level, "Method %s %s %s", v.Access, v.Ret, v.Name)
		dump(b, v.Params, level+1)
		dump(b, v.Body, level+1)
	case *Params:
		line(b, level, "Params")
		for _, p := range v.List {
			line(b, level+1, "Param %s %s", p.Type, p.Name)
		}
	case *Block:
		line(b, level, "Block")
		for _, s := range v.Stmts {
			dump(b, s, level+1)
		}
	case *Decl:
		line(b, level, "Decl %s %s", v.Type, v.Name)
		if v.Init != nil {
			dump(b, v.Init, level+1)
		}
	case *Assign:
		line(b, level, "Assign %s %s", v.Name, v.Op)
		dump(b, v.Value, level+1)
	case *IncDec:
		line(b, level, "IncDec %s%s", v.Name, v.Op)
	case *If:
		line(b, level, "If")
		dump(b, v.Cond, level+1)
		dump(b, v.Then, level+1)
		if v.Else != nil {
			line(b, level+1, "Else")
			dump(b, v.Else, level+2)
		}
	case *While:
		line(b, level, "While")
		dump(b, v.Cond, level+1)
		dump(b, v.Body, level+1)
	case *For:
		line(b, level, "For")
		dump(b, v.Init, level+1)
		dump(b, v.Cond, level+1)
		dump(b, v.Post, level+1)
		dump(b, v.Body, level+1)
	case *Switch:
		line(b, level, "Switch")
		dump(b, v.Tag, level+1)
		for _, c := range v.Cases {
			line(b, level+1, "Case")
			dump(b, c.Value, level+2)
			dump(b, c.Body, level+2)
		}
		line(b, level+1, "Default")
		dump(b, v.Default, level+2)
	case *Print:
		line(b, level, "Print newline=%t", v.Newline)
		if v.Arg != nil {
			dump(b, v.Arg, level+1)
		}
	case *Return:
		line(b, level, "Return")
		if v.Value != nil {
			dump(b, v.Value, level+1)
		}
	case *Lit:
		line(b, level, "Lit %s %q", v.Kind, v.Value)
	case *Var:
		line(b, level, "Var %s", v.Name)
	case *Unary:
		line(b, level, "Unary %s", v.Op)
		dump(b, v.X, level+1)
	case *Binary:
		line(b, level, "Binary %s", v.Op)
		dump(b, v.Left, level+1)
		dump(b, v.Right, level+1)
	default:
		line(b, level, "<%T>", n)
	}
}
