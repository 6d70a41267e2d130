package main

import (
	"os"
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
	"github.com/j2cs/j2cs/compiler/internal/term"
)

/* ---------- lex ---------- */

const lexUsage = "usage: j2csc lex [--format=table|ndjson] <file.java>"

func cmdLex(args []string) int {
	format := "table"
	var file string
	for _, s := range args {
		switch {
		case strings.HasPrefix(s, "--format="):
			format = s[len("--format="):]
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln(lexUsage)
			return 2
		}
	}
	if file == "" || (format != "table" && format != "ndjson") {
		term.Eprintln(lexUsage)
		return 2
	}

	data, err := os.ReadFile(file)
	if err != nil {
		term.Eprintf("read %s: %v\n", file, err)
		return 1
	}
	toks, lexErr := lexer.Tokenize(string(data))

	if format == "ndjson" {
		// a lexical error is recorded as the final row
		if err := lexer.WriteNDJSON(os.Stdout, toks, lexErr); err != nil {
			term.Eprintf("write: %v\n", err)
			return 1
		}
		return 0
	}

	for _, t := range toks {
		if t.Class == lexer.ClassEOF {
			term.Printf("%d:%d  %s\n", t.Line, t.Col, t.Class)
			break
		}
		lex := t.Lex
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		term.Printf("%d:%d  %-16s  %q\n", t.Line, t.Col, t.Class, lex)
	}
	if lexErr != nil {
		term.Eprintf("%s", diag.RenderPretty(lexErr, file, data))
		return 1
	}
	return 0
}
