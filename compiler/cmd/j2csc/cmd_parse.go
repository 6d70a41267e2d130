package main

import (
	"os"
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/build"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
	"github.com/j2cs/j2cs/compiler/internal/term"
)

/* ---------- parse ---------- */

const parseUsage = "usage: j2csc parse [--verbose] (<file.java> | --tokens=<dump.ndjson>)"

func cmdParse(args []string) int {
	var file, tokens string
	for _, s := range args {
		switch {
		case s == "--verbose":
			term.Verbose = true
		case strings.HasPrefix(s, "--tokens="):
			tokens = s[len("--tokens="):]
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln(parseUsage)
			return 2
		}
	}
	if (file == "") == (tokens == "") {
		term.Eprintln(parseUsage)
		return 2
	}

	var (
		u   *build.Unit
		err error
	)
	if tokens != "" {
		u, err = parseTokenDump(tokens)
	} else {
		u, err = build.Translate(file)
	}
	if err != nil {
		report(err)
		return 1
	}
	term.Printf("%s", u.Tree())
	return 0
}

// parseTokenDump parses a stream written by "j2csc lex --format=ndjson".
// The original text is not available, so errors carry positions only.
func parseTokenDump(path string) (*build.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ts, err := lexer.ReadNDJSON(f)
	if err != nil {
		return nil, err
	}
	return build.TranslateWith(path, "", ts)
}
