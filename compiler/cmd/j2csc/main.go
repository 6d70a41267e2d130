// Command j2csc translates single-class Java sources into C#.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/j2cs/j2cs/compiler/internal/build"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/term"
	"github.com/j2cs/j2cs/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "build":
		os.Exit(cmdBuild(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

// report prints err to stderr, with the offending source line when err
// came out of the pipeline.
func report(err error) {
	var fe *build.FileError
	if errors.As(err, &fe) {
		term.Eprintf("%s", diag.RenderPretty(fe.Err, fe.Path, []byte(fe.Src)))
		return
	}
	term.Eprintf("error: %v\n", err)
}
