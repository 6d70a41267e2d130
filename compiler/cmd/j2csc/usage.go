package main

import "github.com/j2cs/j2cs/compiler/internal/term"

func usage() {
	term.Eprintln("j2csc - Java subset to C# translator")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  j2csc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                        Print version")
	term.Eprintln("  help                           Show this help")
	term.Eprintln("  lex [--format=table|ndjson] <file>")
	term.Eprintln("                                 Print the token stream")
	term.Eprintln("  parse [--verbose] <file>       Parse and check a file, print the syntax tree")
	term.Eprintln("  parse --tokens=<dump.ndjson>   Parse a token dump written by lex --format=ndjson")
	term.Eprintln("  build [--out=path] [--tree] [--jobs=N] [--csc] [--verbose] <file>...")
	term.Eprintln("                                 Translate files; flags may appear anywhere")
	term.Eprintln("  repl                           Translate classes typed at a prompt")
	term.Eprintln("")
	term.Eprintln("Outputs:")
	term.Eprintln("  without --out, C# is printed to stdout")
	term.Eprintln("  --out=<file.cs> with one input, --out=<dir> with several")
	term.Eprintln("  --csc compiles each written file to a .dll (override the compiler with J2CS_CSC)")
	term.Eprintln("")
	term.Eprintln("Exit status: 0 ok, 1 translation error, 2 usage error")
}
