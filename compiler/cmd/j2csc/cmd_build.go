package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/build"
	"github.com/j2cs/j2cs/compiler/internal/csc"
	"github.com/j2cs/j2cs/compiler/internal/term"
)

/* ---------- build (flags anywhere) ---------- */

type buildArgs struct {
	out     string
	files   []string
	jobs    int
	tree    bool // --tree: print the syntax tree as well
	csc     bool
	verbose bool
}

const buildUsage = "usage: j2csc build [--out=path] [--tree] [--jobs=N] [--csc] [--verbose] <file.java>..."

func parseBuildArgs(argv []string) (buildArgs, error) {
	a := buildArgs{jobs: runtime.GOMAXPROCS(0)}
	i := 0
	for i < len(argv) {
		s := argv[i]
		if s == "--" {
			a.files = append(a.files, argv[i+1:]...)
			break
		}
		switch {
		case strings.HasPrefix(s, "--out="):
			a.out = s[len("--out="):]
		case s == "--out":
			if i+1 >= len(argv) {
				return a, flag.ErrHelp
			}
			a.out = argv[i+1]
			i++
		case strings.HasPrefix(s, "--jobs="):
			n, err := strconv.Atoi(s[len("--jobs="):])
			if err != nil || n < 1 {
				return a, flag.ErrHelp
			}
			a.jobs = n
		case s == "--tree":
			a.tree = true
		case s == "--csc":
			a.csc = true
		case s == "--verbose":
			a.verbose = true
		case strings.HasPrefix(s, "-"):
			return a, flag.ErrHelp
		default:
			a.files = append(a.files, s)
		}
		i++
	}
	if len(a.files) == 0 {
		return a, flag.ErrHelp
	}
	if a.csc && a.out == "" {
		// compiling needs a file on disk
		return a, flag.ErrHelp
	}
	return a, nil
}

func cmdBuild(args []string) int {
	a, err := parseBuildArgs(args)
	if err != nil {
		term.Eprintln(buildUsage)
		return 2
	}
	term.Verbose = term.Verbose || a.verbose

	units, err := build.TranslateFiles(context.Background(), a.files, a.jobs)
	if err != nil {
		report(err)
		return 1
	}

	for _, u := range units {
		if a.tree {
			term.Printf("%s", u.Tree())
		}
		if a.out == "" {
			term.Printf("%s\n", u.CS)
			continue
		}
		dst := outputFor(a.out, u.Path, len(units))
		if err := u.Write(dst); err != nil {
			report(err)
			return 1
		}
		term.Eprintf("wrote %s\n", dst)

		if a.csc {
			res, err := csc.Compile(csc.Options{Source: dst})
			if err != nil {
				report(err)
				return 1
			}
			term.Tracef("%s %s", res.Bin, strings.Join(res.Args, " "))
			term.Eprintf("built %s\n", res.Out)
		}
	}
	return 0
}

// outputFor resolves --out: a .cs path names the file for a single input;
// anything else is a directory.
func outputFor(out, src string, n int) string {
	if n == 1 && strings.EqualFold(filepath.Ext(out), ".cs") {
		return out
	}
	if fi, err := os.Stat(out); err == nil && !fi.IsDir() && n == 1 {
		return out
	}
	return build.OutputPath(src, out)
}
