package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/j2cs/j2cs/compiler/internal/build"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
	"github.com/j2cs/j2cs/compiler/internal/term"
	"github.com/j2cs/j2cs/compiler/internal/version"
)

/* ---------- repl ---------- */

const (
	historyFile = ".j2csc_history"
	promptMain  = "java> "
	promptCont  = "....> "
)

func cmdRepl(args []string) int {
	if len(args) != 0 {
		term.Eprintln("usage: j2csc repl")
		return 2
	}
	term.Printf("%s\nType a class to translate it; :tree toggles the syntax tree, :quit exits.\n", version.String())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := &repl{out: os.Stdout, errw: os.Stderr}
	for {
		src, ok := readEntry(ln)
		if !ok {
			term.Println()
			return 0
		}
		if r.eval(src) {
			return 0
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// repl holds the session state shared by entries.
type repl struct {
	out, errw io.Writer
	tree      bool
}

// eval handles one entry and reports whether the session should end.
func (r *repl) eval(src string) (quit bool) {
	cmd := strings.TrimSpace(src)
	switch {
	case cmd == "":
		return false
	case cmd == ":quit" || cmd == ":q":
		return true
	case cmd == ":tree":
		r.tree = !r.tree
		term.Wprintf(r.out, "tree output %s\n", onOff(r.tree))
		return false
	case strings.HasPrefix(cmd, ":"):
		term.Wprintf(r.out, "unknown command %s. Type :quit to exit.\n", cmd)
		return false
	}

	u, err := build.TranslateSource("<repl>", src)
	if err != nil {
		var fe *build.FileError
		if errors.As(err, &fe) {
			term.Wprintf(r.errw, "%s", diag.RenderPretty(fe.Err, fe.Path, []byte(fe.Src)))
		} else {
			term.Wprintf(r.errw, "error: %v\n", err)
		}
		return false
	}
	if r.tree {
		term.Wprintf(r.out, "%s", u.Tree())
	}
	term.Wprintf(r.out, "%s\n", u.CS)
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// readEntry reads lines until the braces balance or a line is a command.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if src := b.String(); !needsMore(src) {
			return src, true
		}
	}
}

// needsMore reports whether src opens more braces than it closes. Text
// that does not tokenize is complete: the error is reported on eval.
func needsMore(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return false
	}
	depth := 0
	for _, t := range toks {
		switch {
		case t.Is(lexer.ClassPunct, "{"):
			depth++
		case t.Is(lexer.ClassPunct, "}"):
			depth--
		}
	}
	return depth > 0
}
