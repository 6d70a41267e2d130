// Package build runs the translation pipeline over source files: read,
// tokenize, parse with inline checks, then render C#.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/codegen/csharp"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
	"github.com/j2cs/j2cs/compiler/internal/parser"
	"github.com/j2cs/j2cs/compiler/internal/term"
)

// Unit is one translated file.
type Unit struct {
	Path string
	Src  string
	Prog *ast.Program
	CS   string // generated C#
}

// Tree returns the debug dump of the unit's syntax tree.
func (u *Unit) Tree() string { return ast.Dump(u.Prog) }

// FileError ties a pipeline error to the file and text it came from, so the
// driver can render the offending line.
type FileError struct {
	Path string
	Src  string
	Err  error
}

func (e *FileError) Error() string {
	var d diag.Diagnostic
	if errors.As(e.Err, &d) && d.Span.Start.Line > 0 {
		return e.Path + ":" + e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// Translate reads path and translates it.
func Translate(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel(path), err)
	}
	return TranslateSource(path, string(data))
}

// TranslateSource translates src; path only labels diagnostics.
func TranslateSource(path, src string) (*Unit, error) {
	return TranslateWith(path, src, lexer.NewSource(src))
}

// TranslateWith parses tokens pulled from ts. src must be the text ts was
// built from; it is kept for error rendering.
func TranslateWith(path, src string, ts lexer.Source) (*Unit, error) {
	term.Tracef("translate %s (%d bytes)", rel(path), len(src))
	prog, err := parser.NewFromSource(ts).ParseProgram()
	if err != nil {
		return nil, &FileError{Path: rel(path), Src: src, Err: err}
	}
	u := &Unit{Path: path, Src: src, Prog: prog, CS: csharp.Generate(prog)}
	term.Tracef("%s: class %s, %d method(s)", rel(path), prog.Class, len(prog.Methods))
	return u, nil
}

// TranslateFiles translates paths concurrently, at most jobs at a time
// (jobs <= 0 means no limit). Each file gets its own lexer, parser and
// scopes. The first failure cancels files not yet started; results keep
// the order of paths.
func TranslateFiles(ctx context.Context, paths []string, jobs int) ([]*Unit, error) {
	units := make([]*Unit, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u, err := Translate(p)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return units, err
	}
	return units, nil
}

// OutputPath names the .cs file for src. An empty dir keeps src's
// directory.
func OutputPath(src, dir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".cs"
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}

// Write stores the unit's C# at path, creating parent directories.
func (u *Unit) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(u.CS+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// rel shortens p to be relative to the working directory when it is
// below it.
func rel(p string) string {
	if !filepath.IsAbs(p) {
		return p
	}
	cwd, err := os.Getwd()
	if err != nil {
		return p
	}
	r, err := filepath.Rel(cwd, p)
	if err != nil || strings.HasPrefix(r, "..") {
		return p
	}
	return r
}
