// Package csc hands generated C# to an installed C# compiler so a
// translation can be checked end to end.
package csc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvCompiler names an explicit compiler binary, overriding detection.
const EnvCompiler = "J2CS_CSC"

// prelude is prepended to every translated file; the generated class uses
// Console without qualification.
const prelude = "using System;\n\n"

type Options struct {
	// Source is the generated .cs file.
	Source string

	// Out is the assembly to produce. Empty derives <Source without ext>.dll.
	Out string

	// Bin is an explicit compiler ("csc" or "mcs"). Empty means detect.
	Bin string

	ExtraArgs []string

	// DryRun resolves paths and the command line without running it.
	DryRun bool
}

// Result describes the command that was (or would be) run.
type Result struct {
	Bin  string
	Args []string
	Out  string
}

// Compile builds opts.Source as a library assembly. Translated classes have
// no static entry point, so a library is the only target that accepts them.
func Compile(opts Options) (*Result, error) {
	if opts.Source == "" {
		return nil, errors.New("csc: Source must be set")
	}
	srcAbs, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("csc: resolve Source: %w", err)
	}
	if _, err := os.Stat(srcAbs); err != nil {
		return nil, fmt.Errorf("csc: source does not exist: %s", srcAbs)
	}

	out := opts.Out
	if out == "" {
		out = dropExt(srcAbs) + ".dll"
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return nil, fmt.Errorf("csc: resolve Out: %w", err)
	}

	bin := opts.Bin
	if bin == "" {
		if bin, err = pickCompiler(); err != nil {
			return nil, err
		}
	}

	res := &Result{Bin: bin, Out: outAbs}
	if opts.DryRun {
		res.Args = constructArgs(bin, srcAbs, outAbs, opts.ExtraArgs)
		return res, nil
	}

	// The compiler sees a copy of the source with the using prelude.
	tmp, err := os.MkdirTemp("", "j2cs-csc-")
	if err != nil {
		return nil, fmt.Errorf("csc: temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)
	body, err := os.ReadFile(srcAbs)
	if err != nil {
		return nil, fmt.Errorf("csc: read source: %w", err)
	}
	wrapped := filepath.Join(tmp, filepath.Base(srcAbs))
	if err := os.WriteFile(wrapped, []byte(prelude+string(body)), 0o644); err != nil {
		return nil, fmt.Errorf("csc: write source: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outAbs), 0o755); err != nil {
		return nil, fmt.Errorf("csc: create out dir: %w", err)
	}

	res.Args = constructArgs(bin, wrapped, outAbs, opts.ExtraArgs)
	cmd := exec.Command(bin, res.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return res, fmt.Errorf("csc: compilation failed: %w", err)
	}
	return res, nil
}

func dropExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func pickCompiler() (string, error) {
	if v := os.Getenv(EnvCompiler); v != "" {
		if _, err := exec.LookPath(v); err == nil {
			return v, nil
		}
		return "", fmt.Errorf("csc: %s=%s is not executable", EnvCompiler, v)
	}

	// Roslyn's csc ships with Visual Studio on Windows; elsewhere Mono's
	// mcs is the common choice.
	order := []string{"mcs", "csc"}
	if runtime.GOOS == "windows" {
		order = []string{"csc", "mcs"}
	}
	for _, name := range order {
		if hasCmd(name) {
			return name, nil
		}
	}
	return "", errors.New("csc: no C# compiler found (tried " + strings.Join(order, ", ") + ")")
}

func hasCmd(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// constructArgs builds "-target:library -out:<out> <src>"; csc also gets
// -nologo.
func constructArgs(bin, srcAbs, outAbs string, extra []string) []string {
	var args []string
	if isRoslyn(bin) {
		args = append(args, "-nologo")
	}
	args = append(args, "-target:library", "-out:"+outAbs)
	args = append(args, extra...)
	return append(args, srcAbs)
}

func isRoslyn(bin string) bool {
	base := strings.ToLower(strings.TrimSuffix(filepath.Base(bin), filepath.Ext(bin)))
	return base == "csc"
}
