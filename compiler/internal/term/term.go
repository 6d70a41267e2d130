package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Verbose enables Tracef output. The driver sets it from --verbose.
var Verbose bool

// Stdout/Stderr print helpers that ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Println(a ...any)                { _, _ = fmt.Println(a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }

// Tracef writes a "trace:" line to stderr when Verbose is set.
func Tracef(format string, a ...any) {
	if !Verbose {
		return
	}
	Eprintf("trace: "+format+"\n", a...)
}

// Bprintf appends to a strings.Builder; the renderers build their output
// this way.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Wprintf writes to any writer, e.g. the repl's output stream.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
