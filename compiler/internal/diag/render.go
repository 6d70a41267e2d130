package diag

import (
	"errors"
	"fmt"
	"strings"
)

// RenderPretty formats err for a terminal. Diagnostics get a code header,
// a "--> file:line:col" pointer and the offending line with a caret
// underline; anything else is returned as a single line.
func RenderPretty(err error, file string, src []byte) string {
	if err == nil {
		return ""
	}
	var d Diagnostic
	if !errors.As(err, &d) {
		return fmt.Sprintf("error: %v\n", err)
	}

	var b strings.Builder
	msg := d.Msg
	if d.Code != "" {
		fmt.Fprintf(&b, "error[%s]: %s error: %s\n", d.Code, d.Kind, msg)
	} else {
		fmt.Fprintf(&b, "error: %s error: %s\n", d.Kind, msg)
	}
	if file != "" && d.Span.Start.Line > 0 {
		fmt.Fprintf(&b, " --> %s:%d:%d\n", file, d.Span.Start.Line, d.Span.Start.Col)
	}
	if d.Span.Start.Line > 0 && src != nil {
		line := lineText(src, d.Span.Start.Line)
		ln := fmt.Sprintf("%d", d.Span.Start.Line)
		fmt.Fprintf(&b, " %s | %s\n", ln, line)
		b.WriteString(" " + strings.Repeat(" ", len(ln)) + " | ")
		writeUnderline(&b, line, d.Span.Start.Col, d.Span.End.Col)
		b.WriteByte('\n')
	}
	if d.Suggest != "" {
		fmt.Fprintf(&b, "help: did you mean %q?\n", d.Suggest)
	}
	if h := Help(d.Code); h != "" {
		fmt.Fprintf(&b, "help: %s\n", h)
	}
	return b.String()
}

func lineText(src []byte, n int) string {
	lines := strings.Split(string(src), "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimRight(strings.ReplaceAll(lines[n-1], "\t", " "), "\r")
}

func writeUnderline(b *strings.Builder, line string, col, endCol int) {
	width := len([]rune(line))
	start := clamp(col-1, 0, width)
	n := 1
	if endCol > col {
		n = endCol - col
	}
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	if n > 1 {
		b.WriteString(strings.Repeat("~", n-1))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
