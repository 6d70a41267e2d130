package lexer

import (
	"strings"
	"unicode"

	"github.com/j2cs/j2cs/compiler/internal/diag"
)

// Lexer scans a source buffer into tokens on demand. Each Lexer owns its
// buffer and cursor; nothing is shared between instances.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

func (lx *Lexer) make(c Class, lex string, line, col int) Token {
	return Token{Class: c, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) { return lx.peekAt(0) }

func (lx *Lexer) peekAt(n int) (rune, bool) {
	if lx.i+n >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+n], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

func (lx *Lexer) hasPrefix(s string) bool {
	rs := []rune(s)
	if lx.i+len(rs) > len(lx.src) {
		return false
	}
	for k, r := range rs {
		if lx.src[lx.i+k] != r {
			return false
		}
	}
	return true
}

func (lx *Lexer) skipSpace() {
	for {
		ch, ok := lx.peek()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		lx.advance()
	}
}

// Next returns the next token. Once the buffer is exhausted every call
// returns the EOF token.
func (lx *Lexer) Next() (Token, error) {
	for {
		lx.skipSpace()
		startLine, startCol := lx.line, lx.col+1

		ch, ok := lx.peek()
		if !ok {
			return lx.make(ClassEOF, "", startLine, startCol), nil
		}

		switch {
		case ch == '"':
			return lx.scanString(startLine, startCol)
		case ch == '\'':
			return lx.scanChar(startLine, startCol)
		case strings.ContainsRune("()[]{}.,;:", ch):
			lx.advance()
			return lx.make(ClassPunct, string(ch), startLine, startCol), nil
		case opPrefixes[string(ch)]:
			tok, skipped, err := lx.scanOperator(startLine, startCol)
			if err != nil || !skipped {
				return tok, err
			}
			// comment consumed; lex again from the new position
		case isIdentStart(ch):
			return lx.scanIdent(startLine, startCol), nil
		case isDigit(ch):
			return lx.scanNumber(startLine, startCol)
		default:
			return Token{}, diag.Lex("bad_rune", startLine, startCol, "unexpected character %q", ch)
		}
	}
}

// ----- scanning helpers -----

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

// isDigit accepts ASCII digits only; numeric literals are parsed with strconv.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (lx *Lexer) scanString(line, col int) (Token, error) {
	lx.advance() // opening "
	var b strings.Builder
	for {
		r, ok := lx.advance()
		if !ok {
			return Token{}, diag.Lex("unterminated_string", line, col, "unterminated string literal")
		}
		if r == '"' {
			return lx.make(ClassString, b.String(), line, col), nil
		}
		b.WriteRune(r)
	}
}

func (lx *Lexer) scanChar(line, col int) (Token, error) {
	lx.advance() // opening '
	r, ok := lx.advance()
	if !ok || r == '\'' {
		return Token{}, diag.Lex("bad_char", line, col, "invalid char literal: expected one character")
	}
	if c, ok := lx.peek(); !ok || c != '\'' {
		return Token{}, diag.Lex("bad_char", line, col, "invalid char literal: missing closing quote")
	}
	lx.advance()
	return lx.make(ClassChar, string(r), line, col), nil
}

// scanOperator consumes runes while the accumulated run is still a prefix
// of some operator. skipped is true when the run opened a comment, which
// has been discarded.
func (lx *Lexer) scanOperator(line, col int) (tok Token, skipped bool, err error) {
	var acc strings.Builder
	for {
		r, ok := lx.peek()
		if !ok || !opPrefixes[acc.String()+string(r)] {
			break
		}
		acc.WriteRune(r)
		lx.advance()
	}
	op := acc.String()
	switch op {
	case "//":
		for {
			r, ok := lx.advance()
			if !ok || r == '\n' {
				return Token{}, true, nil
			}
		}
	case "/*":
		for {
			if lx.hasPrefix("*/") {
				lx.advance()
				lx.advance()
				return Token{}, true, nil
			}
			if _, ok := lx.advance(); !ok {
				return Token{}, false, diag.Lex("unterminated_comment", line, col, "unterminated block comment")
			}
		}
	}
	if !operators[op] {
		return Token{}, false, diag.Lex("bad_operator", line, col, "invalid operator %q", op)
	}
	return lx.make(ClassOperator, op, line, col), false, nil
}

// scanIdent accumulates an identifier and stops as soon as the text so far
// spells a reserved word, so "format" lexes as "for" followed by "mat".
func (lx *Lexer) scanIdent(line, col int) Token {
	var acc strings.Builder
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		acc.WriteRune(r)
		lx.advance()
		if c, ok := Reserved(acc.String()); ok {
			return lx.make(c, acc.String(), line, col)
		}
	}
	lex := acc.String()
	if lex == "true" || lex == "false" {
		return lx.make(ClassBool, lex, line, col)
	}
	if r, ok := lx.peek(); ok && r == '.' {
		if merged, ok := lx.mergePrintMethod(lex); ok {
			return lx.make(ClassIdent, merged, line, col)
		}
	}
	return lx.make(ClassIdent, lex, line, col)
}

// mergePrintMethod looks past the dot following head and, when the text
// completes one of PrintMethods, consumes it into a single identifier.
func (lx *Lexer) mergePrintMethod(head string) (string, bool) {
	for _, m := range PrintMethods {
		if !strings.HasPrefix(m, head+".") {
			continue
		}
		rest := strings.TrimPrefix(m, head)
		if !lx.hasPrefix(rest) {
			continue
		}
		if r, ok := lx.peekAt(len([]rune(rest))); ok && isIdentPart(r) {
			continue
		}
		for range []rune(rest) {
			lx.advance()
		}
		return m, true
	}
	return "", false
}

func (lx *Lexer) scanNumber(line, col int) (Token, error) {
	var acc strings.Builder
	float := false
	for {
		r, ok := lx.peek()
		if !ok {
			break
		}
		if isDigit(r) {
			acc.WriteRune(r)
			lx.advance()
			continue
		}
		if r == '.' {
			if float {
				return Token{}, diag.Lex("bad_number", line, col, "invalid double literal %q: second '.'", acc.String()+".")
			}
			next, ok := lx.peekAt(1)
			if !ok || !isDigit(next) {
				return Token{}, diag.Lex("bad_number", line, col, "invalid real number %q: trailing '.'", acc.String()+".")
			}
			float = true
			acc.WriteRune(r)
			lx.advance()
			continue
		}
		if isIdentPart(r) {
			what := "integer"
			if float {
				what = "double"
			}
			return Token{}, diag.Lex("bad_number", line, col, "invalid %s literal %q", what, acc.String()+string(r))
		}
		break
	}
	if float {
		return lx.make(ClassFloat, acc.String(), line, col), nil
	}
	return lx.make(ClassInt, acc.String(), line, col), nil
}
