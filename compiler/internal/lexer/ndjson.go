package lexer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/diag"
)

// wireToken is one NDJSON row of a token dump:
//
//	{"class":"identifier","lex":"x","line":3,"col":5}
//	{"class":"error","lex":"unterminated string literal","line":1,"col":9,"code":"JLE0001"}
//
// An error row ends the stream; replaying it yields the lexical error.
type wireToken struct {
	Class string `json:"class"`
	Lex   string `json:"lex"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Code  string `json:"code,omitempty"`
}

const errorClass = "error"

// ParseClass maps a class name as printed by Class.String back to its value.
func ParseClass(name string) (Class, bool) {
	for c, n := range classNames {
		if n == name {
			return Class(c), true
		}
	}
	return 0, false
}

// WriteNDJSON writes toks one JSON object per line. A lexical error that
// stopped tokenization is written as a final error row.
func WriteNDJSON(w io.Writer, toks []Token, lexErr error) error {
	enc := json.NewEncoder(w)
	for _, t := range toks {
		if err := enc.Encode(wireToken{Class: t.Class.String(), Lex: t.Lex, Line: t.Line, Col: t.Col}); err != nil {
			return err
		}
	}
	if lexErr == nil {
		return nil
	}
	var d diag.Diagnostic
	if !errors.As(lexErr, &d) {
		return enc.Encode(wireToken{Class: errorClass, Lex: lexErr.Error()})
	}
	return enc.Encode(wireToken{Class: errorClass, Lex: d.Msg, Line: d.Span.Start.Line, Col: d.Span.Start.Col, Code: d.Code})
}

// ReadNDJSON reads a token dump and returns a Source replaying it. Blank
// lines and a leading byte-order mark are ignored; a malformed row is an
// error naming its line.
func ReadNDJSON(r io.Reader) (Source, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	rs := &replaySource{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if raw == "" {
			continue
		}
		var wt wireToken
		if err := json.Unmarshal([]byte(raw), &wt); err != nil {
			return nil, fmt.Errorf("ndjson line %d: %w", lineNo, err)
		}
		if wt.Class == errorClass {
			rs.err = diag.Diagnostic{Kind: diag.Lexical, Code: wt.Code, Span: diag.At(wt.Line, wt.Col, 1), Msg: wt.Lex}
			break
		}
		c, ok := ParseClass(wt.Class)
		if !ok {
			return nil, fmt.Errorf("ndjson line %d: unknown token class %q", lineNo, wt.Class)
		}
		rs.toks = append(rs.toks, Token{Class: c, Lex: wt.Lex, Line: wt.Line, Col: wt.Col})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	rs.Source = FromTokens(rs.toks)
	return rs, nil
}

// replaySource yields the recorded tokens, then the recorded error if the
// dump ended in one.
type replaySource struct {
	Source
	toks []Token
	n    int
	err  error
}

func (s *replaySource) Next() (Token, error) {
	if s.err != nil && s.n >= len(s.toks) {
		return Token{}, s.err
	}
	s.n++
	return s.Source.Next()
}
