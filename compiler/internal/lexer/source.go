package lexer

// Source is a minimal token source the parser can consume.
// Any implementation only needs to yield successive tokens via Next().
type Source interface {
	Next() (Token, error)
}

// NewSource returns a Source backed by a fresh Lexer over src.
func NewSource(src string) Source { return New(src) }

// sliceSource replays a pre-lexed token stream.
type sliceSource struct {
	toks []Token
	i    int
}

// FromTokens returns a Source that yields toks in order and then
// repeats the final EOF token.
func FromTokens(toks []Token) Source {
	return &sliceSource{toks: toks}
}

func (s *sliceSource) Next() (Token, error) {
	if len(s.toks) == 0 {
		return Token{Class: ClassEOF}, nil
	}
	if s.i >= len(s.toks) {
		last := s.toks[len(s.toks)-1]
		if last.Class == ClassEOF {
			return last, nil
		}
		return Token{Class: ClassEOF, Line: last.Line, Col: last.Col}, nil
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

// Tokenize lexes the whole of src, stopping at EOF or the first error.
// The returned slice ends with the EOF token on success.
func Tokenize(src string) ([]Token, error) {
	lx := New(src)
	var out []Token
	for {
		t, err := lx.Next()
		if err != nil {
			return out, err
		}
		out = append(out, t)
		if t.Class == ClassEOF {
			return out, nil
		}
	}
}
