package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/check"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
)

// Parser is a single-use recursive-descent parser with one token of
// lookahead. It resolves names and checks types while it builds the tree;
// the first error ends the parse.
type Parser struct {
	src    lexer.Source
	tok    lexer.Token
	scopes *check.Scopes

	ret      check.Kind // return kind of the method being parsed
	started  bool
	switches int
}

func New(src string) *Parser {
	return NewFromSource(lexer.New(src))
}

// NewFromSource parses tokens pulled from any Source.
func NewFromSource(src lexer.Source) *Parser {
	return &Parser{src: src, scopes: check.NewScopes()}
}

// Parse is a convenience for New(src).ParseProgram().
func Parse(src string) (*ast.Program, error) {
	return New(src).ParseProgram()
}

func (p *Parser) next() error {
	t, err := p.src.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *Parser) at(c lexer.Class, lex string) bool { return p.tok.Is(c, lex) }
func (p *Parser) atPunct(s string) bool           { return p.at(lexer.ClassPunct, s) }
func (p *Parser) atOp(s string) bool              { return p.at(lexer.ClassOperator, s) }
func (p *Parser) atKeyword(s string) bool         { return p.at(lexer.ClassKeyword, s) }
func (p *Parser) atEOF() bool                     { return p.tok.Class == lexer.ClassEOF }

func span(t lexer.Token) diag.Span {
	return diag.At(t.Line, t.Col, utf8.RuneCountInString(t.Lex))
}

// expect consumes a token of class c spelled lex.
func (p *Parser) expect(c lexer.Class, lex string) (lexer.Token, error) {
	if !p.at(c, lex) {
		return p.tok, diag.Expect(span(p.tok), fmt.Sprintf("'%s'", lex), p.tok.Describe())
	}
	t := p.tok
	return t, p.next()
}

func (p *Parser) expectPunct(s string) error {
	_, err := p.expect(lexer.ClassPunct, s)
	return err
}

// expectClass consumes any token of class c; what names it for diagnostics.
func (p *Parser) expectClass(c lexer.Class, what string) (lexer.Token, error) {
	if p.tok.Class != c {
		return p.tok, diag.Expect(span(p.tok), what, p.tok.Describe())
	}
	t := p.tok
	return t, p.next()
}

func unsupported(t lexer.Token, what string) error {
	return diag.Sema("unsupported", span(t), "%s not supported", what)
}

// variable resolves t as a readable and assignable variable.
func (p *Parser) variable(t lexer.Token) (check.Kind, error) {
	k, role, ok := p.scopes.Lookup(t.Lex)
	if !ok {
		return check.KindUnknown, p.undeclared(t)
	}
	if role != check.RoleVar {
		return check.KindUnknown, diag.Sema("not_variable", span(t), "%s %q is not a variable", role, t.Lex)
	}
	return k, nil
}

// undeclared reports name with the closest visible or reserved spelling.
func (p *Parser) undeclared(t lexer.Token) error {
	d := diag.Sema("undeclared", span(t), "undeclared identifier %q", t.Lex)
	cands := append(p.scopes.Names(), lexer.ReservedWords()...)
	d.Suggest = check.Suggest(t.Lex, cands)
	return d
}

func (p *Parser) declare(t lexer.Token, k check.Kind) error {
	return p.declareRole(t, k, check.RoleVar)
}

func (p *Parser) declareRole(t lexer.Token, k check.Kind, r check.Role) error {
	if err := p.scopes.DeclareRole(t.Lex, k, r); err != nil {
		return diag.Sema("redeclared", span(t), "identifier %q is already declared", t.Lex)
	}
	return nil
}

/* ---------- program ---------- */

// ParseProgram parses exactly one top-level class.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if p.started {
		return nil, fmt.Errorf("parser: ParseProgram called twice")
	}
	p.started = true
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.atEOF() {
		return nil, diag.ErrEmptyFile
	}

	if _, err := p.expectClass(lexer.ClassAccess, "access modifier"); err != nil {
		return nil, err
	}
	kw, err := p.expect(lexer.ClassKeyword, "class")
	if err != nil {
		return nil, err
	}
	name, err := p.expectClass(lexer.ClassIdent, "class name")
	if err != nil {
		return nil, err
	}
	if p.atKeyword("extends") || p.atKeyword("implements") {
		return nil, unsupported(p.tok, "inheritance is")
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	prog := &ast.Program{
		Header: kw.Lex + " " + name.Lex + " ",
		Class:  name.Lex,
	}
	p.scopes.Push()
	defer p.scopes.Pop()
	if err := p.declareRole(name, check.KindUnknown, check.RoleClass); err != nil {
		return nil, err
	}

	for !p.atPunct("}") {
		if p.atEOF() {
			return nil, diag.Expect(span(p.tok), "'}'", p.tok.Describe())
		}
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		prog.Methods = append(prog.Methods, m)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	if !p.atEOF() {
		if p.tok.Class == lexer.ClassAccess || p.atKeyword("class") {
			return nil, unsupported(p.tok, "more than one top-level class is")
		}
		return nil, diag.New(diag.Syntax, "trailing", span(p.tok), "unexpected %s after class body", p.tok.Describe())
	}
	return prog, nil
}

/* ---------- methods ---------- */

// method-def := access-mod 'static' type ID '(' formal-params ')' '{' block '}'
func (p *Parser) parseMethod() (*ast.Method, error) {
	acc, err := p.expectClass(lexer.ClassAccess, "access modifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ClassKeyword, "static"); err != nil {
		return nil, err
	}
	ret, err := p.expectClass(lexer.ClassType, "return type")
	if err != nil {
		return nil, err
	}
	if p.atPunct("[") {
		return nil, unsupported(p.tok, "array types are")
	}
	name, err := p.expectClass(lexer.ClassIdent, "method name")
	if err != nil {
		return nil, err
	}
	retKind := check.KindOf(ret.Lex)
	if err := p.declareRole(name, retKind, check.RoleMethod); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	p.scopes.Push()
	defer p.scopes.Pop()

	params, err := p.parseFormalParams()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	p.ret = retKind
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &ast.Method{Access: acc.Lex, Ret: ret.Lex, Name: name.Lex, Params: params, Body: body}, nil
}

// parseFormalParams reads "type id (, type id)*" and the closing ')'.
func (p *Parser) parseFormalParams() (*ast.Params, error) {
	ps := &ast.Params{}
	for !p.atPunct(")") {
		typ, err := p.expectClass(lexer.ClassType, "parameter type")
		if err != nil {
			return nil, err
		}
		if p.atPunct("[") {
			return nil, unsupported(p.tok, "array parameters are")
		}
		if typ.Lex == "void" {
			return nil, diag.Sema("mismatch", span(typ), "parameter cannot be void")
		}
		id, err := p.expectClass(lexer.ClassIdent, "parameter name")
		if err != nil {
			return nil, err
		}
		if err := p.declare(id, check.KindOf(typ.Lex)); err != nil {
			return nil, err
		}
		ps.List = append(ps.List, ast.Param{Type: typ.Lex, Name: id.Lex})
		if p.atPunct(",") {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.atPunct(")") {
			return nil, diag.Expect(span(p.tok), "',' or ')'", p.tok.Describe())
		}
	}
	return ps, p.next()
}
