package parser

import (
	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/check"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
)

/* ---------- blocks ---------- */

// parseBlock reads statements up to (not including) the closing '}'
// inside a fresh scope.
func (p *Parser) parseBlock() (*ast.Block, error) {
	return p.parseStmtList(func() bool { return p.atPunct("}") })
}

func (p *Parser) parseStmtList(stop func() bool) (*ast.Block, error) {
	p.scopes.Push()
	defer p.scopes.Pop()

	blk := &ast.Block{}
	for !stop() {
		if p.atEOF() {
			return nil, diag.Expect(span(p.tok), "'}'", p.tok.Describe())
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if s != nil {
			blk.Stmts = append(blk.Stmts, s)
		}
	}
	return blk, nil
}

// parseBraced reads '{' block '}'.
func (p *Parser) parseBraced() (*ast.Block, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	blk, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return blk, p.expectPunct("}")
}

/* ---------- statements ---------- */

// parseStmt returns nil for an empty statement.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Class {
	case lexer.ClassType:
		return p.terminated(p.parseDecl())
	case lexer.ClassIdent:
		if isPrintMethod(p.tok.Lex) {
			return p.terminated(p.parsePrint())
		}
		return p.terminated(p.parseSimple())
	case lexer.ClassKeyword:
		switch p.tok.Lex {
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "for":
			return p.parseFor()
		case "switch":
			return p.parseSwitch()
		case "return":
			return p.terminated(p.parseReturn())
		case "break":
			if p.switches > 0 {
				return nil, unsupported(p.tok, "break inside a nested block is")
			}
			return nil, unsupported(p.tok, "break outside a switch case is")
		case "new":
			return nil, unsupported(p.tok, "object creation is")
		case "this":
			return nil, unsupported(p.tok, "member access is")
		case "class":
			return nil, unsupported(p.tok, "nested classes are")
		}
	case lexer.ClassPunct:
		switch p.tok.Lex {
		case ";":
			return nil, p.next()
		case "{":
			return p.parseBraced()
		}
	}
	return nil, diag.New(diag.Syntax, "statement", span(p.tok), "expected statement, got %s", p.tok.Describe())
}

// terminated consumes the ';' that ends a simple statement.
func (p *Parser) terminated(s ast.Stmt, err error) (ast.Stmt, error) {
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return s, nil
}

func isPrintMethod(lex string) bool {
	for _, m := range lexer.PrintMethods {
		if lex == m {
			return true
		}
	}
	return false
}

// parseDecl reads "type id [= expr]". The name is bound after the
// initializer has been parsed, so the initializer cannot refer to it.
func (p *Parser) parseDecl() (*ast.Decl, error) {
	typ, err := p.expectClass(lexer.ClassType, "data type")
	if err != nil {
		return nil, err
	}
	if p.atPunct("[") {
		return nil, unsupported(p.tok, "array types are")
	}
	kind := check.KindOf(typ.Lex)
	if kind == check.KindVoid {
		return nil, diag.Sema("decl_mismatch", span(typ), "variable cannot be declared void")
	}
	id, err := p.expectClass(lexer.ClassIdent, "identifier")
	if err != nil {
		return nil, err
	}
	if _, _, exists := p.scopes.Lookup(id.Lex); exists {
		return nil, p.declare(id, kind)
	}

	d := &ast.Decl{Type: typ.Lex, Name: id.Lex}
	if p.atOp("=") {
		if err := p.next(); err != nil {
			return nil, err
		}
		at := p.tok
		val, k, err := p.parseExpr(kind)
		if err != nil {
			return nil, err
		}
		if !check.Assignable(kind, k) {
			return nil, diag.Sema("decl_mismatch", span(at),
				"cannot initialize %s %q with a %s value", typ.Lex, id.Lex, k)
		}
		d.Init = val
	}
	if err := p.declare(id, kind); err != nil {
		return nil, err
	}
	return d, nil
}

// parseSimple handles statements that start with an identifier:
// assignment, compound assignment and ++/--.
func (p *Parser) parseSimple() (ast.Stmt, error) {
	id := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.atPunct("(") {
		return nil, unsupported(id, "method calls are")
	}
	if p.atPunct("[") {
		return nil, unsupported(p.tok, "array access is")
	}
	if p.atPunct(".") {
		return nil, unsupported(p.tok, "member access is")
	}
	kind, err := p.variable(id)
	if err != nil {
		return nil, err
	}

	if p.atOp("++") || p.atOp("--") {
		return p.parseStep(id, kind)
	}
	opTok := p.tok
	op, ok := ast.LookupAssignOp(opTok.Lex)
	if opTok.Class != lexer.ClassOperator || !ok {
		return nil, diag.Expect(span(opTok), "assignment operator", opTok.Describe())
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	at := p.tok
	val, vk, err := p.parseExpr(kind)
	if err != nil {
		return nil, err
	}
	switch {
	case op == ast.OpAssign:
		if !check.Assignable(kind, vk) {
			return nil, diag.Sema("mismatch", span(at), "cannot assign a %s value to %s %q", vk, kind, id.Lex)
		}
	case kind == check.KindStr:
		if op.Arith() != ast.OpAdd || vk != check.KindStr {
			return nil, diag.Sema("bad_operator", span(opTok), "operator %s is not valid for string %q", op, id.Lex)
		}
	case kind.Numeric():
		if _, ok := resultKind(op.Arith(), kind, kind); !ok || !check.Assignable(kind, vk) {
			return nil, diag.Sema("mismatch", span(at), "cannot apply %s with a %s value to %s %q", op, vk, kind, id.Lex)
		}
	default:
		return nil, diag.Sema("bad_operator", span(opTok), "operator %s is not valid for %s", op, kind)
	}
	return &ast.Assign{Name: id.Lex, Op: op, Value: val}, nil
}

func (p *Parser) parseStep(id lexer.Token, kind check.Kind) (*ast.IncDec, error) {
	op := ast.OpInc
	if p.atOp("--") {
		op = ast.OpDec
	}
	if !kind.Numeric() {
		return nil, diag.Sema("bad_operator", span(p.tok), "operator %s is not valid for %s", op, kind)
	}
	return &ast.IncDec{Name: id.Lex, Op: op}, p.next()
}

func (p *Parser) parsePrint() (*ast.Print, error) {
	pr := &ast.Print{Newline: p.tok.Lex == "System.out.println"}
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	if p.atPunct(")") && pr.Newline {
		return pr, p.next()
	}
	arg, _, err := p.parseExpr(check.KindUnknown)
	if err != nil {
		return nil, err
	}
	pr.Arg = arg
	return pr, p.expectPunct(")")
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	kw := p.tok
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.atPunct(";") {
		if p.ret != check.KindVoid {
			return nil, diag.Sema("return", span(kw), "missing return value in method returning %s", p.ret)
		}
		return &ast.Return{}, nil
	}
	if p.ret == check.KindVoid {
		return nil, diag.Sema("return", span(kw), "void method cannot return a value")
	}
	at := p.tok
	val, k, err := p.parseExpr(p.ret)
	if err != nil {
		return nil, err
	}
	if !check.Assignable(p.ret, k) {
		return nil, diag.Sema("mismatch", span(at), "cannot return a %s value from method returning %s", k, p.ret)
	}
	return &ast.Return{Value: val}, nil
}

/* ---------- control constructs ---------- */

// parseCond reads '(' expr ')' and requires a boolean.
func (p *Parser) parseCond() (ast.Expr, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	at := p.tok
	cond, k, err := p.parseExpr(check.KindBool)
	if err != nil {
		return nil, err
	}
	if k != check.KindBool {
		return nil, diag.Sema("mismatch", span(at), "condition must be boolean, got %s", k)
	}
	return cond, p.expectPunct(")")
}

func (p *Parser) parseIf() (*ast.If, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	st := &ast.If{Cond: cond, Then: then}
	if !p.atKeyword("else") {
		return st, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.atKeyword("if") {
		elif, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		st.Else = elif
		return st, nil
	}
	els, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	st.Else = els
	return st, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	cond, err := p.parseCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// for '(' type id '=' expr ';' expr ';' id ('++'|'--') ')' '{' block '}'
// The loop variable lives in its own scope around the body.
func (p *Parser) parseFor() (*ast.For, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	p.scopes.Push()
	defer p.scopes.Pop()

	if p.tok.Class != lexer.ClassType {
		return nil, diag.Expect(span(p.tok), "loop variable declaration", p.tok.Describe())
	}
	decl, err := p.parseDecl()
	if err != nil {
		return nil, err
	}
	if decl.Init == nil {
		return nil, diag.Expect(span(p.tok), "'='", p.tok.Describe())
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	at := p.tok
	cond, k, err := p.parseExpr(check.KindBool)
	if err != nil {
		return nil, err
	}
	if k != check.KindBool {
		return nil, diag.Sema("mismatch", span(at), "condition must be boolean, got %s", k)
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	id, err := p.expectClass(lexer.ClassIdent, "loop variable")
	if err != nil {
		return nil, err
	}
	if id.Lex != decl.Name {
		return nil, diag.Sema("loop_var", span(id), "loop increments %q but declares %q", id.Lex, decl.Name)
	}
	if !p.atOp("++") && !p.atOp("--") {
		return nil, diag.Expect(span(p.tok), "'++' or '--'", p.tok.Describe())
	}
	post, err := p.parseStep(id, check.KindOf(decl.Type))
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBraced()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: decl, Cond: cond, Post: post, Body: body}, nil
}

// switch '(' expr ')' '{' (case lit ':' stmts)* default ':' stmts '}'
func (p *Parser) parseSwitch() (*ast.Switch, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	at := p.tok
	tag, tk, err := p.parseExpr(check.KindUnknown)
	if err != nil {
		return nil, err
	}
	if tk != check.KindInt && tk != check.KindStr && tk != check.KindChar {
		return nil, diag.Sema("mismatch", span(at), "cannot switch on a %s value", tk)
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	p.switches++
	defer func() { p.switches-- }()

	sw := &ast.Switch{Tag: tag}
	seen := map[string]bool{}
	for sw.Default == nil {
		switch {
		case p.atKeyword("case"):
			c, err := p.parseCase(tk, seen)
			if err != nil {
				return nil, err
			}
			sw.Cases = append(sw.Cases, c)
		case p.atKeyword("default"):
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.expectPunct(":"); err != nil {
				return nil, err
			}
			body, err := p.parseCaseBody()
			if err != nil {
				return nil, err
			}
			sw.Default = body
		default:
			return nil, diag.Expect(span(p.tok), "'case' or 'default'", p.tok.Describe())
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return sw, nil
}

func (p *Parser) parseCase(tk check.Kind, seen map[string]bool) (ast.Case, error) {
	if err := p.next(); err != nil {
		return ast.Case{}, err
	}
	at := p.tok
	lit, err := p.parseCaseLiteral()
	if err != nil {
		return ast.Case{}, err
	}
	if lk := litKind(lit.Kind); lk != tk {
		return ast.Case{}, diag.Sema("case_type", span(at),
			"case data type %s does not match switch data type %s", lk, tk)
	}
	if seen[lit.Value] {
		return ast.Case{}, diag.Sema("case_type", span(at), "duplicate case label %s", at.Lex)
	}
	seen[lit.Value] = true
	if err := p.expectPunct(":"); err != nil {
		return ast.Case{}, err
	}
	body, err := p.parseCaseBody()
	if err != nil {
		return ast.Case{}, err
	}
	return ast.Case{Value: lit, Body: body}, nil
}

// parseCaseLiteral accepts a literal token, optionally a negated number.
func (p *Parser) parseCaseLiteral() (*ast.Lit, error) {
	neg := p.atOp("-")
	if neg {
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if !p.tok.Class.IsLiteral() || (neg && p.tok.Class != lexer.ClassInt && p.tok.Class != lexer.ClassFloat) {
		return nil, diag.Expect(span(p.tok), "case literal", p.tok.Describe())
	}
	lit, err := p.literal(p.tok)
	if err != nil {
		return nil, err
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if neg {
		return foldUnary(ast.OpNeg, lit), nil
	}
	return lit, nil
}

// parseCaseBody reads statements up to the next case label, default or
// '}'. A trailing "break;" is consumed; the renderer emits its own.
func (p *Parser) parseCaseBody() (*ast.Block, error) {
	stop := func() bool {
		return p.atKeyword("case") || p.atKeyword("default") || p.atPunct("}") || p.atKeyword("break")
	}
	blk, err := p.parseStmtList(stop)
	if err != nil {
		return nil, err
	}
	if p.atKeyword("break") {
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.expectPunct(";"); err != nil {
			return nil, err
		}
	}
	return blk, nil
}

func litKind(k ast.LitKind) check.Kind {
	switch k {
	case ast.LitInt:
		return check.KindInt
	case ast.LitFloat:
		return check.KindDouble
	case ast.LitString:
		return check.KindStr
	case ast.LitChar:
		return check.KindChar
	case ast.LitBool:
		return check.KindBool
	}
	return check.KindUnknown
}
