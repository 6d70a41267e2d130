package parser

import (
	"errors"
	"math"
	"strconv"

	"github.com/j2cs/j2cs/compiler/internal/ast"
	"github.com/j2cs/j2cs/compiler/internal/check"
	"github.com/j2cs/j2cs/compiler/internal/diag"
	"github.com/j2cs/j2cs/compiler/internal/lexer"
)

/* ---------- expressions ---------- */

// Two precedence tiers only: the comparison and logical-and operators bind
// as tightly as multiplication, and everything is left-associative.
var (
	exprOps = map[string]bool{"+": true, "-": true, "||": true}
	termOps = map[string]bool{
		"*": true, "/": true, "%": true,
		"<": true, ">": true, "<=": true, ">=": true, "==": true, "!=": true,
		"&&": true,
	}
)

// parseExpr parses expr := term (('+' | '-' | '||') term)*. want is the
// kind the context expects (KindUnknown when unconstrained); it restricts
// which operators may appear.
func (p *Parser) parseExpr(want check.Kind) (ast.Expr, check.Kind, error) {
	return p.parseLevel(want, exprOps, p.parseTerm)
}

// parseTerm parses term := factor (tight-op factor)*.
func (p *Parser) parseTerm(want check.Kind) (ast.Expr, check.Kind, error) {
	return p.parseLevel(want, termOps, p.parseFactor)
}

func (p *Parser) parseLevel(want check.Kind, ops map[string]bool, sub func(check.Kind) (ast.Expr, check.Kind, error)) (ast.Expr, check.Kind, error) {
	left, lk, err := sub(want)
	if err != nil {
		return nil, check.KindUnknown, err
	}
	for p.tok.Class == lexer.ClassOperator && ops[p.tok.Lex] {
		opTok := p.tok
		op, _ := ast.LookupBinaryOp(opTok.Lex)
		if err := p.next(); err != nil {
			return nil, check.KindUnknown, err
		}
		right, rk, err := sub(want)
		if err != nil {
			return nil, check.KindUnknown, err
		}
		left, lk, err = p.binary(opTok, op, want, left, lk, right, rk)
		if err != nil {
			return nil, check.KindUnknown, err
		}
	}
	return left, lk, nil
}

// binary type-checks one operator application and folds it when both
// operands are literals.
func (p *Parser) binary(opTok lexer.Token, op ast.Op, want check.Kind, l ast.Expr, lk check.Kind, r ast.Expr, rk check.Kind) (ast.Expr, check.Kind, error) {
	if op.Logical() && want != check.KindUnknown && want != check.KindBool {
		return nil, check.KindUnknown, diag.Sema("bad_operator", span(opTok), "operator %s is not valid for %s", op, want)
	}
	if want == check.KindStr && (op == ast.OpSub || op == ast.OpMul || op == ast.OpDiv || op == ast.OpMod) {
		return nil, check.KindUnknown, diag.Sema("bad_operator", span(opTok), "operator %s is not valid for string", op)
	}
	k, ok := resultKind(op, lk, rk)
	if !ok {
		return nil, check.KindUnknown, diag.Sema("mismatch", span(opTok), "operator %s cannot combine %s and %s", op, lk, rk)
	}

	ll, lok := l.(*ast.Lit)
	rl, rok := r.(*ast.Lit)
	if !lok || !rok {
		return &ast.Binary{Op: op, Left: l, Right: r}, k, nil
	}
	lit, err := foldBinary(op, ll, rl)
	switch {
	case errors.Is(err, errDivZero):
		return nil, check.KindUnknown, diag.Sema("div_zero", span(opTok), "division by zero in constant expression")
	case errors.Is(err, errOverflow):
		return nil, check.KindUnknown, diag.Sema("range", span(opTok), "constant expression overflows double")
	case err != nil:
		return nil, check.KindUnknown, diag.Sema("mismatch", span(opTok), "%v", err)
	}
	return lit, k, nil
}

func resultKind(op ast.Op, lk, rk check.Kind) (check.Kind, bool) {
	if lk != rk || lk == check.KindUnknown || lk == check.KindVoid {
		return check.KindUnknown, false
	}
	switch {
	case op.Logical():
		if lk == check.KindBool {
			return check.KindBool, true
		}
	case op == ast.OpEq || op == ast.OpNe:
		return check.KindBool, true
	case op.Comparison():
		if lk.Numeric() || lk == check.KindChar {
			return check.KindBool, true
		}
	case op == ast.OpAdd:
		if lk == check.KindStr || lk.Numeric() {
			return lk, true
		}
	case op == ast.OpSub, op == ast.OpMul, op == ast.OpDiv, op == ast.OpMod:
		if lk.Numeric() {
			return lk, true
		}
	}
	return check.KindUnknown, false
}

// parseFactor parses factor := ('-' | '!')? operand.
func (p *Parser) parseFactor(want check.Kind) (ast.Expr, check.Kind, error) {
	if !p.atOp("-") && !p.atOp("!") {
		return p.parseOperand(want)
	}
	opTok := p.tok
	op := ast.OpNeg
	if opTok.Lex == "!" {
		op = ast.OpNot
	}
	if err := p.next(); err != nil {
		return nil, check.KindUnknown, err
	}
	x, k, err := p.parseOperand(want)
	if err != nil {
		return nil, check.KindUnknown, err
	}
	if (op == ast.OpNeg && !k.Numeric()) || (op == ast.OpNot && k != check.KindBool) {
		return nil, check.KindUnknown, diag.Sema("bad_operator", span(opTok), "operator %s is not valid for %s", op, k)
	}
	if lit, ok := x.(*ast.Lit); ok {
		return foldUnary(op, lit), k, nil
	}
	return &ast.Unary{Op: op, X: x}, k, nil
}

// parseOperand parses operand := literal | identifier | '(' expr ')'.
func (p *Parser) parseOperand(want check.Kind) (ast.Expr, check.Kind, error) {
	t := p.tok
	switch {
	case t.Class.IsLiteral():
		lit, err := p.literal(t)
		if err != nil {
			return nil, check.KindUnknown, err
		}
		return lit, litKind(lit.Kind), p.next()
	case t.Class == lexer.ClassIdent:
		if isPrintMethod(t.Lex) {
			return nil, check.KindUnknown, unsupported(t, "method calls are")
		}
		if err := p.next(); err != nil {
			return nil, check.KindUnknown, err
		}
		switch {
		case p.atPunct("("):
			return nil, check.KindUnknown, unsupported(t, "method calls are")
		case p.atPunct("["):
			return nil, check.KindUnknown, unsupported(p.tok, "array access is")
		case p.atPunct("."):
			return nil, check.KindUnknown, unsupported(p.tok, "member access is")
		}
		k, err := p.variable(t)
		if err != nil {
			return nil, check.KindUnknown, err
		}
		return &ast.Var{Name: t.Lex}, k, nil
	case p.atPunct("("):
		if err := p.next(); err != nil {
			return nil, check.KindUnknown, err
		}
		x, k, err := p.parseExpr(want)
		if err != nil {
			return nil, check.KindUnknown, err
		}
		return x, k, p.expectPunct(")")
	case p.atKeyword("new"):
		return nil, check.KindUnknown, unsupported(t, "object creation is")
	case p.atKeyword("this"):
		return nil, check.KindUnknown, unsupported(t, "member access is")
	}
	return nil, check.KindUnknown, diag.Expect(span(t), "expression", t.Describe())
}

// literal converts a literal token into a node with a canonical value.
func (p *Parser) literal(t lexer.Token) (*ast.Lit, error) {
	switch t.Class {
	case lexer.ClassInt:
		v, err := strconv.ParseInt(t.Lex, 10, 32)
		if err != nil {
			return nil, diag.Sema("range", span(t), "integer literal %s out of range", t.Lex)
		}
		return intLit(int32(v)), nil
	case lexer.ClassFloat:
		v, err := strconv.ParseFloat(t.Lex, 64)
		if err != nil || math.IsInf(v, 0) {
			return nil, diag.Sema("range", span(t), "double literal %s out of range", t.Lex)
		}
		return floatLit(v), nil
	case lexer.ClassString:
		return &ast.Lit{Kind: ast.LitString, Value: t.Lex}, nil
	case lexer.ClassChar:
		return &ast.Lit{Kind: ast.LitChar, Value: t.Lex}, nil
	case lexer.ClassBool:
		return &ast.Lit{Kind: ast.LitBool, Value: t.Lex}, nil
	}
	return nil, diag.Expect(span(t), "literal", t.Describe())
}
