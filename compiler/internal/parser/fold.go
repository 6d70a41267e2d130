package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/j2cs/j2cs/compiler/internal/ast"
)

/* ---------- constant folding ---------- */

var (
	errDivZero  = errors.New("division by zero")
	errOverflow = errors.New("constant overflow")
)

// foldBinary evaluates op over two literals of the same kind. Integers
// wrap at 32 bits; doubles follow IEEE-754 except that a zero divisor or an
// infinite result is rejected.
func foldBinary(op ast.Op, l, r *ast.Lit) (*ast.Lit, error) {
	switch l.Kind {
	case ast.LitInt:
		a, b := intVal(l), intVal(r)
		switch op {
		case ast.OpAdd:
			return intLit(a + b), nil
		case ast.OpSub:
			return intLit(a - b), nil
		case ast.OpMul:
			return intLit(a * b), nil
		case ast.OpDiv, ast.OpMod:
			if b == 0 {
				return nil, errDivZero
			}
			if op == ast.OpDiv {
				return intLit(a / b), nil
			}
			return intLit(a % b), nil
		}
		if c, ok := compare(op, cmpInt(a, b)); ok {
			return boolLit(c), nil
		}
	case ast.LitFloat:
		x, y := floatVal(l), floatVal(r)
		var v float64
		switch op {
		case ast.OpAdd:
			v = x + y
		case ast.OpSub:
			v = x - y
		case ast.OpMul:
			v = x * y
		case ast.OpDiv, ast.OpMod:
			if y == 0 {
				return nil, errDivZero
			}
			if op == ast.OpDiv {
				v = x / y
			} else {
				v = math.Mod(x, y)
			}
		default:
			if c, ok := compare(op, cmpFloat(x, y)); ok {
				return boolLit(c), nil
			}
			return nil, fmt.Errorf("cannot fold %s on double", op)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, errOverflow
		}
		return floatLit(v), nil
	case ast.LitString:
		switch op {
		case ast.OpAdd:
			return &ast.Lit{Kind: ast.LitString, Value: l.Value + r.Value}, nil
		case ast.OpEq:
			return boolLit(l.Value == r.Value), nil
		case ast.OpNe:
			return boolLit(l.Value != r.Value), nil
		}
	case ast.LitChar:
		if c, ok := compare(op, strings.Compare(l.Value, r.Value)); ok {
			return boolLit(c), nil
		}
	case ast.LitBool:
		a, b := l.Value == "true", r.Value == "true"
		switch op {
		case ast.OpAnd:
			return boolLit(a && b), nil
		case ast.OpOr:
			return boolLit(a || b), nil
		case ast.OpEq:
			return boolLit(a == b), nil
		case ast.OpNe:
			return boolLit(a != b), nil
		}
	}
	return nil, fmt.Errorf("cannot fold %s on %s", op, l.Kind)
}

// foldUnary applies - or ! to a literal the parser already type-checked.
func foldUnary(op ast.Op, x *ast.Lit) *ast.Lit {
	switch {
	case op == ast.OpNeg && x.Kind == ast.LitInt:
		return intLit(-intVal(x))
	case op == ast.OpNeg && x.Kind == ast.LitFloat:
		return floatLit(-floatVal(x))
	case op == ast.OpNot && x.Kind == ast.LitBool:
		return boolLit(x.Value != "true")
	}
	return x
}

func compare(op ast.Op, c int) (bool, bool) {
	switch op {
	case ast.OpLt:
		return c < 0, true
	case ast.OpGt:
		return c > 0, true
	case ast.OpLe:
		return c <= 0, true
	case ast.OpGe:
		return c >= 0, true
	case ast.OpEq:
		return c == 0, true
	case ast.OpNe:
		return c != 0, true
	}
	return false, false
}

func cmpInt(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func intVal(l *ast.Lit) int32 {
	v, _ := strconv.ParseInt(l.Value, 10, 32)
	return int32(v)
}

func floatVal(l *ast.Lit) float64 {
	v, _ := strconv.ParseFloat(l.Value, 64)
	return v
}

func intLit(v int32) *ast.Lit {
	return &ast.Lit{Kind: ast.LitInt, Value: strconv.FormatInt(int64(v), 10)}
}

// floatLit always keeps a decimal point so the value stays a double.
func floatLit(v float64) *ast.Lit {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return &ast.Lit{Kind: ast.LitFloat, Value: s}
}

func boolLit(b bool) *ast.Lit {
	return &ast.Lit{Kind: ast.LitBool, Value: strconv.FormatBool(b)}
}
