package ast

// Op enumerates unary, binary, assignment and step operators.
type Op int

const (
	OpInvalid Op = iota

	// binary
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	// unary
	OpNeg
	OpNot

	// assignment
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign

	// step
	OpInc
	OpDec
)

var opText = [...]string{
	OpInvalid: "?",
	OpLt:      "<", OpGt: ">", OpLe: "<=", OpGe: ">=", OpEq: "==", OpNe: "!=",
	OpAnd: "&&", OpOr: "||",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpNeg: "-", OpNot: "!",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=", OpDivAssign: "/=", OpModAssign: "%=",
	OpInc: "++", OpDec: "--",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opText) {
		return opText[o]
	}
	return "?"
}

var (
	binaryOps = map[string]Op{
		"<": OpLt, ">": OpGt, "<=": OpLe, ">=": OpGe, "==": OpEq, "!=": OpNe,
		"&&": OpAnd, "||": OpOr,
		"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "%": OpMod,
	}
	assignOps = map[string]Op{
		"=": OpAssign, "+=": OpAddAssign, "-=": OpSubAssign,
		"*=": OpMulAssign, "/=": OpDivAssign, "%=": OpModAssign,
	}
)

// LookupBinaryOp maps an operator lexeme to its binary tag.
func LookupBinaryOp(lex string) (Op, bool) {
	op, ok := binaryOps[lex]
	return op, ok
}

// LookupAssignOp maps "=" and the compound forms to their tags.
func LookupAssignOp(lex string) (Op, bool) {
	op, ok := assignOps[lex]
	return op, ok
}

// Arith returns the binary operator a compound assignment applies.
func (o Op) Arith() Op {
	switch o {
	case OpAddAssign:
		return OpAdd
	case OpSubAssign:
		return OpSub
	case OpMulAssign:
		return OpMul
	case OpDivAssign:
		return OpDiv
	case OpModAssign:
		return OpMod
	default:
		return OpInvalid
	}
}

// Comparison reports whether o yields a boolean from two operands.
func (o Op) Comparison() bool {
	switch o {
	case OpLt, OpGt, OpLe, OpGe, OpEq, OpNe:
		return true
	}
	return false
}

// Logical reports whether o is && or ||.
func (o Op) Logical() bool { return o == OpAnd || o == OpOr }
