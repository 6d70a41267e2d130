package check

/* ---------- kinds ---------- */

// Kind is the statically tracked type of a declaration or expression.
type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindDouble
	KindStr
	KindBool
	KindChar
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindStr:
		return "string"
	case KindBool:
		return "boolean"
	case KindChar:
		return "char"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Numeric reports whether arithmetic and ordering apply to k.
func (k Kind) Numeric() bool { return k == KindInt || k == KindDouble }

// KindOf maps a primitive type lexeme to its kind. Integral types share
// KindInt and floating types share KindDouble.
func KindOf(lexeme string) Kind {
	switch lexeme {
	case "byte", "short", "int", "long":
		return KindInt
	case "float", "double":
		return KindDouble
	case "String", "string":
		return KindStr
	case "boolean":
		return KindBool
	case "char":
		return KindChar
	case "void":
		return KindVoid
	default:
		return KindUnknown
	}
}

// Assignable reports whether a value of kind src may be stored in dst.
// Only identity and int-to-double widening are allowed.
func Assignable(dst, src Kind) bool {
	if dst == KindUnknown || src == KindUnknown {
		return false
	}
	if dst == src {
		return true
	}
	return dst == KindDouble && src == KindInt
}
