package lexer

import "fmt"

// Class enumerates the token classes produced by the lexer.
type Class int

const (
	ClassEOF Class = iota

	// Reserved words
	ClassAccess  // public, private, protected
	ClassKeyword // class, static, if, ...
	ClassType    // int, double, String, ...

	// Symbols
	ClassOperator // = == + ++ && ...
	ClassPunct    // ( ) [ ] { } . , ; :

	// Identifiers/literals
	ClassIdent
	ClassInt
	ClassFloat
	ClassString
	ClassChar
	ClassBool
)

var classNames = [...]string{
	ClassEOF:      "EOF",
	ClassAccess:   "access-modifier",
	ClassKeyword:  "keyword",
	ClassType:     "primitive-type",
	ClassOperator: "operator",
	ClassPunct:    "punctuation",
	ClassIdent:    "identifier",
	ClassInt:      "integer-literal",
	ClassFloat:    "float-literal",
	ClassString:   "string-literal",
	ClassChar:     "char-literal",
	ClassBool:     "boolean-literal",
}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// IsLiteral reports whether tokens of this class carry a literal value.
func (c Class) IsLiteral() bool {
	switch c {
	case ClassInt, ClassFloat, ClassString, ClassChar, ClassBool:
		return true
	}
	return false
}

// Token is a single lexeme with source position.
// String and char literals carry their contents without delimiters.
type Token struct {
	Class Class
	Lex   string
	Line  int
	Col   int
}

// Is reports whether t has class c and lexeme lex.
func (t Token) Is(c Class, lex string) bool { return t.Class == c && t.Lex == lex }

// Describe renders the token for "expected X, got Y" messages.
func (t Token) Describe() string {
	switch t.Class {
	case ClassEOF:
		return "end of input"
	case ClassString:
		return fmt.Sprintf("string %q", t.Lex)
	case ClassChar:
		return fmt.Sprintf("char '%s'", t.Lex)
	case ClassIdent:
		return fmt.Sprintf("identifier %q", t.Lex)
	default:
		return fmt.Sprintf("'%s'", t.Lex)
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s\t%s", t.Class, t.Lex)
}

/* ---------- reserved tables ---------- */

// AccessModifiers, Keywords and Types are the reserved words, matched
// incrementally while an identifier is accumulated.
var (
	AccessModifiers = []string{"public", "private", "protected"}

	Keywords = []string{
		"break", "case", "class", "default", "else", "extends", "final", "for",
		"if", "implements", "import", "new", "package", "return", "static",
		"switch", "this", "while",
	}

	Types = []string{
		"byte", "short", "int", "long", "float", "double", "boolean", "char",
		"String", "string", "void",
	}
)

// Operators lists every operator lexeme the lexer accepts.
var Operators = []string{
	"=", "==", "!=", "!", "<", ">", "<=", ">=",
	"+", "-", "*", "/", "%",
	"++", "--", "+=", "-=", "*=", "/=", "%=",
	"&&", "||",
}

// PrintMethods are the dotted output methods merged into one identifier.
var PrintMethods = []string{"System.out.println", "System.out.print"}

var (
	reserved   = map[string]Class{}
	operators  = map[string]bool{}
	opPrefixes = map[string]bool{"//": true, "/*": true}
)

func init() {
	for _, s := range AccessModifiers {
		reserved[s] = ClassAccess
	}
	for _, s := range Keywords {
		reserved[s] = ClassKeyword
	}
	for _, s := range Types {
		reserved[s] = ClassType
	}
	for _, op := range Operators {
		operators[op] = true
		for i := 1; i <= len(op); i++ {
			opPrefixes[op[:i]] = true
		}
	}
}

// Reserved reports the class of a reserved word.
func Reserved(s string) (Class, bool) {
	c, ok := reserved[s]
	return c, ok
}

// ReservedWords returns every reserved word in table order.
func ReservedWords() []string {
	out := make([]string, 0, len(AccessModifiers)+len(Keywords)+len(Types))
	out = append(out, AccessModifiers...)
	out = append(out, Keywords...)
	return append(out, Types...)
}
