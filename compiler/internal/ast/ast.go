package ast

/*** NODES ***/

// Node is implemented by every syntax tree variant. The set is closed:
// only types in this package satisfy it.
type Node interface{ node() }

// Program is the root: the translated class header plus its methods.
type Program struct {
	Header  string // e.g. "class A "
	Class   string
	Methods []*Method
}

func (*Program) node() {}

type Method struct {
	Access string // modifier as written
	Ret    string // return type as written
	Name   string
	Params *Params
	Body   *Block
}

func (*Method) node() {}

type Params struct {
	List []Param
}

func (*Params) node() {}

type Param struct {
	Type string
	Name string
}

type Block struct {
	Stmts []Stmt
}

func (*Block) node() {}
func (*Block) stmt() {}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

// Decl declares Name of Type, with an optional initializer.
type Decl struct {
	Type string
	Name string
	Init Expr // may be nil
}

func (*Decl) node() {}
func (*Decl) stmt() {}

// Assign stores Value into Name; Op is OpAssign or a compound form.
type Assign struct {
	Name  string
	Op    Op
	Value Expr
}

func (*Assign) node() {}
func (*Assign) stmt() {}

// IncDec is "name++" or "name--".
type IncDec struct {
	Name string
	Op   Op
}

func (*IncDec) node() {}
func (*IncDec) stmt() {}

type If struct {
	Cond Expr
	Then *Block
	Else Stmt // nil, *Block or *If
}

func (*If) node() {}
func (*If) stmt() {}

type While struct {
	Cond Expr
	Body *Block
}

func (*While) node() {}
func (*While) stmt() {}

type For struct {
	Init *Decl
	Cond Expr
	Post *IncDec
	Body *Block
}

func (*For) node() {}
func (*For) stmt() {}

type Switch struct {
	Tag     Expr
	Cases   []Case
	Default *Block
}

func (*Switch) node() {}
func (*Switch) stmt() {}

type Case struct {
	Value *Lit
	Body  *Block
}

// Print writes Arg (nil for a bare line break) to standard output.
type Print struct {
	Newline bool
	Arg     Expr
}

func (*Print) node() {}
func (*Print) stmt() {}

type Return struct {
	Value Expr // may be nil
}

func (*Return) node() {}
func (*Return) stmt() {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "double"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	case LitBool:
		return "boolean"
	default:
		return "?"
	}
}

// Lit is a literal; Value is the canonical text without quotes.
type Lit struct {
	Kind  LitKind
	Value string
}

func (*Lit) node() {}
func (*Lit) expr() {}

type Var struct{ Name string }

func (*Var) node() {}
func (*Var) expr() {}

type Unary struct {
	Op Op
	X  Expr
}

func (*Unary) node() {}
func (*Unary) expr() {}

type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*Binary) node() {}
func (*Binary) expr() {}
