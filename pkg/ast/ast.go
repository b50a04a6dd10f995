package ast

type TermType string

const (
	TermNum    TermType = "Num"
	TermVar    TermType = "Var"
	TermLam    TermType = "Lam"
	TermApp    TermType = "App"
	TermBinOp  TermType = "BinOp"
	TermNeg    TermType = "Neg"
	TermLet    TermType = "Let"
	TermLetRec TermType = "LetRec"
	TermFix    TermType = "Fix"
	TermIf     TermType = "If"
	TermSeq    TermType = "Seq"
	TermNil    TermType = "Nil"
	TermCons   TermType = "Cons"
	TermHd     TermType = "Hd"
	TermTl     TermType = "Tl"
)

// Term is a closed sum over the variants declared in this file. Terms are
// immutable once constructed; every producer builds fresh nodes.
type Term interface {
	TermType() TermType
	isTerm()
}

type termImpl struct {
	Type TermType `json:"type"`
}

func newTermImpl(kind TermType) termImpl {
	return termImpl{Type: kind}
}

func (t termImpl) TermType() TermType { return t.Type }
func (termImpl) isTerm()              {}

// Operator enumerates the binary operators.

type Operator string

const (
	OpPlus     Operator = "+"
	OpMinus    Operator = "-"
	OpMultiply Operator = "*"
	OpEq       Operator = "=="
	OpLt       Operator = "<"
	OpGt       Operator = ">"
	OpLe       Operator = "<="
	OpGe       Operator = ">="
)

// IsComparison reports whether op yields a float-encoded boolean.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpLt, OpGt, OpLe, OpGe:
		return true
	}
	return false
}

// Valid reports whether op is one of the declared operators.
func (op Operator) Valid() bool {
	switch op {
	case OpPlus, OpMinus, OpMultiply, OpEq, OpLt, OpGt, OpLe, OpGe:
		return true
	}
	return false
}

// Leaves

type Num struct {
	termImpl

	Value float64 `json:"value"`
}

func NewNum(value float64) *Num {
	return &Num{termImpl: newTermImpl(TermNum), Value: value}
}

type Var struct {
	termImpl

	Name string `json:"name"`
}

func NewVar(name string) *Var {
	return &Var{termImpl: newTermImpl(TermVar), Name: name}
}

type Nil struct {
	termImpl
}

func NewNil() *Nil {
	return &Nil{termImpl: newTermImpl(TermNil)}
}

// Abstraction and application

type Lam struct {
	termImpl

	Param string `json:"param"`
	Body  Term   `json:"body"`
}

func NewLam(param string, body Term) *Lam {
	return &Lam{termImpl: newTermImpl(TermLam), Param: param, Body: body}
}

type App struct {
	termImpl

	Fn  Term `json:"fn"`
	Arg Term `json:"arg"`
}

func NewApp(fn, arg Term) *App {
	return &App{termImpl: newTermImpl(TermApp), Fn: fn, Arg: arg}
}

// Operators

type BinOp struct {
	termImpl

	Op    Operator `json:"op"`
	Left  Term     `json:"left"`
	Right Term     `json:"right"`
}

func NewBinOp(op Operator, left, right Term) *BinOp {
	return &BinOp{termImpl: newTermImpl(TermBinOp), Op: op, Left: left, Right: right}
}

type Neg struct {
	termImpl

	Operand Term `json:"operand"`
}

func NewNeg(operand Term) *Neg {
	return &Neg{termImpl: newTermImpl(TermNeg), Operand: operand}
}

// Bindings

type Let struct {
	termImpl

	Name  string `json:"name"`
	Value Term   `json:"value"`
	Body  Term   `json:"body"`
}

func NewLet(name string, value, body Term) *Let {
	return &Let{termImpl: newTermImpl(TermLet), Name: name, Value: value, Body: body}
}

// LetRec binds Name in both Value and Body.
type LetRec struct {
	termImpl

	Name  string `json:"name"`
	Value Term   `json:"value"`
	Body  Term   `json:"body"`
}

func NewLetRec(name string, value, body Term) *LetRec {
	return &LetRec{termImpl: newTermImpl(TermLetRec), Name: name, Value: value, Body: body}
}

type Fix struct {
	termImpl

	Operand Term `json:"operand"`
}

func NewFix(operand Term) *Fix {
	return &Fix{termImpl: newTermImpl(TermFix), Operand: operand}
}

// Control

type If struct {
	termImpl

	Cond Term `json:"cond"`
	Then Term `json:"then"`
	Else Term `json:"else"`
}

func NewIf(cond, then, els Term) *If {
	return &If{termImpl: newTermImpl(TermIf), Cond: cond, Then: then, Else: els}
}

type Seq struct {
	termImpl

	First  Term `json:"first"`
	Second Term `json:"second"`
}

func NewSeq(first, second Term) *Seq {
	return &Seq{termImpl: newTermImpl(TermSeq), First: first, Second: second}
}

// Lists

type Cons struct {
	termImpl

	Head Term `json:"head"`
	Tail Term `json:"tail"`
}

func NewCons(head, tail Term) *Cons {
	return &Cons{termImpl: newTermImpl(TermCons), Head: head, Tail: tail}
}

type Hd struct {
	termImpl

	List Term `json:"list"`
}

func NewHd(list Term) *Hd {
	return &Hd{termImpl: newTermImpl(TermHd), List: list}
}

type Tl struct {
	termImpl

	List Term `json:"list"`
}

func NewTl(list Term) *Tl {
	return &Tl{termImpl: newTermImpl(TermTl), List: list}
}

// IsValue reports whether t is a value: a number, an abstraction, the empty
// list, or a cons cell whose components are values.
func IsValue(t Term) bool {
	switch n := t.(type) {
	case *Num, *Lam, *Nil:
		return true
	case *Cons:
		return IsValue(n.Head) && IsValue(n.Tail)
	default:
		return false
	}
}

// IsList reports whether t is a list constructor.
func IsList(t Term) bool {
	switch t.(type) {
	case *Nil, *Cons:
		return true
	}
	return false
}
