package ast

import "github.com/samber/lo"

// Leaf helpers.

func N(value float64) *Num {
	return NewNum(value)
}

func V(name string) *Var {
	return NewVar(name)
}

func Empty() *Nil {
	return NewNil()
}

// Composite helpers.

func Fn(param string, body Term) *Lam {
	return NewLam(param, body)
}

// Call applies fn to each argument in turn, left associatively.
func Call(fn Term, args ...Term) Term {
	return lo.Reduce(args, func(acc Term, arg Term, _ int) Term {
		return NewApp(acc, arg)
	}, fn)
}

func Bin(op Operator, left, right Term) *BinOp {
	return NewBinOp(op, left, right)
}

func Negate(operand Term) *Neg {
	return NewNeg(operand)
}

func LetIn(name string, value, body Term) *Let {
	return NewLet(name, value, body)
}

func RecIn(name string, value, body Term) *LetRec {
	return NewLetRec(name, value, body)
}

func FixOf(operand Term) *Fix {
	return NewFix(operand)
}

func Cond(cond, then, els Term) *If {
	return NewIf(cond, then, els)
}

func Then(first, second Term) *Seq {
	return NewSeq(first, second)
}

func Pair(head, tail Term) *Cons {
	return NewCons(head, tail)
}

func Head(list Term) *Hd {
	return NewHd(list)
}

func Tail(list Term) *Tl {
	return NewTl(list)
}

// List builds a Nil-terminated cons list from elems.
func List(elems ...Term) Term {
	return lo.ReduceRight(elems, func(acc Term, elem Term, _ int) Term {
		return NewCons(elem, acc)
	}, Term(NewNil()))
}

// Numbers builds a Nil-terminated list of numeric literals.
func Numbers(values ...float64) Term {
	return List(lo.Map(values, func(v float64, _ int) Term { return NewNum(v) })...)
}
