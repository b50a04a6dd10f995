package ast

import (
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// Equal reports whether a and b are structurally identical. Binder names are
// compared literally; no alpha-equivalence is applied.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TermType() != b.TermType() {
		return false
	}
	switch x := a.(type) {
	case *Num:
		return x.Value == b.(*Num).Value
	case *Var:
		return x.Name == b.(*Var).Name
	case *Nil:
		return true
	case *Lam:
		y := b.(*Lam)
		return x.Param == y.Param && Equal(x.Body, y.Body)
	case *App:
		y := b.(*App)
		return Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	case *BinOp:
		y := b.(*BinOp)
		return x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Neg:
		return Equal(x.Operand, b.(*Neg).Operand)
	case *Let:
		y := b.(*Let)
		return x.Name == y.Name && Equal(x.Value, y.Value) && Equal(x.Body, y.Body)
	case *LetRec:
		y := b.(*LetRec)
		return x.Name == y.Name && Equal(x.Value, y.Value) && Equal(x.Body, y.Body)
	case *Fix:
		return Equal(x.Operand, b.(*Fix).Operand)
	case *If:
		y := b.(*If)
		return Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	case *Seq:
		y := b.(*Seq)
		return Equal(x.First, y.First) && Equal(x.Second, y.Second)
	case *Cons:
		y := b.(*Cons)
		return Equal(x.Head, y.Head) && Equal(x.Tail, y.Tail)
	case *Hd:
		return Equal(x.List, b.(*Hd).List)
	case *Tl:
		return Equal(x.List, b.(*Tl).List)
	default:
		return false
	}
}

// FreeVars returns the names occurring free in t.
func FreeVars(t Term) *set.Set[string] {
	out := set.New[string](8)
	collectFree(t, set.New[string](0), out)
	return out
}

// SortedFreeVars returns FreeVars(t) in lexical order.
func SortedFreeVars(t Term) []string {
	names := FreeVars(t).Slice()
	slices.Sort(names)
	return names
}

// OccursFree reports whether name is free in t.
func OccursFree(name string, t Term) bool {
	return FreeVars(t).Contains(name)
}

func collectFree(t Term, bound *set.Set[string], out *set.Set[string]) {
	switch n := t.(type) {
	case *Var:
		if !bound.Contains(n.Name) {
			out.Insert(n.Name)
		}
	case *Num, *Nil:
	case *Lam:
		collectFree(n.Body, with(bound, n.Param), out)
	case *App:
		collectFree(n.Fn, bound, out)
		collectFree(n.Arg, bound, out)
	case *BinOp:
		collectFree(n.Left, bound, out)
		collectFree(n.Right, bound, out)
	case *Neg:
		collectFree(n.Operand, bound, out)
	case *Let:
		collectFree(n.Value, bound, out)
		collectFree(n.Body, with(bound, n.Name), out)
	case *LetRec:
		inner := with(bound, n.Name)
		collectFree(n.Value, inner, out)
		collectFree(n.Body, inner, out)
	case *Fix:
		collectFree(n.Operand, bound, out)
	case *If:
		collectFree(n.Cond, bound, out)
		collectFree(n.Then, bound, out)
		collectFree(n.Else, bound, out)
	case *Seq:
		collectFree(n.First, bound, out)
		collectFree(n.Second, bound, out)
	case *Cons:
		collectFree(n.Head, bound, out)
		collectFree(n.Tail, bound, out)
	case *Hd:
		collectFree(n.List, bound, out)
	case *Tl:
		collectFree(n.List, bound, out)
	}
}

func with(bound *set.Set[string], name string) *set.Set[string] {
	if bound.Contains(name) {
		return bound
	}
	next := set.From(bound.Slice())
	next.Insert(name)
	return next
}
