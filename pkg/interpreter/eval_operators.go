package interpreter

import (
	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

func (i *Interpreter) evaluateBinOp(n *ast.BinOp, run *runtime.Run) (ast.Term, error) {
	left, err := i.evaluate(n.Left, run)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right, run)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.OpEq {
		return equal(left, right), nil
	}
	l, lok := left.(*ast.Num)
	r, rok := right.(*ast.Num)
	if !lok || !rok {
		return ast.NewBinOp(n.Op, left, right), nil
	}
	switch n.Op {
	case ast.OpPlus:
		return ast.NewNum(l.Value + r.Value), nil
	case ast.OpMinus:
		return ast.NewNum(l.Value - r.Value), nil
	case ast.OpMultiply:
		return ast.NewNum(l.Value * r.Value), nil
	case ast.OpLt:
		return truth(l.Value < r.Value), nil
	case ast.OpGt:
		return truth(l.Value > r.Value), nil
	case ast.OpLe:
		return truth(l.Value <= r.Value), nil
	case ast.OpGe:
		return truth(l.Value >= r.Value), nil
	default:
		return ast.NewBinOp(n.Op, left, right), nil
	}
}

func (i *Interpreter) evaluateNeg(n *ast.Neg, run *runtime.Run) (ast.Term, error) {
	operand, err := i.evaluate(n.Operand, run)
	if err != nil {
		return nil, err
	}
	if num, ok := operand.(*ast.Num); ok {
		return ast.NewNum(-num.Value), nil
	}
	return ast.NewNeg(operand), nil
}

// equal compares two evaluated operands. Numbers compare by value and lists
// structurally; a list never equals a non-list. Any other pairing, or a list
// whose elements cannot be compared yet, stays stuck.
func equal(left, right ast.Term) ast.Term {
	if l, ok := left.(*ast.Num); ok {
		if r, ok := right.(*ast.Num); ok {
			return truth(l.Value == r.Value)
		}
	}
	if !ast.IsList(left) && !ast.IsList(right) {
		return ast.NewBinOp(ast.OpEq, left, right)
	}
	switch l := left.(type) {
	case *ast.Nil:
		_, ok := right.(*ast.Nil)
		return truth(ok)
	case *ast.Cons:
		r, ok := right.(*ast.Cons)
		if !ok {
			return truth(false)
		}
		head, ok := equal(l.Head, r.Head).(*ast.Num)
		if !ok {
			return ast.NewBinOp(ast.OpEq, left, right)
		}
		if head.Value == 0 {
			return head
		}
		tail, ok := equal(l.Tail, r.Tail).(*ast.Num)
		if !ok {
			return ast.NewBinOp(ast.OpEq, left, right)
		}
		return tail
	default:
		return truth(false)
	}
}

func truth(b bool) *ast.Num {
	if b {
		return ast.NewNum(1)
	}
	return ast.NewNum(0)
}
