package interpreter

import (
	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

func (i *Interpreter) evaluateCons(n *ast.Cons, run *runtime.Run) (ast.Term, error) {
	head, err := i.evaluate(n.Head, run)
	if err != nil {
		return nil, err
	}
	tail, err := i.evaluate(n.Tail, run)
	if err != nil {
		return nil, err
	}
	return ast.NewCons(head, tail), nil
}

// evaluateProjection implements hd and tl. Cons components are already
// evaluated, so they are returned as is.
func (i *Interpreter) evaluateProjection(op string, list ast.Term, run *runtime.Run) (ast.Term, error) {
	value, err := i.evaluate(list, run)
	if err != nil {
		return nil, err
	}
	switch l := value.(type) {
	case *ast.Cons:
		if op == "hd" {
			return l.Head, nil
		}
		return l.Tail, nil
	case *ast.Nil:
		return l, nil
	case *ast.Num, *ast.Lam:
		return nil, &IllFormedOperationError{Op: op, Operand: value}
	}
	if op == "hd" {
		return ast.NewHd(value), nil
	}
	return ast.NewTl(value), nil
}
