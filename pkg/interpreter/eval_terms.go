package interpreter

import (
	"fmt"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

// evaluate is the central dispatch. Positions whose result is the result of
// the whole term (beta bodies, let bodies, fix unfoldings, if branches) loop
// instead of recursing, so tail-recursive programs run in constant Go stack.
func (i *Interpreter) evaluate(term ast.Term, run *runtime.Run) (ast.Term, error) {
	for {
		if err := run.Step(); err != nil {
			return nil, err
		}
		switch n := term.(type) {
		case *ast.Num, *ast.Var, *ast.Lam, *ast.Nil:
			return term, nil
		case *ast.App:
			fn, err := i.evaluate(n.Fn, run)
			if err != nil {
				return nil, err
			}
			switch f := fn.(type) {
			case *ast.Lam:
				term = Substitute(run.Names, f.Body, f.Param, n.Arg)
				continue
			case *ast.Nil:
				return f, nil
			default:
				return ast.NewApp(fn, n.Arg), nil
			}
		case *ast.Let:
			value, err := i.evaluate(n.Value, run)
			if err != nil {
				return nil, err
			}
			term = Substitute(run.Names, n.Body, n.Name, value)
		case *ast.LetRec:
			rec, err := i.evaluate(ast.NewFix(ast.NewLam(n.Name, n.Value)), run)
			if err != nil {
				return nil, err
			}
			term = Substitute(run.Names, n.Body, n.Name, rec)
		case *ast.Fix:
			operand, err := i.evaluate(n.Operand, run)
			if err != nil {
				return nil, err
			}
			lam, ok := operand.(*ast.Lam)
			if !ok {
				return ast.NewFix(operand), nil
			}
			term = ast.NewApp(lam, n)
		case *ast.If:
			cond, err := i.evaluate(n.Cond, run)
			if err != nil {
				return nil, err
			}
			num, ok := cond.(*ast.Num)
			if !ok {
				return ast.NewIf(cond, n.Then, n.Else), nil
			}
			if num.Value != 0 {
				term = n.Then
			} else {
				term = n.Else
			}
		case *ast.Seq:
			first, err := i.evaluate(n.First, run)
			if err != nil {
				return nil, err
			}
			second, err := i.evaluate(n.Second, run)
			if err != nil {
				return nil, err
			}
			return ast.NewSeq(first, second), nil
		case *ast.BinOp:
			return i.evaluateBinOp(n, run)
		case *ast.Neg:
			return i.evaluateNeg(n, run)
		case *ast.Cons:
			return i.evaluateCons(n, run)
		case *ast.Hd:
			return i.evaluateProjection("hd", n.List, run)
		case *ast.Tl:
			return i.evaluateProjection("tl", n.List, run)
		case nil:
			return nil, fmt.Errorf("evaluate: nil term")
		default:
			return nil, fmt.Errorf("unsupported term type: %s", n.TermType())
		}
	}
}
