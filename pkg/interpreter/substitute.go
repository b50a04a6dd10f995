package interpreter

import (
	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

// Substitute replaces every free occurrence of name in term with replacement.
//
// Abstraction binders that do not shadow name are always renamed to a fresh
// name, so no free variable of replacement can be captured by them. Let and
// letrec binders are renamed only when they would capture. The input term is
// never modified.
func Substitute(names *runtime.NameGenerator, term ast.Term, name string, replacement ast.Term) ast.Term {
	s := &substitution{names: names, name: name, replacement: replacement}
	return s.apply(term)
}

type substitution struct {
	names       *runtime.NameGenerator
	name        string
	replacement ast.Term
}

func (s *substitution) captures(binder string) bool {
	return ast.OccursFree(binder, s.replacement)
}

// rename rebinds from to a fresh name inside term.
func (s *substitution) rename(term ast.Term, from, fresh string) ast.Term {
	return Substitute(s.names, term, from, ast.NewVar(fresh))
}

func (s *substitution) apply(term ast.Term) ast.Term {
	switch n := term.(type) {
	case *ast.Var:
		if n.Name == s.name {
			return s.replacement
		}
		return n
	case *ast.Num, *ast.Nil:
		return term
	case *ast.Lam:
		if n.Param == s.name {
			return n
		}
		fresh := s.names.Fresh()
		body := s.rename(n.Body, n.Param, fresh)
		return ast.NewLam(fresh, s.apply(body))
	case *ast.App:
		return ast.NewApp(s.apply(n.Fn), s.apply(n.Arg))
	case *ast.BinOp:
		return ast.NewBinOp(n.Op, s.apply(n.Left), s.apply(n.Right))
	case *ast.Neg:
		return ast.NewNeg(s.apply(n.Operand))
	case *ast.Let:
		if n.Name == s.name {
			return ast.NewLet(n.Name, s.apply(n.Value), n.Body)
		}
		value := s.apply(n.Value)
		if s.captures(n.Name) {
			fresh := s.names.Fresh()
			return ast.NewLet(fresh, value, s.apply(s.rename(n.Body, n.Name, fresh)))
		}
		return ast.NewLet(n.Name, value, s.apply(n.Body))
	case *ast.LetRec:
		if n.Name == s.name {
			return n
		}
		if s.captures(n.Name) {
			fresh := s.names.Fresh()
			value := s.apply(s.rename(n.Value, n.Name, fresh))
			return ast.NewLetRec(fresh, value, s.apply(s.rename(n.Body, n.Name, fresh)))
		}
		return ast.NewLetRec(n.Name, s.apply(n.Value), s.apply(n.Body))
	case *ast.Fix:
		return ast.NewFix(s.apply(n.Operand))
	case *ast.If:
		return ast.NewIf(s.apply(n.Cond), s.apply(n.Then), s.apply(n.Else))
	case *ast.Seq:
		return ast.NewSeq(s.apply(n.First), s.apply(n.Second))
	case *ast.Cons:
		return ast.NewCons(s.apply(n.Head), s.apply(n.Tail))
	case *ast.Hd:
		return ast.NewHd(s.apply(n.List))
	case *ast.Tl:
		return ast.NewTl(s.apply(n.List))
	default:
		return term
	}
}
