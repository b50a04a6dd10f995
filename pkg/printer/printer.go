// Package printer renders terms in canonical surface syntax.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/egarof00/PLGroup/pkg/ast"
)

const (
	highlightStart = "\033[95m"
	highlightEnd   = "\033[0m"
)

// Render returns the canonical text of t. It never evaluates; stuck terms are
// printed exactly as handed in.
func Render(t ast.Term) string {
	var b strings.Builder
	write(&b, t)
	return b.String()
}

// Highlight wraps rendered output in the magenta escape used by the CLI.
func Highlight(s string) string {
	return highlightStart + s + highlightEnd
}

// FormatNumber renders a number with one fractional digit.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func write(b *strings.Builder, t ast.Term) {
	switch n := t.(type) {
	case *ast.Num:
		b.WriteString(FormatNumber(n.Value))
	case *ast.Var:
		b.WriteString(n.Name)
	case *ast.Nil:
		b.WriteByte('#')
	case *ast.Lam:
		b.WriteString(`(\`)
		b.WriteString(n.Param)
		b.WriteByte('.')
		write(b, n.Body)
		b.WriteByte(')')
	case *ast.App:
		b.WriteByte('(')
		write(b, n.Fn)
		b.WriteByte(' ')
		write(b, n.Arg)
		b.WriteByte(')')
	case *ast.BinOp:
		infix(b, string(n.Op), n.Left, n.Right)
	case *ast.Cons:
		infix(b, ":", n.Head, n.Tail)
	case *ast.Neg:
		b.WriteString("(-")
		write(b, n.Operand)
		b.WriteByte(')')
	case *ast.Let:
		binding(b, "let", n.Name, n.Value, n.Body)
	case *ast.LetRec:
		binding(b, "letrec", n.Name, n.Value, n.Body)
	case *ast.Fix:
		prefix(b, "fix", n.Operand)
	case *ast.Hd:
		prefix(b, "hd", n.List)
	case *ast.Tl:
		prefix(b, "tl", n.List)
	case *ast.If:
		b.WriteString("(if ")
		write(b, n.Cond)
		b.WriteString(" then ")
		write(b, n.Then)
		b.WriteString(" else ")
		write(b, n.Else)
		b.WriteByte(')')
	case *ast.Seq:
		write(b, n.First)
		b.WriteString(" ;; ")
		write(b, n.Second)
	default:
		panic(fmt.Sprintf("printer: unsupported term type %T", t))
	}
}

func infix(b *strings.Builder, op string, left, right ast.Term) {
	b.WriteByte('(')
	write(b, left)
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	write(b, right)
	b.WriteByte(')')
}

func prefix(b *strings.Builder, keyword string, operand ast.Term) {
	b.WriteByte('(')
	b.WriteString(keyword)
	b.WriteByte(' ')
	write(b, operand)
	b.WriteByte(')')
}

func binding(b *strings.Builder, keyword, name string, value, body ast.Term) {
	b.WriteByte('(')
	b.WriteString(keyword)
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(" = ")
	write(b, value)
	b.WriteString(" in ")
	write(b, body)
	b.WriteByte(')')
}
