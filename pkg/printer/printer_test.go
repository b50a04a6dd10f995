package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/egarof00/PLGroup/pkg/ast"
)

func TestRenderNumbersUseOneDecimal(t *testing.T) {
	assert.Equal(t, "4.0", Render(ast.N(4)))
	assert.Equal(t, "-1.0", Render(ast.N(-1)))
	assert.Equal(t, "2.5", Render(ast.N(2.5)))
	assert.Equal(t, "0.3", Render(ast.N(0.25+0.05)))
}

func TestRenderEveryVariant(t *testing.T) {
	cases := []struct {
		name string
		term ast.Term
		want string
	}{
		{"var", ast.V("x"), "x"},
		{"nil", ast.Empty(), "#"},
		{"lam", ast.Fn("x", ast.Call(ast.Fn("y", ast.V("y")), ast.V("x"))), `(\x.((\y.y) x))`},
		{"plus", ast.Bin(ast.OpPlus, ast.V("a"), ast.N(1)), "(a + 1.0)"},
		{"minus", ast.Bin(ast.OpMinus, ast.V("a"), ast.N(1)), "(a - 1.0)"},
		{"times", ast.Bin(ast.OpMultiply, ast.V("a"), ast.N(1)), "(a * 1.0)"},
		{"eq", ast.Bin(ast.OpEq, ast.V("a"), ast.N(1)), "(a == 1.0)"},
		{"lt", ast.Bin(ast.OpLt, ast.V("a"), ast.N(1)), "(a < 1.0)"},
		{"gt", ast.Bin(ast.OpGt, ast.V("a"), ast.N(1)), "(a > 1.0)"},
		{"le", ast.Bin(ast.OpLe, ast.V("a"), ast.N(1)), "(a <= 1.0)"},
		{"ge", ast.Bin(ast.OpGe, ast.V("a"), ast.N(1)), "(a >= 1.0)"},
		{"neg", ast.Negate(ast.V("a")), "(-a)"},
		{"let", ast.LetIn("x", ast.N(1), ast.V("x")), "(let x = 1.0 in x)"},
		{"letrec", ast.RecIn("f", ast.V("f"), ast.V("f")), "(letrec f = f in f)"},
		{"fix", ast.FixOf(ast.V("g")), "(fix g)"},
		{"if", ast.Cond(ast.V("c"), ast.N(1), ast.N(2)), "(if c then 1.0 else 2.0)"},
		{"seq", ast.Then(ast.N(1), ast.Then(ast.N(2), ast.N(3))), "1.0 ;; 2.0 ;; 3.0"},
		{"cons", ast.Numbers(1, 2, 3), "(1.0 : (2.0 : (3.0 : #)))"},
		{"improper cons", ast.Pair(ast.N(1), ast.N(2)), "(1.0 : 2.0)"},
		{"hd", ast.Head(ast.V("a")), "(hd a)"},
		{"tl", ast.Tail(ast.V("a")), "(tl a)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.term))
		})
	}
}

func TestRenderSeqInsideConsKeepsCellParens(t *testing.T) {
	term := ast.Then(ast.Pair(ast.N(1), ast.N(2)), ast.Numbers(1, 2))
	assert.Equal(t, "(1.0 : 2.0) ;; (1.0 : (2.0 : #))", Render(term))
}

func TestRenderIsDeterministic(t *testing.T) {
	term := ast.Call(ast.Fn("x", ast.Bin(ast.OpPlus, ast.V("x"), ast.N(1))), ast.Numbers(1))
	assert.Equal(t, Render(term), Render(term))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "\033[95m1.0\033[0m", Highlight("1.0"))
}
