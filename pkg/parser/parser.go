// Package parser turns surface syntax into terms.
//
// Precedence, loosest first: binders (\x. / if / let / letrec) extend as far
// right as possible; ";;" (right associative); comparisons; "+" and "-"; "*";
// prefix "-", hd, tl, fix; juxtaposition (left associative); ":" (right
// associative); atoms.
package parser

import (
	"errors"
	"fmt"

	"github.com/egarof00/PLGroup/pkg/ast"
)

// SyntaxError describes malformed input. Incomplete is set when the input
// ended before the term was finished.
type SyntaxError struct {
	Pos        int
	Msg        string
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// IsIncomplete reports whether err means more input could complete the term.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Incomplete
}

// Parse parses a complete term.
func Parse(src string) (ast.Term, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	term, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, p.unexpected(tok)
	}
	return term, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(kind TokenKind) bool {
	if p.peek().Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf(tok, "expected %s, got %s", kind, describe(tok))
	}
	return p.next(), nil
}

func (p *parser) unexpected(tok Token) error {
	return p.errorf(tok, "unexpected %s", describe(tok))
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...), Incomplete: tok.Kind == EOF}
}

func describe(tok Token) string {
	if tok.Text != "" && tok.Kind != EOF {
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	}
	return tok.Kind.String()
}

// parseExpression handles sequencing: cmp (";;" expression)?
func (p *parser) parseExpression() (ast.Term, error) {
	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.accept(SEMISEMI) {
		return first, nil
	}
	second, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewSeq(first, second), nil
}

var comparisonOps = map[TokenKind]ast.Operator{
	EQ: ast.OpEq,
	LT: ast.OpLt,
	GT: ast.OpGt,
	LE: ast.OpLe,
	GE: ast.OpGe,
}

var additiveOps = map[TokenKind]ast.Operator{
	PLUS:  ast.OpPlus,
	MINUS: ast.OpMinus,
}

var multiplicativeOps = map[TokenKind]ast.Operator{
	STAR: ast.OpMultiply,
}

func (p *parser) parseComparison() (ast.Term, error) {
	return p.parseInfix(comparisonOps, p.parseSum)
}

func (p *parser) parseSum() (ast.Term, error) {
	return p.parseInfix(additiveOps, p.parseProduct)
}

func (p *parser) parseProduct() (ast.Term, error) {
	return p.parseInfix(multiplicativeOps, p.parseUnary)
}

// parseInfix parses a left-associative chain of the given operators.
func (p *parser) parseInfix(ops map[TokenKind]ast.Operator, operand func() (ast.Term, error)) (ast.Term, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinOp(op, left, right)
	}
}

func (p *parser) parseUnary() (ast.Term, error) {
	switch p.peek().Kind {
	case MINUS:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if num, ok := operand.(*ast.Num); ok {
			return ast.NewNum(-num.Value), nil
		}
		return ast.NewNeg(operand), nil
	case HD, TL, FIX:
		tok := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case HD:
			return ast.NewHd(operand), nil
		case TL:
			return ast.NewTl(operand), nil
		default:
			return ast.NewFix(operand), nil
		}
	default:
		return p.parseApplication()
	}
}

func (p *parser) parseApplication() (ast.Term, error) {
	fn, err := p.parseCons()
	if err != nil {
		return nil, err
	}
	for startsArgument(p.peek().Kind) {
		arg, err := p.parseCons()
		if err != nil {
			return nil, err
		}
		fn = ast.NewApp(fn, arg)
	}
	return fn, nil
}

func startsArgument(kind TokenKind) bool {
	switch kind {
	case NAME, NUMBER, HASH, LPAREN, BACKSLASH:
		return true
	}
	return false
}

func (p *parser) parseCons() (ast.Term, error) {
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if !p.accept(COLON) {
		return head, nil
	}
	tail, err := p.parseCons()
	if err != nil {
		return nil, err
	}
	return ast.NewCons(head, tail), nil
}

func (p *parser) parseAtom() (ast.Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case NUMBER:
		p.next()
		return ast.NewNum(tok.Num), nil
	case NAME:
		p.next()
		return ast.NewVar(tok.Text), nil
	case HASH:
		p.next()
		return ast.NewNil(), nil
	case LPAREN:
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case BACKSLASH:
		return p.parseLambda()
	case IF:
		return p.parseIf()
	case LET, LETREC:
		return p.parseLet()
	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) parseLambda() (ast.Term, error) {
	p.next()
	param, err := p.expect(NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(DOT); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewLam(param.Text, body), nil
}

func (p *parser) parseIf() (ast.Term, error) {
	p.next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(THEN); err != nil {
		return nil, err
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ELSE); err != nil {
		return nil, err
	}
	els, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewIf(cond, then, els), nil
}

func (p *parser) parseLet() (ast.Term, error) {
	recursive := p.next().Kind == LETREC
	name, err := p.expect(NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(IN); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if recursive {
		return ast.NewLetRec(name.Text, value, body), nil
	}
	return ast.NewLet(name.Text, value, body), nil
}
