package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/egarof00/PLGroup/pkg/ast"
)

// TokenKind identifies a lexical class.
type TokenKind int

const (
	EOF TokenKind = iota

	NAME
	NUMBER

	BACKSLASH
	DOT
	LPAREN
	RPAREN
	HASH
	COLON
	SEMISEMI
	ASSIGN
	PLUS
	MINUS
	STAR
	EQ
	LT
	GT
	LE
	GE

	IF
	THEN
	ELSE
	LET
	LETREC
	IN
	FIX
	HD
	TL
)

var tokenNames = map[TokenKind]string{
	EOF:       "end of input",
	NAME:      "name",
	NUMBER:    "number",
	BACKSLASH: `"\"`,
	DOT:       `"."`,
	LPAREN:    `"("`,
	RPAREN:    `")"`,
	HASH:      `"#"`,
	COLON:     `":"`,
	SEMISEMI:  `";;"`,
	ASSIGN:    `"="`,
	PLUS:      `"+"`,
	MINUS:     `"-"`,
	STAR:      `"*"`,
	EQ:        `"=="`,
	LT:        `"<"`,
	GT:        `">"`,
	LE:        `"<="`,
	GE:        `">="`,
	IF:        `"if"`,
	THEN:      `"then"`,
	ELSE:      `"else"`,
	LET:       `"let"`,
	LETREC:    `"letrec"`,
	IN:        `"in"`,
	FIX:       `"fix"`,
	HD:        `"hd"`,
	TL:        `"tl"`,
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(k))
}

var keywords = map[string]TokenKind{
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"let":    LET,
	"letrec": LETREC,
	"in":     IN,
	"fix":    FIX,
	"hd":     HD,
	"tl":     TL,
}

// Token is a lexeme with its byte offset in the source.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Pos  int
}

// Lex splits src into tokens, ending with an EOF token.
func Lex(src string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(src) {
		r, width := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += width
			continue
		case ast.IsNameStart(r):
			start := i
			for i < len(src) {
				r, width = utf8.DecodeRuneInString(src[i:])
				if !ast.IsNamePart(r) {
					break
				}
				i += width
			}
			text := src[start:i]
			kind := NAME
			if kw, ok := keywords[text]; ok {
				kind = kw
			}
			tokens = append(tokens, Token{Kind: kind, Text: text, Pos: start})
			continue
		case unicode.IsUpper(r):
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("identifiers must start with a lower-case letter, got %q", r)}
		case r >= '0' && r <= '9':
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			text := src[start:i]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", text)}
			}
			tokens = append(tokens, Token{Kind: NUMBER, Text: text, Num: val, Pos: start})
			continue
		}

		kind, size := punctuation(src[i:])
		if size == 0 {
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
		tokens = append(tokens, Token{Kind: kind, Text: src[i : i+size], Pos: i})
		i += size
	}
	tokens = append(tokens, Token{Kind: EOF, Pos: len(src)})
	return tokens, nil
}

func punctuation(s string) (TokenKind, int) {
	if len(s) >= 2 {
		switch s[:2] {
		case ";;":
			return SEMISEMI, 2
		case "==":
			return EQ, 2
		case "<=":
			return LE, 2
		case ">=":
			return GE, 2
		}
	}
	switch s[0] {
	case '\\':
		return BACKSLASH, 1
	case '.':
		return DOT, 1
	case '(':
		return LPAREN, 1
	case ')':
		return RPAREN, 1
	case '#':
		return HASH, 1
	case ':':
		return COLON, 1
	case '=':
		return ASSIGN, 1
	case '+':
		return PLUS, 1
	case '-':
		return MINUS, 1
	case '*':
		return STAR, 1
	case '<':
		return LT, 1
	case '>':
		return GT, 1
	}
	return EOF, 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
