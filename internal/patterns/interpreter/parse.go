package interpreter

import (
	"errors"
	"fmt"
	"unicode"
)

var ErrSyntax = errors.New("syntax error")

// Parse builds an expression from an infix formula such as
// "labour * hours + (parts - discount) / 2". Operators are + - * / with the
// usual precedence, left-associative, plus unary minus and parentheses.
func Parse(formula string) (Expression, error) {
	p := &parser{src: []rune(formula)}
	p.next()
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return e, nil
}

// MustParse is Parse that panics on error.
func MustParse(formula string) Expression {
	e, err := Parse(formula)
	if err != nil {
		panic(err)
	}
	return e
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	pos  int
	num  float64
}

type parser struct {
	src []rune
	pos int
	tok token
	err error
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d: %s", ErrSyntax, p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) next() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	r := p.src[p.pos]
	switch {
	case r == '(':
		p.pos++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case r == ')':
		p.pos++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case r == '+' || r == '-' || r == '*' || r == '/':
		p.pos++
		p.tok = token{kind: tokOp, text: string(r), pos: start}
	case unicode.IsDigit(r) || r == '.':
		for p.pos < len(p.src) && (unicode.IsDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		text := string(p.src[start:p.pos])
		n, ok := DoubleValue(text)
		if !ok {
			p.tok = token{kind: tokOp, text: text, pos: start}
			p.err = fmt.Errorf("%w at %d: bad number %q", ErrSyntax, start, text)
			return
		}
		p.tok = token{kind: tokNumber, text: text, pos: start, num: n}
	case unicode.IsLetter(r) || r == '_':
		for p.pos < len(p.src) && (unicode.IsLetter(p.src[p.pos]) || unicode.IsDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: string(p.src[start:p.pos]), pos: start}
	default:
		p.pos++
		p.tok = token{kind: tokOp, text: string(r), pos: start}
		p.err = fmt.Errorf("%w at %d: unexpected %q", ErrSyntax, start, r)
	}
}

// expr = term { ("+" | "-") term }
func (p *parser) expr() (Expression, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			left = Add{left, right}
		} else {
			left = Subtract{left, right}
		}
	}
	return left, nil
}

// term = factor { ("*" | "/") factor }
func (p *parser) term() (Expression, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "*" || p.tok.text == "/") {
		op := p.tok.text
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			left = Multiply{left, right}
		} else {
			left = Divide{left, right}
		}
	}
	return left, nil
}

// factor = number | ident | "(" expr ")" | "-" factor
func (p *parser) factor() (Expression, error) {
	if p.err != nil {
		return nil, p.err
	}
	tok := p.tok
	switch {
	case tok.kind == tokNumber:
		p.next()
		return Number(tok.num), nil
	case tok.kind == tokIdent:
		p.next()
		return Variable(tok.text), nil
	case tok.kind == tokLParen:
		p.next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf("expected )")
		}
		p.next()
		return e, nil
	case tok.kind == tokOp && tok.text == "-":
		p.next()
		e, err := p.factor()
		if err != nil {
			return nil, err
		}
		return Subtract{Number(0), e}, nil
	case tok.kind == tokEOF:
		return nil, p.errorf("unexpected end of formula")
	}
	return nil, p.errorf("unexpected %q", tok.text)
}
