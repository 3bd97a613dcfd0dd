package eval

import (
	"fmt"
	"strings"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

type node interface {
	position() int
}

type numberNode struct {
	value *bigint.Int
	pos   int
}

type unaryNode struct {
	operand node
	pos     int
}

type binaryNode struct {
	op          tokenKind
	left, right node
	pos         int
}

type callNode struct {
	name string
	args []node
	pos  int
}

func (n numberNode) position() int { return n.pos }
func (n unaryNode) position() int  { return n.pos }
func (n binaryNode) position() int { return n.pos }
func (n callNode) position() int   { return n.pos }

// arity lists the supported functions and their argument counts.
var arity = map[string]int{
	"abs": 1,
	"gcd": 2,
	"inv": 1,
	"pow": 2,
}

type parser struct {
	input string
	toks  []token
	i     int
}

// parse builds the syntax tree of input.
func parse(input string) (node, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, p.errorf(p.peek(), "empty expression")
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s", describe(t))
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", kind, describe(t))
	}
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return apperrors.SyntaxError{Input: p.input, Offset: t.pos, Message: fmt.Sprintf(format, args...)}
}

func describe(t token) string {
	switch t.kind {
	case tokNumber, tokIdent:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right, pos: t.pos}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch t.kind {
		case tokStar, tokSlash, tokPercent, tokShl, tokShr:
		default:
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right, pos: t.pos}
	}
}

func (p *parser) unary() (node, error) {
	if t := p.peek(); t.kind == tokMinus {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand, pos: t.pos}, nil
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokCaret, left: base, right: exp, pos: t.pos}, nil
}

func (p *parser) atom() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := bigint.Parse(t.text)
		if err != nil {
			return nil, p.errorf(t, "%v", err)
		}
		return numberNode{value: v, pos: t.pos}, nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return n, nil
	case tokIdent:
		return p.call(t)
	}
	return nil, p.errorf(t, "unexpected %s", describe(t))
}

func (p *parser) call(name token) (node, error) {
	fn := strings.ToLower(name.text)
	want, ok := arity[fn]
	if !ok {
		return nil, p.errorf(name, "unknown function %q", name.text)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var args []node
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if len(args) != want {
		return nil, p.errorf(name, "%s takes %d argument(s), got %d", fn, want, len(args))
	}
	return callNode{name: fn, args: args, pos: name.pos}, nil
}
