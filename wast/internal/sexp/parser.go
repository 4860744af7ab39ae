package sexp

import (
	stderrors "errors"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/wast/internal/token"
)

type Parser struct {
	tokens []token.Token
	diags  []*errors.Error
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse reads every top-level form. A stray ')' is reported and skipped.
// An unterminated form ends the parse; the complete forms before it are
// still returned.
func (p *Parser) Parse() ([]*Node, error) {
	var forms []*Node
	for p.peek() != nil {
		t := p.peek()
		if t.Type == token.RParen {
			p.next()
			p.report(errors.UnexpectedToken(t.Line, t.Value))
			continue
		}
		n, err := p.parseNode()
		if err != nil {
			p.report(err)
			break
		}
		forms = append(forms, n)
	}
	return forms, p.err()
}

// Diagnostics returns the problems found by the last Parse.
func (p *Parser) Diagnostics() []*errors.Error {
	return p.diags
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) parseNode() (*Node, *errors.Error) {
	t := p.next()
	if t.Type != token.LParen {
		return &Node{Kind: Atom, Token: *t, Line: t.Line}, nil
	}

	n := &Node{Kind: List, Line: t.Line}
	for {
		c := p.peek()
		if c == nil {
			return nil, errors.Truncated(n.Line, "unclosed list")
		}
		if c.Type == token.RParen {
			p.next()
			return n, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, child)
	}
}

func (p *Parser) report(err *errors.Error) {
	p.diags = append(p.diags, err)
}

func (p *Parser) err() error {
	if len(p.diags) == 0 {
		return nil
	}
	errs := make([]error, len(p.diags))
	for i, d := range p.diags {
		errs[i] = d
	}
	return stderrors.Join(errs...)
}

// ParseString tokenizes and parses src. Tokenizer truncation is reported
// alongside any parse diagnostics.
func ParseString(src string) ([]*Node, []*errors.Error) {
	tokens, terr := token.Tokenize(src)
	p := New(tokens)
	forms, _ := p.Parse()
	diags := p.Diagnostics()
	if terr != nil {
		var e *errors.Error
		if stderrors.As(terr, &e) {
			diags = append(diags, e)
		} else {
			diags = append(diags, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, terr, "tokenize"))
		}
	}
	return forms, diags
}
