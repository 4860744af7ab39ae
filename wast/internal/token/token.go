package token

import (
	"github.com/wippyai/simd-testgen/errors"
)

type Type int

const (
	LParen Type = iota
	RParen
	Keyword
	String
	Number
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Number:
		return "number"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

type scanner struct {
	src  string
	pos  int
	line int
	out  []Token
}

// Tokenize splits wast source into tokens. Comments are dropped. On an
// unterminated string or block comment it returns the tokens read so far
// together with a truncation error.
func Tokenize(input string) ([]Token, error) {
	s := &scanner{src: input, line: 1}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.line++
			s.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			s.pos++
		case c == ';' && s.peekIs(1, ';'):
			s.skipLineComment()
		case c == '(' && s.peekIs(1, ';'):
			if err := s.skipBlockComment(); err != nil {
				return s.out, err
			}
		case c == '(':
			s.emit("(", LParen)
			s.pos++
		case c == ')':
			s.emit(")", RParen)
			s.pos++
		case c == '"':
			if err := s.scanString(); err != nil {
				return s.out, err
			}
		default:
			s.scanAtom()
		}
	}
	return s.out, nil
}

func (s *scanner) peekIs(off int, c byte) bool {
	return s.pos+off < len(s.src) && s.src[s.pos+off] == c
}

func (s *scanner) emit(v string, t Type) {
	s.out = append(s.out, Token{Value: v, Type: t, Line: s.line})
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// Block comments nest.
func (s *scanner) skipBlockComment() error {
	start := s.line
	depth := 0
	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '(' && s.peekIs(1, ';'):
			depth++
			s.pos += 2
		case s.src[s.pos] == ';' && s.peekIs(1, ')'):
			depth--
			s.pos += 2
			if depth == 0 {
				return nil
			}
		default:
			if s.src[s.pos] == '\n' {
				s.line++
			}
			s.pos++
		}
	}
	return errors.Truncated(start, "unterminated block comment")
}

// The string value keeps escapes as written; callers only compare names.
func (s *scanner) scanString() error {
	startLine := s.line
	s.pos++
	start := s.pos
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '\n':
			s.line++
		case '"':
			s.out = append(s.out, Token{Value: s.src[start:s.pos], Type: String, Line: startLine})
			s.pos++
			return nil
		}
		s.pos++
	}
	return errors.Truncated(startLine, "unterminated string")
}

func (s *scanner) scanAtom() {
	start := s.pos
	for s.pos < len(s.src) && !isDelimiter(s.src[s.pos]) {
		if s.src[s.pos] == ';' && s.peekIs(1, ';') {
			break
		}
		s.pos++
	}
	v := s.src[start:s.pos]
	if isNumeric(v) {
		s.emit(v, Number)
	} else {
		s.emit(v, Keyword)
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', '(', ')', '"':
		return true
	}
	return false
}

// isNumeric reports whether an atom starts like a number. inf and nan
// spellings stay keywords.
func isNumeric(v string) bool {
	if v == "" {
		return false
	}
	if v[0] == '+' || v[0] == '-' {
		v = v[1:]
	}
	return v != "" && v[0] >= '0' && v[0] <= '9'
}
