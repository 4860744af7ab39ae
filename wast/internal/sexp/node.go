package sexp

import (
	"strings"

	"github.com/wippyai/simd-testgen/wast/internal/token"
)

type Kind int

const (
	Atom Kind = iota
	List
)

// Node is either an atom (Token set) or a list (Items set).
type Node struct {
	Items []*Node
	Token token.Token
	Kind  Kind
	Line  int
}

func (n *Node) IsList() bool {
	return n.Kind == List
}

// IsAtom reports whether n is an atom of type t.
func (n *Node) IsAtom(t token.Type) bool {
	return n.Kind == Atom && n.Token.Type == t
}

// Head returns the leading keyword of a list, or "".
func (n *Node) Head() string {
	if n.Kind != List || len(n.Items) == 0 {
		return ""
	}
	if first := n.Items[0]; first.IsAtom(token.Keyword) {
		return first.Token.Value
	}
	return ""
}

// Args returns the list items after the head.
func (n *Node) Args() []*Node {
	if n.Kind != List || len(n.Items) == 0 {
		return nil
	}
	return n.Items[1:]
}

// Walk visits n and its descendants in source order. Returning false from
// fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, item := range n.Items {
		item.Walk(fn)
	}
}

// Find returns every list below or at n whose head is name, in source order.
// Matches are not searched further.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Head() == name {
			out = append(out, c)
			return false
		}
		return true
	})
	return out
}

func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Kind == Atom {
		if n.Token.Type == token.String {
			b.WriteByte('"')
			b.WriteString(n.Token.Value)
			b.WriteByte('"')
			return
		}
		b.WriteString(n.Token.Value)
		return
	}
	b.WriteByte('(')
	for i, item := range n.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		item.write(b)
	}
	b.WriteByte(')')
}
