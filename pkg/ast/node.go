package ast

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
)

// Position is a point in the source text. Line and Column are 1-indexed;
// Offset is the 0-indexed byte offset and is what orderings compare.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Range is the span of source a node was parsed from.
type Range struct {
	Begin Position
	End   Position
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Begin.Offset <= other.Begin.Offset && other.End.Offset <= r.End.Offset
}

// NodeID indexes a node within a Tree. The zero value means the node has
// not been adopted by a tree.
type NodeID int

// Node is one element of the syntax tree.
type Node interface {
	// Base returns the attributes shared by all nodes.
	Base() *NodeBase

	// Children returns the node's direct children: the structural children
	// in declaration order followed by any orphan comments. Attached
	// comments are not children.
	Children() []Node
}

// NodeBase is embedded in every node.
type NodeBase struct {
	ID    NodeID
	Range Range

	// Comment is printed immediately before the node.
	Comment Comment

	// Orphans are comments that lie within this node's range but belong
	// to none of its structural children.
	Orphans []Comment
}

func (b *NodeBase) Base() *NodeBase {
	return b
}

// Begin returns where the node starts in the source.
func (b *NodeBase) Begin() Position {
	return b.Range.Begin
}

// AddOrphan records an orphan comment on the node.
func (b *NodeBase) AddOrphan(c Comment) {
	b.Orphans = append(b.Orphans, c)
}

func (b *NodeBase) withOrphans(out []Node) []Node {
	for _, c := range b.Orphans {
		out = append(out, c)
	}
	return out
}

func appendAll[T Node](out []Node, nodes []T) []Node {
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// IsComment reports whether n is a comment node.
func IsComment(n Node) bool {
	_, ok := n.(Comment)
	return ok
}

// KindOf returns the snake_case kind name of a node, e.g. "method_decl".
func KindOf(n Node) string {
	if n == nil {
		return "nil"
	}
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strcase.ToSnake(t.Name())
}

// Dump renders a node and everything beneath it for debugging.
func Dump(n Node) string {
	return pretty.Sprint(n)
}

// Outline renders an indented kind tree, one node per line, with the line
// each node starts on.
func Outline(n Node) string {
	var sb strings.Builder
	var walk func(Node, int)
	walk = func(n Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(KindOf(n))
		if c := n.Base().Comment; c != nil {
			sb.WriteString(" [")
			sb.WriteString(KindOf(c))
			sb.WriteString("]")
		}
		sb.WriteString(" @")
		sb.WriteString(strconv.Itoa(n.Base().Range.Begin.Line))
		sb.WriteString("\n")
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	walk(n, 0)
	return sb.String()
}
