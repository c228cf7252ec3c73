// Package javaparse builds syntax trees from Java source using the
// tree-sitter Java grammar.
package javaparse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/vito/jfmt/pkg/ast"
)

// SyntaxError reports source the grammar could not parse.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Snippet string
}

func (e *SyntaxError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%s:%d:%d: syntax error", e.File, e.Line, e.Column)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error near %q", e.File, e.Line, e.Column, e.Snippet)
}

// UnsupportedError reports valid Java that the syntax tree cannot
// represent, such as records or switch rules.
type UnsupportedError struct {
	File      string
	Line      int
	Column    int
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unsupported construct: %s", e.File, e.Line, e.Column, e.Construct)
}

// Option configures a parse.
type Option func(*lowerer)

// WithLogger directs debug output about comment attribution to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *lowerer) {
		l.log = logger
	}
}

// Parse parses a compilation unit. filename is used only in errors.
func Parse(ctx context.Context, filename string, src []byte, opts ...Option) (*ast.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	cst, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer cst.Close()

	root := cst.RootNode()
	if root.HasError() {
		return nil, syntaxError(filename, src, root)
	}

	l := &lowerer{
		file: filename,
		src:  src,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	cu, err := l.lowerProgram(root)
	if err != nil {
		return nil, err
	}

	comments := l.collectComments(root)
	attachComments(cu, comments, l.log)

	return ast.NewTree(cu), nil
}

// MustParse parses src or panics. For tests.
func MustParse(src string) *ast.Tree {
	tree, err := Parse(context.Background(), "test.java", []byte(src))
	if err != nil {
		panic(err)
	}
	return tree
}

func syntaxError(filename string, src []byte, root *sitter.Node) error {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	pt := bad.StartPoint()
	snippet := bad.Content(src)
	if i := strings.IndexByte(snippet, '\n'); i >= 0 {
		snippet = snippet[:i]
	}
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}
	return &SyntaxError{
		File:    filename,
		Line:    int(pt.Row) + 1,
		Column:  int(pt.Column) + 1,
		Snippet: snippet,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// bailout carries an error out of the recursive lowering.
type bailout struct {
	err error
}

type lowerer struct {
	file string
	src  []byte
	log  *slog.Logger
}

func (l *lowerer) unsupported(n *sitter.Node, construct string) {
	pt := n.StartPoint()
	panic(bailout{&UnsupportedError{
		File:      l.file,
		Line:      int(pt.Row) + 1,
		Column:    int(pt.Column) + 1,
		Construct: construct,
	}})
}

func (l *lowerer) unexpected(n *sitter.Node, where string) {
	l.unsupported(n, fmt.Sprintf("%s in %s", n.Type(), where))
}

func (l *lowerer) lowerProgram(root *sitter.Node) (cu *ast.CompilationUnit, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			cu, err = nil, b.err
		}
	}()
	return l.compilationUnit(root), nil
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Content(l.src)
}

func position(offset uint32, pt sitter.Point) ast.Position {
	return ast.Position{
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
		Offset: int(offset),
	}
}

func (l *lowerer) rangeOf(n *sitter.Node) ast.Range {
	return ast.Range{
		Begin: position(n.StartByte(), n.StartPoint()),
		End:   position(n.EndByte(), n.EndPoint()),
	}
}

// at sets the range of node to that of the CST node it came from.
func at[T ast.Node](l *lowerer, n *sitter.Node, node T) T {
	node.Base().Range = l.rangeOf(n)
	return node
}

func isCommentKind(kind string) bool {
	switch kind {
	case "comment", "line_comment", "block_comment":
		return true
	}
	return false
}

// children returns every child of n except comments, tokens included.
func children(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if isCommentKind(c.Type()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// named returns the named children of n except comments.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if isCommentKind(c.Type()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func field(n *sitter.Node, name string) *sitter.Node {
	return n.ChildByFieldName(name)
}

// hasToken reports whether n has an anonymous child with the given text.
func hasToken(n *sitter.Node, tok string) bool {
	for _, c := range children(n) {
		if !c.IsNamed() && c.Type() == tok {
			return true
		}
	}
	return false
}

func (l *lowerer) collectComments(root *sitter.Node) []ast.Comment {
	var comments []ast.Comment
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if isCommentKind(n.Type()) {
			comments = append(comments, l.comment(n))
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return comments
}

func (l *lowerer) comment(n *sitter.Node) ast.Comment {
	text := l.text(n)
	switch {
	case strings.HasPrefix(text, "//"):
		return at(l, n, &ast.LineComment{Content: strings.TrimRight(text[2:], "\r\n")})
	case strings.HasPrefix(text, "/**") && text != "/**/":
		return at(l, n, &ast.JavadocComment{Content: strings.TrimSuffix(text[3:], "*/")})
	default:
		return at(l, n, &ast.BlockComment{Content: strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")})
	}
}
