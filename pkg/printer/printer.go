// Package printer regenerates Java source from a syntax tree.
package printer

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/vito/jfmt/pkg/ast"
)

// Options control a print.
type Options struct {
	// EmitComments prints attached and orphan comments. When false no
	// comment node is visited at all.
	EmitComments bool

	// Indent is the indentation unit; DefaultIndent if empty.
	Indent string

	// Logger receives debug output about recovered orphan comments.
	Logger *slog.Logger
}

// ConsistencyError reports a tree whose recorded parent links disagree
// with its child lists. Printing stops and produces no output.
type ConsistencyError struct {
	Node   ast.Node
	Parent ast.Node
	Reason string
}

func (e *ConsistencyError) Error() string {
	if e.Parent != nil {
		return fmt.Sprintf("inconsistent tree: %s (parent %s): %s", ast.KindOf(e.Node), ast.KindOf(e.Parent), e.Reason)
	}
	return fmt.Sprintf("inconsistent tree: %s: %s", ast.KindOf(e.Node), e.Reason)
}

// Print renders the whole tree.
func Print(tree *ast.Tree, opts Options) (string, error) {
	return PrintNode(tree, tree.Root, opts)
}

// PrintNode renders n, which must be registered in tree.
func PrintNode(tree *ast.Tree, n ast.Node, opts Options) (string, error) {
	buf := NewBuffer(opts.Indent)
	if err := Fprint(buf, tree, n, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint renders n into buf. On error the buffer holds partial output and
// must be discarded.
func Fprint(buf *Buffer, tree *ast.Tree, n ast.Node, opts Options) (err error) {
	p := &printer{
		tree:   tree,
		buf:    buf,
		opts:   opts,
		log:    opts.Logger,
		sorted: map[ast.NodeID][]ast.Node{},
	}
	if p.log == nil {
		p.log = slog.Default()
	}

	start := buf.Depth()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cerr, ok := r.(*ConsistencyError)
		if !ok {
			panic(r)
		}
		err = errors.WithStack(cerr)
	}()

	p.node(n)

	if buf.Depth() != start {
		return errors.WithStack(&ConsistencyError{
			Node:   n,
			Reason: fmt.Sprintf("indentation unbalanced: depth %d after print, want %d", buf.Depth(), start),
		})
	}
	return nil
}

type printer struct {
	tree *ast.Tree
	buf  *Buffer
	opts Options
	log  *slog.Logger

	// children sorted by position, per parent
	sorted map[ast.NodeID][]ast.Node
}

func (p *printer) fail(n, parent ast.Node, format string, args ...any) {
	panic(&ConsistencyError{
		Node:   n,
		Parent: parent,
		Reason: fmt.Sprintf(format, args...),
	})
}

func (p *printer) write(s string) {
	p.buf.Write(s)
}

func (p *printer) writeLine(s string) {
	p.buf.WriteLine(s)
}

func (p *printer) newline() {
	p.buf.Newline()
}

func (p *printer) indent() {
	p.buf.Indent()
}

func (p *printer) unindent() {
	p.buf.Unindent()
}

func (p *printer) indented(fn func()) {
	p.buf.Indented(fn)
}
