package printer

import (
	"sort"
	"strings"

	"github.com/vito/jfmt/pkg/ast"
)

var lineCommentReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// comment prints c followed by a line break.
func (p *printer) comment(c ast.Comment) {
	if c == nil || !p.opts.EmitComments {
		return
	}
	switch c := c.(type) {
	case *ast.LineComment:
		p.write("//")
		p.writeLine(lineCommentReplacer.Replace(c.Content))
	case *ast.BlockComment:
		p.write("/*")
		p.write(c.Content)
		p.writeLine("*/")
	case *ast.JavadocComment:
		p.write("/**")
		p.write(c.Content)
		p.writeLine("*/")
	default:
		panic(&ast.UnreachableVariantError{Table: "comment", Kind: ast.KindOf(c)})
	}
}

// sortedChildren returns n's children ordered by where they begin. Equal
// positions keep their declaration order.
func (p *printer) sortedChildren(n ast.Node) []ast.Node {
	id := n.Base().ID
	if kids, ok := p.sorted[id]; ok && id != 0 {
		return kids
	}
	kids := append([]ast.Node(nil), n.Children()...)
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].Base().Range.Begin.Before(kids[j].Base().Range.Begin)
	})
	if id != 0 {
		p.sorted[id] = kids
	}
	return kids
}

// orphansBefore prints the comments sitting between n and the previous
// non-comment child of n's parent.
func (p *printer) orphansBefore(n ast.Node) {
	if !p.tree.Contains(n) {
		p.fail(n, nil, "node is not registered in the tree")
	}
	parent, ok := p.tree.Parent(n)
	if !ok {
		return
	}

	siblings := p.sortedChildren(parent)
	pos := -1
	for i, sib := range siblings {
		if sib == n {
			pos = i
			break
		}
	}
	if pos == -1 {
		p.fail(n, parent, "node is not among its parent's children")
	}

	prev := pos - 1
	for prev >= 0 && ast.IsComment(siblings[prev]) {
		prev--
	}
	if pos-prev <= 1 {
		return
	}

	p.log.Debug("printing orphan comments",
		"before", ast.KindOf(n),
		"line", n.Base().Range.Begin.Line,
		"count", pos-prev-1)

	for _, sib := range siblings[prev+1 : pos] {
		c, ok := sib.(ast.Comment)
		if !ok {
			p.fail(sib, parent, "expected a comment before %s", ast.KindOf(n))
		}
		p.comment(c)
	}
}

// orphansEnding prints the run of comments that come after n's last
// non-comment child.
func (p *printer) orphansEnding(n ast.Node) {
	kids := p.sortedChildren(n)
	if len(kids) == 0 {
		return
	}

	trailing := 0
	for trailing < len(kids) && ast.IsComment(kids[len(kids)-1-trailing]) {
		trailing++
	}
	if trailing == 0 {
		return
	}

	p.log.Debug("printing trailing orphan comments",
		"in", ast.KindOf(n),
		"line", n.Base().Range.Begin.Line,
		"count", trailing)

	for _, kid := range kids[len(kids)-trailing:] {
		p.comment(kid.(ast.Comment))
	}
}
