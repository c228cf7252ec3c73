package javaparse

import (
	"log/slog"
	"sort"

	"github.com/vito/jfmt/pkg/ast"
)

// attachComments distributes comments over the tree rooted at n. A
// comment inside a child's range is handed down to that child. Otherwise
// it becomes the comment of the following child when nothing else sits
// between them, at most one line separates them, and the comment does not
// trail code on its own line. Everything left is an orphan of n.
func attachComments(n ast.Node, comments []ast.Comment, log *slog.Logger) {
	if len(comments) == 0 {
		return
	}

	kids := n.Children()
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].Base().Range.Begin.Offset < kids[j].Base().Range.Begin.Offset
	})

	inner := make(map[int][]ast.Comment)
	var rest []ast.Comment
	for _, c := range comments {
		if i := containing(kids, c.Base().Range); i >= 0 {
			inner[i] = append(inner[i], c)
			continue
		}
		rest = append(rest, c)
	}
	for i, cs := range inner {
		attachComments(kids[i], cs, log)
	}

	orphaned := make([]bool, len(rest))
	// walk backwards so a comment only claims a child when no later
	// comment stands between them
	for i := len(rest) - 1; i >= 0; i-- {
		c := rest[i]
		r := c.Base().Range

		next := following(kids, r)
		if next == nil || (i+1 < len(rest) && rest[i+1].Base().Range.Begin.Offset < next.Base().Range.Begin.Offset) {
			orphaned[i] = true
			continue
		}
		if next.Base().Comment != nil || next.Base().Range.Begin.Line-r.End.Line > 1 {
			orphaned[i] = true
			continue
		}
		if prev := preceding(kids, r); prev != nil && prev.Base().Range.End.Line == r.Begin.Line {
			orphaned[i] = true
			continue
		}

		next.Base().Comment = c
		log.Debug("attached comment",
			"line", r.Begin.Line,
			"to", ast.KindOf(next),
			"at", next.Base().Range.Begin.Line)
	}

	for i, c := range rest {
		if !orphaned[i] {
			continue
		}
		n.Base().AddOrphan(c)
		log.Debug("orphaned comment",
			"line", c.Base().Range.Begin.Line,
			"in", ast.KindOf(n))
	}
}

func containing(kids []ast.Node, r ast.Range) int {
	for i, k := range kids {
		if k.Base().Range.Contains(r) {
			return i
		}
	}
	return -1
}

func following(kids []ast.Node, r ast.Range) ast.Node {
	for _, k := range kids {
		if k.Base().Range.Begin.Offset >= r.End.Offset {
			return k
		}
	}
	return nil
}

func preceding(kids []ast.Node, r ast.Range) ast.Node {
	var found ast.Node
	for _, k := range kids {
		if k.Base().Range.End.Offset <= r.Begin.Offset {
			found = k
		}
	}
	return found
}
