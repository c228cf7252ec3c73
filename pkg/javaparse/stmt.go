package javaparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vito/jfmt/pkg/ast"
)

// block lowers a block or constructor_body.
func (l *lowerer) block(n *sitter.Node) *ast.BlockStmt {
	b := at(l, n, &ast.BlockStmt{Stmts: []ast.Statement{}})
	for _, c := range children(n) {
		switch c.Type() {
		case "{", "}":
		case "explicit_constructor_invocation":
			b.Stmts = append(b.Stmts, l.explicitConstructorInvocation(c))
		default:
			b.Stmts = append(b.Stmts, l.stmt(c))
		}
	}
	return b
}

func (l *lowerer) stmt(n *sitter.Node) ast.Statement {
	switch n.Type() {
	case "block":
		return l.block(n)
	case ";":
		return at(l, n, &ast.EmptyStmt{})
	case "expression_statement":
		return at(l, n, &ast.ExpressionStmt{Expr: l.expr(named(n)[0])})
	case "local_variable_declaration":
		return at(l, n, &ast.ExpressionStmt{Expr: l.localVar(n)})
	case "labeled_statement":
		kids := named(n)
		return at(l, n, &ast.LabeledStmt{
			Label: l.text(kids[0]),
			Stmt:  l.stmt(kids[1]),
		})
	case "if_statement":
		s := at(l, n, &ast.IfStmt{
			Condition: l.condition(field(n, "condition")),
			Then:      l.stmt(field(n, "consequence")),
		})
		if alt := field(n, "alternative"); alt != nil {
			s.Else = l.stmt(alt)
		}
		return s
	case "while_statement":
		return at(l, n, &ast.WhileStmt{
			Condition: l.condition(field(n, "condition")),
			Body:      l.stmt(field(n, "body")),
		})
	case "do_statement":
		return at(l, n, &ast.DoStmt{
			Body:      l.stmt(field(n, "body")),
			Condition: l.condition(field(n, "condition")),
		})
	case "for_statement":
		return l.forStmt(n)
	case "enhanced_for_statement":
		return l.foreachStmt(n)
	case "assert_statement":
		kids := named(n)
		s := at(l, n, &ast.AssertStmt{Check: l.expr(kids[0])})
		if len(kids) > 1 {
			s.Message = l.expr(kids[1])
		}
		return s
	case "break_statement":
		return at(l, n, &ast.BreakStmt{Label: l.label(n)})
	case "continue_statement":
		return at(l, n, &ast.ContinueStmt{Label: l.label(n)})
	case "return_statement":
		s := at(l, n, &ast.ReturnStmt{})
		if kids := named(n); len(kids) > 0 {
			s.Expr = l.expr(kids[0])
		}
		return s
	case "throw_statement":
		return at(l, n, &ast.ThrowStmt{Expr: l.expr(named(n)[0])})
	case "synchronized_statement":
		return at(l, n, &ast.SynchronizedStmt{
			Expr: l.condition(named(n)[0]),
			Body: l.block(field(n, "body")),
		})
	case "switch_expression", "switch_statement":
		return l.switchStmt(n)
	case "try_statement", "try_with_resources_statement":
		return l.tryStmt(n)
	case "class_declaration", "interface_declaration":
		return at(l, n, &ast.LocalClassDeclStmt{Class: l.classOrInterfaceDecl(n)})
	case "yield_statement":
		l.unsupported(n, "yield statement")
	case "enum_declaration":
		l.unsupported(n, "local enum")
	case "record_declaration":
		l.unsupported(n, "record declaration")
	}
	l.unexpected(n, "statement position")
	return nil
}

// condition unwraps the parentheses the grammar keeps around statement
// conditions.
func (l *lowerer) condition(n *sitter.Node) ast.Expression {
	if n.Type() == "parenthesized_expression" {
		return l.expr(named(n)[0])
	}
	return l.expr(n)
}

func (l *lowerer) label(n *sitter.Node) string {
	if kids := named(n); len(kids) > 0 {
		return l.text(kids[0])
	}
	return ""
}

func (l *lowerer) localVar(n *sitter.Node) *ast.VariableDeclarationExpr {
	v := at(l, n, &ast.VariableDeclarationExpr{Type: l.typ(field(n, "type"))})
	v.Annotations, v.Modifiers = l.modifiers(n)
	v.Vars = l.declarators(n)
	return v
}

// forStmt walks the header by its separators, since the init, condition
// and update parts share no single field layout.
func (l *lowerer) forStmt(n *sitter.Node) *ast.ForStmt {
	s := at(l, n, &ast.ForStmt{Body: l.stmt(field(n, "body"))})
	const (
		inInit = iota
		inCompare
		inUpdate
		done
	)
	part := inInit
	for _, c := range children(n) {
		if part == done {
			break
		}
		switch c.Type() {
		case "for", "(", ",":
			continue
		case ";":
			part++
			continue
		case ")":
			part = done
			continue
		case "local_variable_declaration":
			// includes its own semicolon
			s.Init = append(s.Init, l.localVar(c))
			part = inCompare
			continue
		}
		switch part {
		case inInit:
			s.Init = append(s.Init, l.expr(c))
		case inCompare:
			s.Compare = l.expr(c)
		case inUpdate:
			s.Update = append(s.Update, l.expr(c))
		}
	}
	return s
}

func (l *lowerer) foreachStmt(n *sitter.Node) *ast.ForeachStmt {
	v := &ast.VariableDeclarationExpr{Type: l.typ(field(n, "type"))}
	v.Annotations, v.Modifiers = l.modifiers(n)

	name := field(n, "name")
	decl := at(l, name, &ast.VariableDeclarator{
		Name:     l.text(name),
		Brackets: l.brackets(field(n, "dimensions")),
	})
	v.Vars = []*ast.VariableDeclarator{decl}

	// the variable spans from its first modifier or its type to its name
	begin := field(n, "type")
	for _, c := range named(n) {
		if c.Type() == "modifiers" {
			begin = c
			break
		}
	}
	v.Range = ast.Range{
		Begin: l.rangeOf(begin).Begin,
		End:   l.rangeOf(name).End,
	}

	return at(l, n, &ast.ForeachStmt{
		Var:      v,
		Iterable: l.expr(field(n, "value")),
		Body:     l.stmt(field(n, "body")),
	})
}

func (l *lowerer) switchStmt(n *sitter.Node) *ast.SwitchStmt {
	s := at(l, n, &ast.SwitchStmt{Selector: l.condition(field(n, "condition"))})
	body := field(n, "body")
	for _, group := range named(body) {
		switch group.Type() {
		case "switch_block_statement_group":
			s.Entries = append(s.Entries, l.switchGroup(group)...)
		case "switch_rule":
			l.unsupported(group, "switch rule")
		default:
			l.unexpected(group, "switch block")
		}
	}
	l.widenEntries(body, s.Entries)
	return s
}

// widenEntries stretches each entry over the comments trailing it, so
// they print inside the entry. A trailing comment starts on the line the
// entry ends on or is indented past the entry's label.
func (l *lowerer) widenEntries(body *sitter.Node, entries []*ast.SwitchEntryStmt) {
	var comments []ast.Range
	for i := 0; i < int(body.ChildCount()); i++ {
		c := body.Child(i)
		switch {
		case isCommentKind(c.Type()):
			comments = append(comments, l.rangeOf(c))
		case c.Type() == "switch_block_statement_group":
			for j := 0; j < int(c.ChildCount()); j++ {
				if gc := c.Child(j); isCommentKind(gc.Type()) {
					comments = append(comments, l.rangeOf(gc))
				}
			}
		}
	}

	limit := l.rangeOf(body).End.Offset
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		for _, r := range comments {
			if r.Begin.Offset < e.Range.End.Offset {
				continue
			}
			if r.Begin.Offset >= limit {
				break
			}
			if r.Begin.Line != e.Range.End.Line && r.Begin.Column <= e.Range.Begin.Column {
				break
			}
			e.Range.End = r.End
		}
		limit = e.Range.Begin.Offset
	}
}

// switchGroup lowers a run of labels sharing statements into one entry
// per label. Only the last entry carries the statements.
func (l *lowerer) switchGroup(n *sitter.Node) []*ast.SwitchEntryStmt {
	var entries []*ast.SwitchEntryStmt
	for _, c := range children(n) {
		switch {
		case c.Type() == "switch_label":
			entry := at(l, c, &ast.SwitchEntryStmt{Stmts: []ast.Statement{}})
			labels := named(c)
			switch {
			case len(labels) > 1:
				l.unsupported(c, "multiple case labels")
			case len(labels) == 1:
				entry.Label = l.caseLabel(labels[0])
			}
			entries = append(entries, entry)
		case c.IsNamed():
			last := entries[len(entries)-1]
			last.Stmts = append(last.Stmts, l.stmt(c))
			last.Range.End = l.rangeOf(c).End
		}
	}
	return entries
}

func (l *lowerer) caseLabel(n *sitter.Node) ast.Expression {
	switch n.Type() {
	case "pattern", "type_pattern", "record_pattern", "guard":
		l.unsupported(n, "case pattern")
	}
	return l.expr(n)
}

func (l *lowerer) tryStmt(n *sitter.Node) *ast.TryStmt {
	s := at(l, n, &ast.TryStmt{Try: l.block(field(n, "body"))})
	if res := field(n, "resources"); res != nil {
		for _, r := range named(res) {
			s.Resources = append(s.Resources, l.resource(r))
		}
	}
	for _, c := range named(n) {
		switch c.Type() {
		case "catch_clause":
			s.Catches = append(s.Catches, l.catchClause(c))
		case "finally_clause":
			s.Finally = l.block(named(c)[0])
		}
	}
	return s
}

func (l *lowerer) resource(n *sitter.Node) *ast.VariableDeclarationExpr {
	typ := field(n, "type")
	if typ == nil {
		l.unsupported(n, "resource without declaration")
	}
	v := at(l, n, &ast.VariableDeclarationExpr{Type: l.typ(typ)})
	v.Annotations, v.Modifiers = l.modifiers(n)

	name := field(n, "name")
	value := field(n, "value")
	d := at(l, n, &ast.VariableDeclarator{
		Name:     l.text(name),
		Brackets: l.brackets(field(n, "dimensions")),
		Init:     l.expr(value),
	})
	d.Range.Begin = l.rangeOf(name).Begin
	v.Vars = []*ast.VariableDeclarator{d}
	return v
}

func (l *lowerer) catchClause(n *sitter.Node) *ast.CatchClause {
	c := at(l, n, &ast.CatchClause{Body: l.block(field(n, "body"))})
	for _, k := range named(n) {
		if k.Type() == "catch_formal_parameter" {
			c.Param = l.catchParam(k)
		}
	}
	return c
}

func (l *lowerer) catchParam(n *sitter.Node) *ast.Parameter {
	p := at(l, n, &ast.Parameter{
		Name:     l.text(field(n, "name")),
		Brackets: l.brackets(field(n, "dimensions")),
	})
	p.Annotations, p.Modifiers = l.modifiers(n)
	for _, k := range named(n) {
		if k.Type() != "catch_type" {
			continue
		}
		var types []ast.Type
		for _, t := range named(k) {
			types = append(types, l.typ(t))
		}
		if len(types) == 1 {
			p.Type = types[0]
		} else {
			p.Type = at(l, k, &ast.UnionType{Elements: types})
		}
	}
	return p
}

func (l *lowerer) explicitConstructorInvocation(n *sitter.Node) *ast.ExplicitConstructorInvocationStmt {
	s := at(l, n, &ast.ExplicitConstructorInvocationStmt{
		IsThis:   field(n, "constructor").Type() == "this",
		TypeArgs: l.typeArgs(field(n, "type_arguments")),
		Args:     l.arguments(field(n, "arguments")),
	})
	if obj := field(n, "object"); obj != nil {
		s.Expr = l.expr(obj)
	}
	return s
}
