package javaparse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vito/jfmt/pkg/ast"
)

func (l *lowerer) expr(n *sitter.Node) ast.Expression {
	switch n.Type() {
	case "identifier":
		return at(l, n, &ast.NameExpr{Name: l.text(n)})
	case "this":
		return at(l, n, &ast.ThisExpr{})
	case "super":
		return at(l, n, &ast.SuperExpr{})
	case "parenthesized_expression":
		return at(l, n, &ast.EnclosedExpr{Inner: l.expr(named(n)[0])})

	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		text := l.text(n)
		if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
			return at(l, n, &ast.LongLiteralExpr{Value: text})
		}
		return at(l, n, &ast.IntegerLiteralExpr{Value: text})
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		return at(l, n, &ast.DoubleLiteralExpr{Value: l.text(n)})
	case "character_literal":
		return at(l, n, &ast.CharLiteralExpr{Value: unquote(l.text(n), "'")})
	case "string_literal":
		text := l.text(n)
		if strings.HasPrefix(text, `"""`) {
			l.unsupported(n, "text block")
		}
		return at(l, n, &ast.StringLiteralExpr{Value: unquote(text, `"`)})
	case "text_block":
		l.unsupported(n, "text block")
	case "true", "false":
		return at(l, n, &ast.BooleanLiteralExpr{Value: n.Type() == "true"})
	case "null_literal":
		return at(l, n, &ast.NullLiteralExpr{})

	case "assignment_expression":
		op, ok := ast.ParseAssignOp(l.text(field(n, "operator")))
		if !ok {
			l.unexpected(field(n, "operator"), "assignment")
		}
		return at(l, n, &ast.AssignExpr{
			Target: l.expr(field(n, "left")),
			Op:     op,
			Value:  l.initializer(field(n, "right")),
		})
	case "binary_expression":
		op, ok := ast.ParseBinaryOp(l.text(field(n, "operator")))
		if !ok {
			l.unexpected(field(n, "operator"), "binary expression")
		}
		return at(l, n, &ast.BinaryExpr{
			Left:  l.expr(field(n, "left")),
			Op:    op,
			Right: l.expr(field(n, "right")),
		})
	case "unary_expression":
		op, ok := ast.ParseUnaryOp(l.text(field(n, "operator")), false)
		if !ok {
			l.unexpected(field(n, "operator"), "unary expression")
		}
		return at(l, n, &ast.UnaryExpr{Op: op, Expr: l.expr(field(n, "operand"))})
	case "update_expression":
		return l.updateExpr(n)
	case "ternary_expression":
		return at(l, n, &ast.ConditionalExpr{
			Condition: l.expr(field(n, "condition")),
			Then:      l.expr(field(n, "consequence")),
			Else:      l.expr(field(n, "alternative")),
		})
	case "instanceof_expression":
		if field(n, "name") != nil || field(n, "pattern") != nil || hasToken(n, "final") {
			l.unsupported(n, "instanceof pattern")
		}
		return at(l, n, &ast.InstanceOfExpr{
			Expr: l.expr(field(n, "left")),
			Type: l.typ(field(n, "right")),
		})
	case "cast_expression":
		return l.castExpr(n)
	case "lambda_expression":
		return l.lambdaExpr(n)

	case "field_access":
		return l.fieldAccess(n)
	case "array_access":
		return at(l, n, &ast.ArrayAccessExpr{
			Name:  l.expr(field(n, "array")),
			Index: l.expr(field(n, "index")),
		})
	case "method_invocation":
		return l.methodInvocation(n)
	case "object_creation_expression":
		return l.objectCreation(n)
	case "array_creation_expression":
		return l.arrayCreation(n)
	case "array_initializer":
		return l.arrayInitializer(n)
	case "class_literal":
		return at(l, n, &ast.ClassExpr{Type: l.typ(named(n)[0])})
	case "method_reference":
		return l.methodReference(n)

	case "switch_expression":
		l.unsupported(n, "switch expression")
	case "template_expression":
		l.unsupported(n, "string template")
	}
	l.unexpected(n, "expression position")
	return nil
}

func unquote(s, q string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, q), q)
}

func (l *lowerer) updateExpr(n *sitter.Node) *ast.UnaryExpr {
	kids := children(n)
	postfix := kids[0].IsNamed()
	operand, op := kids[0], kids[1]
	if !postfix {
		op, operand = kids[0], kids[1]
	}
	uop, ok := ast.ParseUnaryOp(op.Type(), postfix)
	if !ok {
		l.unexpected(op, "update expression")
	}
	return at(l, n, &ast.UnaryExpr{Op: uop, Expr: l.expr(operand)})
}

// castExpr lowers a cast. Several target types form an intersection.
func (l *lowerer) castExpr(n *sitter.Node) *ast.CastExpr {
	var types []ast.Type
	var typeNodes []*sitter.Node
	closed := false
	for _, c := range children(n) {
		switch {
		case c.Type() == ")":
			closed = true
		case !closed && c.IsNamed():
			types = append(types, l.typ(c))
			typeNodes = append(typeNodes, c)
		}
	}
	cast := at(l, n, &ast.CastExpr{Expr: l.expr(field(n, "value"))})
	if len(types) == 1 {
		cast.Type = types[0]
		return cast
	}
	inter := &ast.IntersectionType{Elements: types}
	inter.Range = ast.Range{
		Begin: l.rangeOf(typeNodes[0]).Begin,
		End:   l.rangeOf(typeNodes[len(typeNodes)-1]).End,
	}
	cast.Type = inter
	return cast
}

func (l *lowerer) lambdaExpr(n *sitter.Node) *ast.LambdaExpr {
	lam := at(l, n, &ast.LambdaExpr{})

	params := field(n, "parameters")
	switch params.Type() {
	case "identifier":
		lam.Params = []*ast.Parameter{l.implicitParam(params)}
	case "inferred_parameters":
		lam.ParametersEnclosed = true
		for _, c := range named(params) {
			lam.Params = append(lam.Params, l.implicitParam(c))
		}
	case "formal_parameters":
		lam.ParametersEnclosed = true
		lam.Params = l.params(params)
	default:
		l.unexpected(params, "lambda parameters")
	}

	body := field(n, "body")
	if body.Type() == "block" {
		lam.Body = l.block(body)
	} else {
		lam.Body = at(l, body, &ast.ExpressionStmt{Expr: l.expr(body)})
	}
	return lam
}

func (l *lowerer) implicitParam(n *sitter.Node) *ast.Parameter {
	return at(l, n, &ast.Parameter{
		Type: at(l, n, &ast.UnknownType{}),
		Name: l.text(n),
	})
}

// qualifiedSuper reports the super child of n that follows its object,
// as in Outer.super.method().
func qualifiedSuper(n *sitter.Node) *sitter.Node {
	obj := n.ChildByFieldName("object")
	for _, c := range named(n) {
		if c.Type() == "super" && (obj == nil || c.StartByte() != obj.StartByte()) {
			return c
		}
	}
	return nil
}

// scope lowers the object of a field access or method call, folding in a
// qualified super.
func (l *lowerer) scope(n *sitter.Node) ast.Expression {
	obj := field(n, "object")
	if obj == nil {
		return nil
	}
	scope := l.expr(obj)
	if sup := qualifiedSuper(n); sup != nil {
		s := at(l, sup, &ast.SuperExpr{Class: scope})
		s.Range.Begin = scope.Base().Range.Begin
		return s
	}
	return scope
}

func (l *lowerer) fieldAccess(n *sitter.Node) ast.Expression {
	f := field(n, "field")
	if f.Type() == "this" {
		return at(l, n, &ast.ThisExpr{Class: l.expr(field(n, "object"))})
	}
	return at(l, n, &ast.FieldAccessExpr{
		Scope: l.scope(n),
		Field: l.text(f),
	})
}

func (l *lowerer) methodInvocation(n *sitter.Node) *ast.MethodCallExpr {
	return at(l, n, &ast.MethodCallExpr{
		Scope:    l.scope(n),
		TypeArgs: l.typeArgs(field(n, "type_arguments")),
		Name:     l.text(field(n, "name")),
		Args:     l.arguments(field(n, "arguments")),
	})
}

func (l *lowerer) arguments(n *sitter.Node) []ast.Expression {
	out := []ast.Expression{}
	for _, c := range named(n) {
		out = append(out, l.expr(c))
	}
	return out
}

func (l *lowerer) objectCreation(n *sitter.Node) *ast.ObjectCreationExpr {
	o := at(l, n, &ast.ObjectCreationExpr{
		TypeArgs: l.typeArgs(field(n, "type_arguments")),
		Args:     l.arguments(field(n, "arguments")),
	})

	var anns []ast.AnnotationExpr
	afterNew := false
	for _, c := range children(n) {
		switch {
		case c.Type() == "new":
			afterNew = true
		case !afterNew && c.IsNamed():
			// outer.new Inner()
			o.Scope = l.expr(c)
		case isAnnotationKind(c.Type()):
			anns = append(anns, l.annotation(c))
		case c.Type() == "class_body":
			o.AnonymousBody = l.members(c)
		}
	}

	o.Type = l.classType(field(n, "type"))
	o.Type.Annotations = append(anns, o.Type.Annotations...)
	return o
}

func (l *lowerer) arrayCreation(n *sitter.Node) *ast.ArrayCreationExpr {
	a := at(l, n, &ast.ArrayCreationExpr{ElemType: l.typ(field(n, "type"))})

	// annotations between new and the element type
	var anns []ast.AnnotationExpr
	for _, c := range named(n) {
		switch c.Type() {
		case "marker_annotation", "annotation":
			anns = append(anns, l.annotation(c))
		case "dimensions_expr":
			level := at(l, c, &ast.ArrayCreationLevel{})
			for _, k := range named(c) {
				if isAnnotationKind(k.Type()) {
					level.Annotations = append(level.Annotations, l.annotation(k))
					continue
				}
				level.Dimension = l.expr(k)
			}
			a.Levels = append(a.Levels, level)
		case "dimensions":
			for _, levelAnns := range l.bracketAnnotations(c) {
				a.Levels = append(a.Levels, at(l, c, &ast.ArrayCreationLevel{Annotations: levelAnns}))
			}
		case "array_initializer":
			a.Init = l.arrayInitializer(c)
		}
	}
	annotate(a.ElemType, anns)
	return a
}

func (l *lowerer) arrayInitializer(n *sitter.Node) *ast.ArrayInitializerExpr {
	a := at(l, n, &ast.ArrayInitializerExpr{Values: []ast.Expression{}})
	for _, c := range named(n) {
		a.Values = append(a.Values, l.initializer(c))
	}
	return a
}

func (l *lowerer) methodReference(n *sitter.Node) *ast.MethodReferenceExpr {
	m := at(l, n, &ast.MethodReferenceExpr{})
	pastColons := false
	for _, c := range children(n) {
		switch {
		case c.Type() == "::":
			pastColons = true
		case !pastColons && m.Scope == nil:
			m.Scope = l.referenceScope(c)
		case c.Type() == "type_arguments":
			m.TypeArgs = l.typeArgs(c)
		case pastColons:
			m.Identifier = l.text(c)
		}
	}
	return m
}

// referenceScope lowers the part of a method reference before ::, which
// may be an expression or a type.
func (l *lowerer) referenceScope(n *sitter.Node) ast.Expression {
	switch n.Type() {
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type", "annotated_type":
		return at(l, n, &ast.TypeExpr{Type: l.typ(n)})
	}
	return l.expr(n)
}

func (l *lowerer) annotation(n *sitter.Node) ast.AnnotationExpr {
	name := l.name(field(n, "name"))
	if n.Type() == "marker_annotation" {
		return at(l, n, &ast.MarkerAnnotationExpr{Name: name})
	}

	args := named(field(n, "arguments"))
	if len(args) == 1 && args[0].Type() != "element_value_pair" {
		return at(l, n, &ast.SingleMemberAnnotationExpr{
			Name:  name,
			Value: l.elementValue(args[0]),
		})
	}

	a := at(l, n, &ast.NormalAnnotationExpr{Name: name})
	for _, pair := range args {
		a.Pairs = append(a.Pairs, at(l, pair, &ast.MemberValuePair{
			Name:  l.text(field(pair, "key")),
			Value: l.elementValue(field(pair, "value")),
		}))
	}
	return a
}

func (l *lowerer) elementValue(n *sitter.Node) ast.Expression {
	switch n.Type() {
	case "marker_annotation", "annotation":
		return l.annotation(n)
	case "element_value_array_initializer":
		a := at(l, n, &ast.ArrayInitializerExpr{Values: []ast.Expression{}})
		for _, c := range named(n) {
			a.Values = append(a.Values, l.elementValue(c))
		}
		return a
	}
	return l.expr(n)
}
