package printer

import (
	"github.com/vito/jfmt/pkg/ast"
)

// node prints any node. Orphan comments preceding it among its parent's
// children come first, then its attached comment, then the node itself.
// Nodes that end in a delimiter (a closing brace, a semicolon) print
// their trailing orphans before it; every other node has them printed
// here afterwards.
func (p *printer) node(n ast.Node) {
	if c, ok := n.(ast.Comment); ok {
		p.comment(c)
		return
	}

	p.orphansBefore(n)
	p.comment(n.Base().Comment)

	switch n := n.(type) {
	// declarations
	case *ast.CompilationUnit:
		p.compilationUnit(n)
		return
	case *ast.PackageDecl:
		p.packageDecl(n)
	case *ast.ImportDecl:
		p.importDecl(n)
	case *ast.ClassOrInterfaceDecl:
		p.classOrInterfaceDecl(n)
		return
	case *ast.EnumDecl:
		p.enumDecl(n)
		return
	case *ast.EnumConstantDecl:
		p.enumConstantDecl(n)
		return
	case *ast.AnnotationDecl:
		p.annotationDecl(n)
		return
	case *ast.AnnotationMemberDecl:
		p.annotationMemberDecl(n)
		return
	case *ast.FieldDecl:
		p.fieldDecl(n)
		return
	case *ast.VariableDeclarator:
		p.variableDeclarator(n)
	case *ast.ConstructorDecl:
		p.constructorDecl(n)
	case *ast.MethodDecl:
		p.methodDecl(n)
		return
	case *ast.Parameter:
		p.parameter(n)
	case *ast.InitializerDecl:
		p.initializerDecl(n)
	case *ast.EmptyMemberDecl, *ast.EmptyTypeDecl:
		p.write(";")

	// types
	case *ast.ClassOrInterfaceType:
		p.classOrInterfaceType(n)
	case *ast.PrimitiveType:
		p.annotations(n.Annotations, false)
		p.write(n.Kind.Keyword())
	case *ast.ArrayType:
		p.arrayType(n)
	case *ast.ArrayBracketPair:
		p.annotations(n.Annotations, true)
		p.write("[]")
	case *ast.VoidType:
		p.annotations(n.Annotations, false)
		p.write("void")
	case *ast.WildcardType:
		p.wildcardType(n)
	case *ast.UnknownType:
	case *ast.IntersectionType:
		p.annotations(n.Annotations, false)
		printList(p, n.Elements, " & ")
	case *ast.UnionType:
		p.annotations(n.Annotations, false)
		printList(p, n.Elements, " | ")
	case *ast.TypeParameter:
		p.typeParameter(n)

	// expressions
	case *ast.NameExpr:
		p.nameExpr(n)
	case *ast.ArrayAccessExpr:
		p.node(n.Name)
		p.write("[")
		p.node(n.Index)
		p.write("]")
	case *ast.ArrayCreationLevel:
		p.annotations(n.Annotations, true)
		p.write("[")
		if n.Dimension != nil {
			p.node(n.Dimension)
		}
		p.write("]")
	case *ast.ArrayCreationExpr:
		p.arrayCreationExpr(n)
	case *ast.ArrayInitializerExpr:
		p.arrayInitializerExpr(n)
	case *ast.AssignExpr:
		p.node(n.Target)
		p.write(" " + n.Op.Symbol() + " ")
		p.node(n.Value)
	case *ast.BinaryExpr:
		p.node(n.Left)
		p.write(" " + n.Op.Symbol() + " ")
		p.node(n.Right)
	case *ast.UnaryExpr:
		p.unaryExpr(n)
	case *ast.CastExpr:
		p.write("(")
		p.node(n.Type)
		p.write(") ")
		p.node(n.Expr)
	case *ast.ClassExpr:
		p.node(n.Type)
		p.write(".class")
	case *ast.ConditionalExpr:
		p.node(n.Condition)
		p.write(" ? ")
		p.node(n.Then)
		p.write(" : ")
		p.node(n.Else)
	case *ast.EnclosedExpr:
		p.write("(")
		if n.Inner != nil {
			p.node(n.Inner)
		}
		p.write(")")
	case *ast.FieldAccessExpr:
		p.node(n.Scope)
		p.write(".")
		p.write(n.Field)
	case *ast.InstanceOfExpr:
		p.node(n.Expr)
		p.write(" instanceof ")
		p.node(n.Type)
	case *ast.IntegerLiteralExpr:
		p.write(n.Value)
	case *ast.LongLiteralExpr:
		p.write(n.Value)
	case *ast.DoubleLiteralExpr:
		p.write(n.Value)
	case *ast.CharLiteralExpr:
		p.write("'" + n.Value + "'")
	case *ast.StringLiteralExpr:
		p.write(`"` + n.Value + `"`)
	case *ast.BooleanLiteralExpr:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *ast.NullLiteralExpr:
		p.write("null")
	case *ast.MethodCallExpr:
		p.methodCallExpr(n)
	case *ast.ObjectCreationExpr:
		p.objectCreationExpr(n)
		return
	case *ast.ThisExpr:
		if n.Class != nil {
			p.node(n.Class)
			p.write(".")
		}
		p.write("this")
	case *ast.SuperExpr:
		if n.Class != nil {
			p.node(n.Class)
			p.write(".")
		}
		p.write("super")
	case *ast.VariableDeclarationExpr:
		p.annotations(n.Annotations, false)
		p.modifiers(n.Modifiers)
		p.node(n.Type)
		p.write(" ")
		printList(p, n.Vars, ", ")
	case *ast.LambdaExpr:
		p.lambdaExpr(n)
	case *ast.MethodReferenceExpr:
		p.node(n.Scope)
		p.write("::")
		p.typeArgs(n.TypeArgs)
		p.write(n.Identifier)
	case *ast.TypeExpr:
		p.node(n.Type)
	case *ast.MarkerAnnotationExpr:
		p.write("@")
		p.node(n.Name)
	case *ast.SingleMemberAnnotationExpr:
		p.write("@")
		p.node(n.Name)
		p.write("(")
		p.node(n.Value)
		p.write(")")
	case *ast.NormalAnnotationExpr:
		p.write("@")
		p.node(n.Name)
		p.write("(")
		printList(p, n.Pairs, ", ")
		p.write(")")
	case *ast.MemberValuePair:
		p.write(n.Name)
		p.write(" = ")
		p.node(n.Value)

	// statements
	case *ast.BlockStmt:
		p.blockStmt(n)
		return
	case *ast.ExpressionStmt:
		p.node(n.Expr)
		p.closing(n, ";")
		return
	case *ast.AssertStmt:
		p.write("assert ")
		p.node(n.Check)
		if n.Message != nil {
			p.write(" : ")
			p.node(n.Message)
		}
		p.closing(n, ";")
		return
	case *ast.BreakStmt:
		p.jump(n, "break", n.Label)
		return
	case *ast.ContinueStmt:
		p.jump(n, "continue", n.Label)
		return
	case *ast.DoStmt:
		p.write("do ")
		p.node(n.Body)
		p.write(" while (")
		p.node(n.Condition)
		p.closing(n, ");")
		return
	case *ast.EmptyStmt:
		p.write(";")
	case *ast.ExplicitConstructorInvocationStmt:
		p.explicitConstructorInvocation(n)
		return
	case *ast.ForStmt:
		p.forStmt(n)
	case *ast.ForeachStmt:
		p.write("for (")
		p.node(n.Var)
		p.write(" : ")
		p.node(n.Iterable)
		p.write(") ")
		p.node(n.Body)
	case *ast.IfStmt:
		p.ifStmt(n)
	case *ast.LabeledStmt:
		p.write(n.Label)
		p.write(": ")
		p.node(n.Stmt)
	case *ast.LocalClassDeclStmt:
		p.node(n.Class)
	case *ast.ReturnStmt:
		p.write("return")
		if n.Expr != nil {
			p.write(" ")
			p.node(n.Expr)
		}
		p.closing(n, ";")
		return
	case *ast.SwitchStmt:
		p.switchStmt(n)
		return
	case *ast.SwitchEntryStmt:
		p.switchEntry(n)
		return
	case *ast.SynchronizedStmt:
		p.write("synchronized (")
		p.node(n.Expr)
		p.write(") ")
		p.node(n.Body)
	case *ast.ThrowStmt:
		p.write("throw ")
		p.node(n.Expr)
		p.closing(n, ";")
		return
	case *ast.TryStmt:
		p.tryStmt(n)
	case *ast.CatchClause:
		p.write(" catch (")
		p.node(n.Param)
		p.write(") ")
		p.node(n.Body)
	case *ast.WhileStmt:
		p.write("while (")
		p.node(n.Condition)
		p.write(") ")
		p.node(n.Body)

	default:
		panic(&ast.UnreachableVariantError{Table: "node", Kind: ast.KindOf(n)})
	}

	p.orphansEnding(n)
}

// closing prints n's trailing orphans and then the delimiter ending n.
func (p *printer) closing(n ast.Node, delim string) {
	p.orphansEnding(n)
	p.write(delim)
}

func printList[T ast.Node](p *printer, nodes []T, sep string) {
	for i, n := range nodes {
		if i > 0 {
			p.write(sep)
		}
		p.node(n)
	}
}

// memberAnnotations puts each annotation on its own line.
func (p *printer) memberAnnotations(anns []ast.AnnotationExpr) {
	for _, a := range anns {
		p.node(a)
		p.newline()
	}
}

// annotations prints inline annotations, each followed by a space.
func (p *printer) annotations(anns []ast.AnnotationExpr, leadingSpace bool) {
	if len(anns) == 0 {
		return
	}
	if leadingSpace {
		p.write(" ")
	}
	for _, a := range anns {
		p.node(a)
		p.write(" ")
	}
}

func (p *printer) modifiers(mods ast.Modifiers) {
	if mods.Empty() {
		return
	}
	p.write(mods.String() + " ")
}

func (p *printer) typeArgs(args []ast.Type) {
	if len(args) == 0 {
		return
	}
	p.write("<")
	printList(p, args, ", ")
	p.write(">")
}

func (p *printer) typeParams(params []*ast.TypeParameter) {
	if len(params) == 0 {
		return
	}
	p.write("<")
	printList(p, params, ", ")
	p.write(">")
}

func (p *printer) arguments(args []ast.Expression) {
	p.write("(")
	printList(p, args, ", ")
	p.write(")")
}

// members prints body declarations, each preceded by a blank line.
func (p *printer) members(members []ast.BodyDecl) {
	for _, m := range members {
		p.newline()
		p.node(m)
		p.newline()
	}
}
