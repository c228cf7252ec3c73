package printer

import (
	"github.com/vito/jfmt/pkg/ast"
)

func (p *printer) nameExpr(n *ast.NameExpr) {
	if n.Qualifier != nil {
		p.node(n.Qualifier)
		p.write(".")
	}
	p.write(n.Name)
}

func (p *printer) arrayCreationExpr(n *ast.ArrayCreationExpr) {
	p.write("new ")
	p.node(n.ElemType)
	for _, level := range n.Levels {
		p.node(level)
	}
	if n.Init != nil {
		p.write(" ")
		p.node(n.Init)
	}
}

func (p *printer) arrayInitializerExpr(n *ast.ArrayInitializerExpr) {
	p.write("{")
	if len(n.Values) > 0 {
		p.write(" ")
		printList(p, n.Values, ", ")
		p.write(" ")
	}
	p.write("}")
}

func (p *printer) unaryExpr(n *ast.UnaryExpr) {
	if !n.Op.Postfix() {
		p.write(n.Op.Symbol())
		// "- -x" must not collapse into "--x".
		if inner, ok := n.Expr.(*ast.UnaryExpr); ok && !inner.Op.Postfix() {
			sign := n.Op.Symbol()[0]
			if (sign == '+' || sign == '-') && inner.Op.Symbol()[0] == sign {
				p.write(" ")
			}
		}
	}
	p.node(n.Expr)
	if n.Op.Postfix() {
		p.write(n.Op.Symbol())
	}
}

func (p *printer) methodCallExpr(n *ast.MethodCallExpr) {
	if n.Scope != nil {
		p.node(n.Scope)
		p.write(".")
	}
	p.typeArgs(n.TypeArgs)
	p.write(n.Name)
	p.arguments(n.Args)
}

func (p *printer) objectCreationExpr(n *ast.ObjectCreationExpr) {
	if n.Scope != nil {
		p.node(n.Scope)
		p.write(".")
	}
	p.write("new ")
	if len(n.TypeArgs) > 0 {
		p.typeArgs(n.TypeArgs)
		p.write(" ")
	}
	p.node(n.Type)
	p.arguments(n.Args)

	if n.AnonymousBody == nil {
		p.orphansEnding(n)
		return
	}

	p.writeLine(" {")
	p.indented(func() {
		p.members(n.AnonymousBody)
		p.orphansEnding(n)
	})
	p.write("}")
}

// lambdaExpr prints an expression body bare, without the statement
// wrapping it.
func (p *printer) lambdaExpr(n *ast.LambdaExpr) {
	if n.ParametersEnclosed {
		p.write("(")
	}
	printList(p, n.Params, ", ")
	if n.ParametersEnclosed {
		p.write(")")
	}
	p.write(" -> ")

	body, ok := n.Body.(*ast.ExpressionStmt)
	if !ok {
		p.node(n.Body)
		return
	}
	p.orphansBefore(body)
	p.comment(body.Comment)
	p.node(body.Expr)
	p.orphansEnding(body)
}
