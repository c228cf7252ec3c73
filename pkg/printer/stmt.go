package printer

import (
	"github.com/vito/jfmt/pkg/ast"
)

func (p *printer) blockStmt(n *ast.BlockStmt) {
	p.writeLine("{")
	p.indented(func() {
		for _, s := range n.Stmts {
			p.node(s)
			p.newline()
		}
		p.orphansEnding(n)
	})
	p.write("}")
}

func (p *printer) jump(n ast.Statement, keyword, label string) {
	p.write(keyword)
	if label != "" {
		p.write(" ")
		p.write(label)
	}
	p.closing(n, ";")
}

func (p *printer) explicitConstructorInvocation(n *ast.ExplicitConstructorInvocationStmt) {
	if n.IsThis {
		p.typeArgs(n.TypeArgs)
		p.write("this")
	} else {
		if n.Expr != nil {
			p.node(n.Expr)
			p.write(".")
		}
		p.typeArgs(n.TypeArgs)
		p.write("super")
	}
	p.arguments(n.Args)
	p.closing(n, ";")
}

func (p *printer) forStmt(n *ast.ForStmt) {
	p.write("for (")
	printList(p, n.Init, ", ")
	p.write("; ")
	if n.Compare != nil {
		p.node(n.Compare)
	}
	p.write("; ")
	printList(p, n.Update, ", ")
	p.write(") ")
	p.node(n.Body)
}

// ifStmt keeps a block arm on the keyword's line; any other arm goes on
// its own line one level deeper. else if and block else stay on the line
// of the preceding arm.
func (p *printer) ifStmt(n *ast.IfStmt) {
	p.write("if (")
	p.node(n.Condition)

	_, thenBlock := n.Then.(*ast.BlockStmt)
	if thenBlock {
		p.write(") ")
		p.node(n.Then)
	} else {
		p.writeLine(")")
		p.indented(func() {
			p.node(n.Then)
		})
	}

	if n.Else == nil {
		return
	}

	if thenBlock {
		p.write(" ")
	} else {
		p.newline()
	}

	_, elseIf := n.Else.(*ast.IfStmt)
	_, elseBlock := n.Else.(*ast.BlockStmt)
	if elseIf || elseBlock {
		p.write("else ")
		p.node(n.Else)
		return
	}
	p.writeLine("else")
	p.indented(func() {
		p.node(n.Else)
	})
}

func (p *printer) switchStmt(n *ast.SwitchStmt) {
	p.write("switch (")
	p.node(n.Selector)
	p.writeLine(") {")
	p.indented(func() {
		for _, e := range n.Entries {
			p.node(e)
		}
		p.orphansEnding(n)
	})
	p.write("}")
}

func (p *printer) switchEntry(n *ast.SwitchEntryStmt) {
	if n.Label != nil {
		p.write("case ")
		p.node(n.Label)
		p.write(":")
	} else {
		p.write("default:")
	}
	p.newline()
	p.indented(func() {
		for _, s := range n.Stmts {
			p.node(s)
			p.newline()
		}
		p.orphansEnding(n)
	})
}

// tryStmt puts the second and later resources on their own lines, one
// level deeper than the first.
func (p *printer) tryStmt(n *ast.TryStmt) {
	p.write("try ")
	if len(n.Resources) > 0 {
		p.write("(")
		for i, r := range n.Resources {
			p.node(r)
			if i < len(n.Resources)-1 {
				p.writeLine(";")
				if i == 0 {
					p.indent()
				}
			}
		}
		if len(n.Resources) > 1 {
			p.unindent()
		}
		p.write(") ")
	}
	p.node(n.Try)
	for _, c := range n.Catches {
		p.node(c)
	}
	if n.Finally != nil {
		p.write(" finally ")
		p.node(n.Finally)
	}
}
