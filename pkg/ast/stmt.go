package ast

// Statement is any statement node.
type Statement interface {
	Node
	stmtNode()
}

// BlockStmt is { stmts }.
type BlockStmt struct {
	NodeBase
	Stmts []Statement
}

func (s *BlockStmt) Children() []Node {
	return s.withOrphans(appendAll(nil, s.Stmts))
}

// ExpressionStmt is expr;.
type ExpressionStmt struct {
	NodeBase
	Expr Expression
}

func (s *ExpressionStmt) Children() []Node {
	return s.withOrphans([]Node{s.Expr})
}

// AssertStmt is assert check : message;.
type AssertStmt struct {
	NodeBase
	Check   Expression
	Message Expression
}

func (s *AssertStmt) Children() []Node {
	out := []Node{s.Check}
	if s.Message != nil {
		out = append(out, s.Message)
	}
	return s.withOrphans(out)
}

// BreakStmt is break with an optional label.
type BreakStmt struct {
	NodeBase
	Label string
}

func (s *BreakStmt) Children() []Node { return s.withOrphans(nil) }

// ContinueStmt is continue with an optional label.
type ContinueStmt struct {
	NodeBase
	Label string
}

func (s *ContinueStmt) Children() []Node { return s.withOrphans(nil) }

// DoStmt is do body while (cond);.
type DoStmt struct {
	NodeBase
	Body      Statement
	Condition Expression
}

func (s *DoStmt) Children() []Node {
	return s.withOrphans([]Node{s.Body, s.Condition})
}

// EmptyStmt is a lone ;.
type EmptyStmt struct {
	NodeBase
}

func (s *EmptyStmt) Children() []Node { return s.withOrphans(nil) }

// ExplicitConstructorInvocationStmt is this(...) or expr.super(...) as
// the first statement of a constructor.
type ExplicitConstructorInvocationStmt struct {
	NodeBase
	IsThis   bool
	Expr     Expression
	TypeArgs []Type
	Args     []Expression
}

func (s *ExplicitConstructorInvocationStmt) Children() []Node {
	var out []Node
	if s.Expr != nil {
		out = append(out, s.Expr)
	}
	out = appendAll(out, s.TypeArgs)
	out = appendAll(out, s.Args)
	return s.withOrphans(out)
}

// ForStmt is for (init; compare; update) body.
type ForStmt struct {
	NodeBase
	Init    []Expression
	Compare Expression
	Update  []Expression
	Body    Statement
}

func (s *ForStmt) Children() []Node {
	out := appendAll(nil, s.Init)
	if s.Compare != nil {
		out = append(out, s.Compare)
	}
	out = appendAll(out, s.Update)
	out = append(out, s.Body)
	return s.withOrphans(out)
}

// ForeachStmt is for (var : iterable) body.
type ForeachStmt struct {
	NodeBase
	Var      *VariableDeclarationExpr
	Iterable Expression
	Body     Statement
}

func (s *ForeachStmt) Children() []Node {
	return s.withOrphans([]Node{s.Var, s.Iterable, s.Body})
}

// IfStmt is if (cond) then else.
type IfStmt struct {
	NodeBase
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *IfStmt) Children() []Node {
	out := []Node{s.Condition, s.Then}
	if s.Else != nil {
		out = append(out, s.Else)
	}
	return s.withOrphans(out)
}

// LabeledStmt is label: stmt.
type LabeledStmt struct {
	NodeBase
	Label string
	Stmt  Statement
}

func (s *LabeledStmt) Children() []Node {
	return s.withOrphans([]Node{s.Stmt})
}

// LocalClassDeclStmt declares a class inside a method body.
type LocalClassDeclStmt struct {
	NodeBase
	Class *ClassOrInterfaceDecl
}

func (s *LocalClassDeclStmt) Children() []Node {
	return s.withOrphans([]Node{s.Class})
}

// ReturnStmt is return with an optional value.
type ReturnStmt struct {
	NodeBase
	Expr Expression
}

func (s *ReturnStmt) Children() []Node {
	var out []Node
	if s.Expr != nil {
		out = append(out, s.Expr)
	}
	return s.withOrphans(out)
}

// SwitchStmt is switch (selector) { entries }.
type SwitchStmt struct {
	NodeBase
	Selector Expression
	Entries  []*SwitchEntryStmt
}

func (s *SwitchStmt) Children() []Node {
	out := []Node{s.Selector}
	out = appendAll(out, s.Entries)
	return s.withOrphans(out)
}

// SwitchEntryStmt is one case label and the statements following it. Label
// is nil for default.
type SwitchEntryStmt struct {
	NodeBase
	Label Expression
	Stmts []Statement
}

func (s *SwitchEntryStmt) Children() []Node {
	var out []Node
	if s.Label != nil {
		out = append(out, s.Label)
	}
	out = appendAll(out, s.Stmts)
	return s.withOrphans(out)
}

// SynchronizedStmt is synchronized (expr) body.
type SynchronizedStmt struct {
	NodeBase
	Expr Expression
	Body *BlockStmt
}

func (s *SynchronizedStmt) Children() []Node {
	return s.withOrphans([]Node{s.Expr, s.Body})
}

// ThrowStmt is throw expr;.
type ThrowStmt struct {
	NodeBase
	Expr Expression
}

func (s *ThrowStmt) Children() []Node {
	return s.withOrphans([]Node{s.Expr})
}

// TryStmt is try (resources) block catches finally.
type TryStmt struct {
	NodeBase
	Resources []*VariableDeclarationExpr
	Try       *BlockStmt
	Catches   []*CatchClause
	Finally   *BlockStmt
}

func (s *TryStmt) Children() []Node {
	out := appendAll(nil, s.Resources)
	out = append(out, s.Try)
	out = appendAll(out, s.Catches)
	if s.Finally != nil {
		out = append(out, s.Finally)
	}
	return s.withOrphans(out)
}

// CatchClause is catch (param) body.
type CatchClause struct {
	NodeBase
	Param *Parameter
	Body  *BlockStmt
}

func (s *CatchClause) Children() []Node {
	return s.withOrphans([]Node{s.Param, s.Body})
}

// WhileStmt is while (cond) body.
type WhileStmt struct {
	NodeBase
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) Children() []Node {
	return s.withOrphans([]Node{s.Condition, s.Body})
}

func (*BlockStmt) stmtNode()                         {}
func (*ExpressionStmt) stmtNode()                    {}
func (*AssertStmt) stmtNode()                        {}
func (*BreakStmt) stmtNode()                         {}
func (*ContinueStmt) stmtNode()                      {}
func (*DoStmt) stmtNode()                            {}
func (*EmptyStmt) stmtNode()                         {}
func (*ExplicitConstructorInvocationStmt) stmtNode() {}
func (*ForStmt) stmtNode()                           {}
func (*ForeachStmt) stmtNode()                       {}
func (*IfStmt) stmtNode()                            {}
func (*LabeledStmt) stmtNode()                       {}
func (*LocalClassDeclStmt) stmtNode()                {}
func (*ReturnStmt) stmtNode()                        {}
func (*SwitchStmt) stmtNode()                        {}
func (*SwitchEntryStmt) stmtNode()                   {}
func (*SynchronizedStmt) stmtNode()                  {}
func (*ThrowStmt) stmtNode()                         {}
func (*TryStmt) stmtNode()                           {}
func (*CatchClause) stmtNode()                       {}
func (*WhileStmt) stmtNode()                         {}
