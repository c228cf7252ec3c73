package ast

// Expression is any expression node.
type Expression interface {
	Node
	exprNode()
}

// AnnotationExpr is an annotation use such as @Override.
type AnnotationExpr interface {
	Expression
	annotationNode()
}

// NameExpr is a simple or qualified name. Qualified names chain through
// Qualifier: java.util.List is List qualified by util qualified by java.
type NameExpr struct {
	NodeBase
	Qualifier *NameExpr
	Name      string
}

func (e *NameExpr) Children() []Node {
	var out []Node
	if e.Qualifier != nil {
		out = append(out, e.Qualifier)
	}
	return e.withOrphans(out)
}

// String returns the dotted form of the name.
func (e *NameExpr) String() string {
	if e.Qualifier == nil {
		return e.Name
	}
	return e.Qualifier.String() + "." + e.Name
}

// ArrayAccessExpr is name[index].
type ArrayAccessExpr struct {
	NodeBase
	Name  Expression
	Index Expression
}

func (e *ArrayAccessExpr) Children() []Node {
	return e.withOrphans([]Node{e.Name, e.Index})
}

// ArrayCreationLevel is one [dimension] of an array creation; Dimension is
// nil for an unsized level.
type ArrayCreationLevel struct {
	NodeBase
	Annotations []AnnotationExpr
	Dimension   Expression
}

func (e *ArrayCreationLevel) Children() []Node {
	out := appendAll(nil, e.Annotations)
	if e.Dimension != nil {
		out = append(out, e.Dimension)
	}
	return e.withOrphans(out)
}

// ArrayCreationExpr is new T[n][]... with an optional initializer.
type ArrayCreationExpr struct {
	NodeBase
	ElemType Type
	Levels   []*ArrayCreationLevel
	Init     *ArrayInitializerExpr
}

func (e *ArrayCreationExpr) Children() []Node {
	out := []Node{e.ElemType}
	out = appendAll(out, e.Levels)
	if e.Init != nil {
		out = append(out, e.Init)
	}
	return e.withOrphans(out)
}

// ArrayInitializerExpr is { a, b, c }.
type ArrayInitializerExpr struct {
	NodeBase
	Values []Expression
}

func (e *ArrayInitializerExpr) Children() []Node {
	return e.withOrphans(appendAll(nil, e.Values))
}

// AssignExpr is target op value.
type AssignExpr struct {
	NodeBase
	Target Expression
	Op     AssignOp
	Value  Expression
}

func (e *AssignExpr) Children() []Node {
	return e.withOrphans([]Node{e.Target, e.Value})
}

// BinaryExpr is left op right.
type BinaryExpr struct {
	NodeBase
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (e *BinaryExpr) Children() []Node {
	return e.withOrphans([]Node{e.Left, e.Right})
}

// UnaryExpr is a prefix or postfix operator applied to Expr.
type UnaryExpr struct {
	NodeBase
	Op   UnaryOp
	Expr Expression
}

func (e *UnaryExpr) Children() []Node {
	return e.withOrphans([]Node{e.Expr})
}

// CastExpr is (Type) expr.
type CastExpr struct {
	NodeBase
	Type Type
	Expr Expression
}

func (e *CastExpr) Children() []Node {
	return e.withOrphans([]Node{e.Type, e.Expr})
}

// ClassExpr is Type.class.
type ClassExpr struct {
	NodeBase
	Type Type
}

func (e *ClassExpr) Children() []Node {
	return e.withOrphans([]Node{e.Type})
}

// ConditionalExpr is cond ? then : else.
type ConditionalExpr struct {
	NodeBase
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *ConditionalExpr) Children() []Node {
	return e.withOrphans([]Node{e.Condition, e.Then, e.Else})
}

// EnclosedExpr is a parenthesized expression.
type EnclosedExpr struct {
	NodeBase
	Inner Expression
}

func (e *EnclosedExpr) Children() []Node {
	var out []Node
	if e.Inner != nil {
		out = append(out, e.Inner)
	}
	return e.withOrphans(out)
}

// FieldAccessExpr is scope.field.
type FieldAccessExpr struct {
	NodeBase
	Scope Expression
	Field string
}

func (e *FieldAccessExpr) Children() []Node {
	return e.withOrphans([]Node{e.Scope})
}

// InstanceOfExpr is expr instanceof Type.
type InstanceOfExpr struct {
	NodeBase
	Expr Expression
	Type Type
}

func (e *InstanceOfExpr) Children() []Node {
	return e.withOrphans([]Node{e.Expr, e.Type})
}

// Literal values are stored as written, without surrounding quotes for
// character and string literals.
type (
	IntegerLiteralExpr struct {
		NodeBase
		Value string
	}
	LongLiteralExpr struct {
		NodeBase
		Value string
	}
	DoubleLiteralExpr struct {
		NodeBase
		Value string
	}
	CharLiteralExpr struct {
		NodeBase
		Value string
	}
	StringLiteralExpr struct {
		NodeBase
		Value string
	}
	BooleanLiteralExpr struct {
		NodeBase
		Value bool
	}
	NullLiteralExpr struct {
		NodeBase
	}
)

func (e *IntegerLiteralExpr) Children() []Node { return e.withOrphans(nil) }
func (e *LongLiteralExpr) Children() []Node    { return e.withOrphans(nil) }
func (e *DoubleLiteralExpr) Children() []Node  { return e.withOrphans(nil) }
func (e *CharLiteralExpr) Children() []Node    { return e.withOrphans(nil) }
func (e *StringLiteralExpr) Children() []Node  { return e.withOrphans(nil) }
func (e *BooleanLiteralExpr) Children() []Node { return e.withOrphans(nil) }
func (e *NullLiteralExpr) Children() []Node    { return e.withOrphans(nil) }

// MethodCallExpr is scope.<T>name(args).
type MethodCallExpr struct {
	NodeBase
	Scope    Expression
	TypeArgs []Type
	Name     string
	Args     []Expression
}

func (e *MethodCallExpr) Children() []Node {
	var out []Node
	if e.Scope != nil {
		out = append(out, e.Scope)
	}
	out = appendAll(out, e.TypeArgs)
	out = appendAll(out, e.Args)
	return e.withOrphans(out)
}

// ObjectCreationExpr is scope.new <T> Type(args) with an optional anonymous
// class body. AnonymousBody is nil when there is no body and non-nil
// (possibly empty) when there is one.
type ObjectCreationExpr struct {
	NodeBase
	Scope         Expression
	TypeArgs      []Type
	Type          *ClassOrInterfaceType
	Args          []Expression
	AnonymousBody []BodyDecl
}

func (e *ObjectCreationExpr) Children() []Node {
	var out []Node
	if e.Scope != nil {
		out = append(out, e.Scope)
	}
	out = appendAll(out, e.TypeArgs)
	out = append(out, e.Type)
	out = appendAll(out, e.Args)
	out = appendAll(out, e.AnonymousBody)
	return e.withOrphans(out)
}

// ThisExpr is this or Outer.this.
type ThisExpr struct {
	NodeBase
	Class Expression
}

func (e *ThisExpr) Children() []Node {
	var out []Node
	if e.Class != nil {
		out = append(out, e.Class)
	}
	return e.withOrphans(out)
}

// SuperExpr is super or Outer.super.
type SuperExpr struct {
	NodeBase
	Class Expression
}

func (e *SuperExpr) Children() []Node {
	var out []Node
	if e.Class != nil {
		out = append(out, e.Class)
	}
	return e.withOrphans(out)
}

// VariableDeclarationExpr declares local variables, in a statement, a for
// header or a try resource.
type VariableDeclarationExpr struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Type        Type
	Vars        []*VariableDeclarator
}

func (e *VariableDeclarationExpr) Children() []Node {
	out := appendAll(nil, e.Annotations)
	out = append(out, e.Type)
	out = appendAll(out, e.Vars)
	return e.withOrphans(out)
}

// LambdaExpr is (params) -> body. A body that is an *ExpressionStmt is
// an expression lambda.
type LambdaExpr struct {
	NodeBase
	Params             []*Parameter
	ParametersEnclosed bool
	Body               Statement
}

func (e *LambdaExpr) Children() []Node {
	out := appendAll(nil, e.Params)
	out = append(out, e.Body)
	return e.withOrphans(out)
}

// MethodReferenceExpr is scope::<T>identifier.
type MethodReferenceExpr struct {
	NodeBase
	Scope      Expression
	TypeArgs   []Type
	Identifier string
}

func (e *MethodReferenceExpr) Children() []Node {
	out := []Node{e.Scope}
	out = appendAll(out, e.TypeArgs)
	return e.withOrphans(out)
}

// TypeExpr is a type in expression position, such as the scope of
// String[]::new.
type TypeExpr struct {
	NodeBase
	Type Type
}

func (e *TypeExpr) Children() []Node {
	return e.withOrphans([]Node{e.Type})
}

// MarkerAnnotationExpr is @Name.
type MarkerAnnotationExpr struct {
	NodeBase
	Name *NameExpr
}

func (e *MarkerAnnotationExpr) Children() []Node {
	return e.withOrphans([]Node{e.Name})
}

// SingleMemberAnnotationExpr is @Name(value).
type SingleMemberAnnotationExpr struct {
	NodeBase
	Name  *NameExpr
	Value Expression
}

func (e *SingleMemberAnnotationExpr) Children() []Node {
	return e.withOrphans([]Node{e.Name, e.Value})
}

// NormalAnnotationExpr is @Name(a = x, b = y).
type NormalAnnotationExpr struct {
	NodeBase
	Name  *NameExpr
	Pairs []*MemberValuePair
}

func (e *NormalAnnotationExpr) Children() []Node {
	out := []Node{e.Name}
	out = appendAll(out, e.Pairs)
	return e.withOrphans(out)
}

// MemberValuePair is name = value inside a normal annotation.
type MemberValuePair struct {
	NodeBase
	Name  string
	Value Expression
}

func (e *MemberValuePair) Children() []Node {
	return e.withOrphans([]Node{e.Value})
}

func (*NameExpr) exprNode()                   {}
func (*ArrayAccessExpr) exprNode()            {}
func (*ArrayCreationLevel) exprNode()         {}
func (*ArrayCreationExpr) exprNode()          {}
func (*ArrayInitializerExpr) exprNode()       {}
func (*AssignExpr) exprNode()                 {}
func (*BinaryExpr) exprNode()                 {}
func (*UnaryExpr) exprNode()                  {}
func (*CastExpr) exprNode()                   {}
func (*ClassExpr) exprNode()                  {}
func (*ConditionalExpr) exprNode()            {}
func (*EnclosedExpr) exprNode()               {}
func (*FieldAccessExpr) exprNode()            {}
func (*InstanceOfExpr) exprNode()             {}
func (*IntegerLiteralExpr) exprNode()         {}
func (*LongLiteralExpr) exprNode()            {}
func (*DoubleLiteralExpr) exprNode()          {}
func (*CharLiteralExpr) exprNode()            {}
func (*StringLiteralExpr) exprNode()          {}
func (*BooleanLiteralExpr) exprNode()         {}
func (*NullLiteralExpr) exprNode()            {}
func (*MethodCallExpr) exprNode()             {}
func (*ObjectCreationExpr) exprNode()         {}
func (*ThisExpr) exprNode()                   {}
func (*SuperExpr) exprNode()                  {}
func (*VariableDeclarationExpr) exprNode()    {}
func (*LambdaExpr) exprNode()                 {}
func (*MethodReferenceExpr) exprNode()        {}
func (*TypeExpr) exprNode()                   {}
func (*MarkerAnnotationExpr) exprNode()       {}
func (*SingleMemberAnnotationExpr) exprNode() {}
func (*NormalAnnotationExpr) exprNode()       {}
func (*MemberValuePair) exprNode()            {}

func (*MarkerAnnotationExpr) annotationNode()       {}
func (*SingleMemberAnnotationExpr) annotationNode() {}
func (*NormalAnnotationExpr) annotationNode()       {}
