package ast

// BodyDecl is a member of a class, interface, enum or annotation body.
type BodyDecl interface {
	Node
	bodyDeclNode()
}

// TypeDecl is a top-level or nested type declaration.
type TypeDecl interface {
	BodyDecl
	typeDeclNode()
}

// CompilationUnit is a whole source file.
type CompilationUnit struct {
	NodeBase
	Package *PackageDecl
	Imports []*ImportDecl
	Types   []TypeDecl
}

func (n *CompilationUnit) Children() []Node {
	var out []Node
	if n.Package != nil {
		out = append(out, n.Package)
	}
	out = appendAll(out, n.Imports)
	out = appendAll(out, n.Types)
	return n.withOrphans(out)
}

// PackageDecl is the package clause.
type PackageDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Name        *NameExpr
}

func (n *PackageDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = append(out, n.Name)
	return n.withOrphans(out)
}

// ImportDecl is a single import, optionally static and/or on-demand (.*).
type ImportDecl struct {
	NodeBase
	Name     *NameExpr
	Static   bool
	Asterisk bool
}

func (n *ImportDecl) Children() []Node {
	return n.withOrphans([]Node{n.Name})
}

// ClassOrInterfaceDecl declares a class or an interface.
type ClassOrInterfaceDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Interface   bool
	Name        string
	TypeParams  []*TypeParameter
	Extends     []*ClassOrInterfaceType
	Implements  []*ClassOrInterfaceType
	Members     []BodyDecl
}

func (n *ClassOrInterfaceDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.TypeParams)
	out = appendAll(out, n.Extends)
	out = appendAll(out, n.Implements)
	out = appendAll(out, n.Members)
	return n.withOrphans(out)
}

// EnumDecl declares an enum.
type EnumDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Name        string
	Implements  []*ClassOrInterfaceType
	Entries     []*EnumConstantDecl
	Members     []BodyDecl
}

func (n *EnumDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.Implements)
	out = appendAll(out, n.Entries)
	out = appendAll(out, n.Members)
	return n.withOrphans(out)
}

// EnumConstantDecl is one enum constant with optional arguments and body.
type EnumConstantDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Name        string
	Args        []Expression
	Body        []BodyDecl
}

func (n *EnumConstantDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.Args)
	out = appendAll(out, n.Body)
	return n.withOrphans(out)
}

// AnnotationDecl declares an annotation type (@interface).
type AnnotationDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Name        string
	Members     []BodyDecl
}

func (n *AnnotationDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.Members)
	return n.withOrphans(out)
}

// AnnotationMemberDecl is an element of an annotation type.
type AnnotationMemberDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Type        Type
	Name        string
	Default     Expression
}

func (n *AnnotationMemberDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = append(out, n.Type)
	if n.Default != nil {
		out = append(out, n.Default)
	}
	return n.withOrphans(out)
}

// FieldDecl declares one or more fields sharing a type.
type FieldDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Type        Type
	Vars        []*VariableDeclarator
}

func (n *FieldDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = append(out, n.Type)
	out = appendAll(out, n.Vars)
	return n.withOrphans(out)
}

// VariableDeclarator is name[]... = init within a field or local
// variable declaration.
type VariableDeclarator struct {
	NodeBase
	Name     string
	Brackets []*ArrayBracketPair
	Init     Expression
}

func (n *VariableDeclarator) Children() []Node {
	out := appendAll(nil, n.Brackets)
	if n.Init != nil {
		out = append(out, n.Init)
	}
	return n.withOrphans(out)
}

// ConstructorDecl declares a constructor.
type ConstructorDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	TypeParams  []*TypeParameter
	Name        string
	Params      []*Parameter
	Throws      []Type
	Body        *BlockStmt
}

func (n *ConstructorDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.TypeParams)
	out = appendAll(out, n.Params)
	out = appendAll(out, n.Throws)
	out = append(out, n.Body)
	return n.withOrphans(out)
}

// MethodDecl declares a method. Body is nil for abstract and interface
// methods.
type MethodDecl struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	TypeParams  []*TypeParameter
	Type        Type
	Name        string
	Params      []*Parameter
	Brackets    []*ArrayBracketPair
	Throws      []Type
	Body        *BlockStmt
}

func (n *MethodDecl) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = appendAll(out, n.TypeParams)
	out = append(out, n.Type)
	out = appendAll(out, n.Params)
	out = appendAll(out, n.Brackets)
	out = appendAll(out, n.Throws)
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return n.withOrphans(out)
}

// Parameter is a formal parameter of a method, constructor, lambda or catch
// clause.
type Parameter struct {
	NodeBase
	Annotations []AnnotationExpr
	Modifiers   Modifiers
	Type        Type
	VarArgs     bool
	Name        string
	Brackets    []*ArrayBracketPair
}

func (n *Parameter) Children() []Node {
	out := appendAll(nil, n.Annotations)
	out = append(out, n.Type)
	out = appendAll(out, n.Brackets)
	return n.withOrphans(out)
}

// InitializerDecl is an instance or static initializer block.
type InitializerDecl struct {
	NodeBase
	Static bool
	Body   *BlockStmt
}

func (n *InitializerDecl) Children() []Node {
	return n.withOrphans([]Node{n.Body})
}

// EmptyMemberDecl is a stray ; in a type body.
type EmptyMemberDecl struct {
	NodeBase
}

func (n *EmptyMemberDecl) Children() []Node {
	return n.withOrphans(nil)
}

// EmptyTypeDecl is a stray ; at the top level of a file.
type EmptyTypeDecl struct {
	NodeBase
}

func (n *EmptyTypeDecl) Children() []Node {
	return n.withOrphans(nil)
}

func (*ClassOrInterfaceDecl) bodyDeclNode() {}
func (*EnumDecl) bodyDeclNode()             {}
func (*AnnotationDecl) bodyDeclNode()       {}
func (*EmptyTypeDecl) bodyDeclNode()        {}
func (*EnumConstantDecl) bodyDeclNode()     {}
func (*AnnotationMemberDecl) bodyDeclNode() {}
func (*FieldDecl) bodyDeclNode()            {}
func (*ConstructorDecl) bodyDeclNode()      {}
func (*MethodDecl) bodyDeclNode()           {}
func (*InitializerDecl) bodyDeclNode()      {}
func (*EmptyMemberDecl) bodyDeclNode()      {}

func (*ClassOrInterfaceDecl) typeDeclNode() {}
func (*EnumDecl) typeDeclNode()             {}
func (*AnnotationDecl) typeDeclNode()       {}
func (*EmptyTypeDecl) typeDeclNode()        {}
