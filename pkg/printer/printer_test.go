package printer

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/jfmt/pkg/ast"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type PrinterSuite struct{}

func TestPrinter(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(PrinterSuite{})
}

func name(s string) *ast.NameExpr {
	return &ast.NameExpr{Name: s}
}

func call(s string) *ast.MethodCallExpr {
	return &ast.MethodCallExpr{Name: s}
}

func stmt(e ast.Expression) *ast.ExpressionStmt {
	return &ast.ExpressionStmt{Expr: e}
}

func classType(s string, args ...ast.Type) *ast.ClassOrInterfaceType {
	return &ast.ClassOrInterfaceType{Name: s, TypeArgs: args}
}

func intType() *ast.PrimitiveType {
	return &ast.PrimitiveType{Kind: ast.Int}
}

func at(n ast.Node, offset int) {
	n.Base().Range = ast.Range{
		Begin: ast.Position{Line: 1, Column: offset + 1, Offset: offset},
		End:   ast.Position{Line: 1, Column: offset + 2, Offset: offset + 1},
	}
}

type testingT interface {
	require.TestingT
	Helper()
}

func render(t testingT, n ast.Node) string {
	t.Helper()
	out, err := Print(ast.NewTree(n), Options{EmitComments: true})
	require.NoError(t, err)
	return out
}

func (PrinterSuite) TestOperatorSymbols(ctx context.Context, t *testctx.T) {
	for _, op := range ast.BinaryOps() {
		t.Run("binary "+op.Symbol(), func(ctx context.Context, t *testctx.T) {
			out := render(t, &ast.BinaryExpr{Left: name("a"), Op: op, Right: name("b")})
			require.Equal(t, "a "+op.Symbol()+" b", out)
		})
	}
	for _, op := range ast.AssignOps() {
		t.Run("assign "+op.Symbol(), func(ctx context.Context, t *testctx.T) {
			out := render(t, &ast.AssignExpr{Target: name("a"), Op: op, Value: name("b")})
			require.Equal(t, "a "+op.Symbol()+" b", out)
		})
	}
	for _, op := range ast.UnaryOps() {
		expected := op.Symbol() + "a"
		if op.Postfix() {
			expected = "a" + op.Symbol()
		}
		t.Run("unary "+expected, func(ctx context.Context, t *testctx.T) {
			out := render(t, &ast.UnaryExpr{Op: op, Expr: name("a")})
			require.Equal(t, expected, out)
		})
	}
}

func (PrinterSuite) TestForgedOperatorPanics(ctx context.Context, t *testctx.T) {
	tree := ast.NewTree(&ast.BinaryExpr{Left: name("a"), Op: ast.BinaryOp(42), Right: name("b")})
	assert.Panics(t, func() {
		_, _ = Print(tree, Options{})
	})
}

func orphanBlock() (*ast.BlockStmt, *ast.LineComment) {
	a := stmt(call("a"))
	b := stmt(call("b"))
	note := &ast.LineComment{Content: " note"}
	at(a, 10)
	at(note, 15)
	at(b, 30)
	block := &ast.BlockStmt{Stmts: []ast.Statement{a, b}}
	block.AddOrphan(note)
	at(block, 0)
	return block, note
}

func (PrinterSuite) TestOrphanBetweenStatements(ctx context.Context, t *testctx.T) {
	block, _ := orphanBlock()
	require.Equal(t, `{
    a();
    // note
    b();
}`, render(t, block))
}

func (PrinterSuite) TestTrailingOrphans(ctx context.Context, t *testctx.T) {
	a := stmt(call("a"))
	one := &ast.LineComment{Content: " one"}
	two := &ast.BlockComment{Content: " two "}
	at(a, 10)
	at(one, 20)
	at(two, 30)
	block := &ast.BlockStmt{Stmts: []ast.Statement{a}}
	// recorded out of order; position decides
	block.AddOrphan(two)
	block.AddOrphan(one)

	require.Equal(t, `{
    a();
    // one
    /* two */
}`, render(t, block))
}

func (PrinterSuite) TestOrphansBeforeSemicolon(ctx context.Context, t *testctx.T) {
	x := name("x")
	done := &ast.BlockComment{Content: " done "}
	ret := &ast.ReturnStmt{Expr: x}
	at(ret, 0)
	at(x, 7)
	at(done, 9)
	ret.AddOrphan(done)

	block := &ast.BlockStmt{Stmts: []ast.Statement{ret}}
	require.Equal(t, `{
    return x/* done */
    ;
}`, render(t, block))
}

func (PrinterSuite) TestLeadingOrphans(ctx context.Context, t *testctx.T) {
	a := stmt(call("a"))
	lead := &ast.LineComment{Content: " first"}
	at(lead, 2)
	at(a, 10)
	block := &ast.BlockStmt{Stmts: []ast.Statement{a}}
	block.AddOrphan(lead)

	require.Equal(t, `{
    // first
    a();
}`, render(t, block))
}

func (PrinterSuite) TestCommentSuppression(ctx context.Context, t *testctx.T) {
	block, _ := orphanBlock()
	block.Stmts[0].Base().Comment = &ast.JavadocComment{Content: " attached "}
	block.Stmts[1].(*ast.ExpressionStmt).Expr.Base().Comment = &ast.BlockComment{Content: " nested "}

	out, err := Print(ast.NewTree(block), Options{EmitComments: false})
	require.NoError(t, err)
	require.Equal(t, `{
    a();
    b();
}`, out)

	out, err = Print(ast.NewTree(block), Options{EmitComments: true})
	require.NoError(t, err)
	require.Equal(t, `{
    /** attached */
    a();
    // note
    /* nested */
    b();
}`, out)
}

func (PrinterSuite) TestArrayFlattening(ctx context.Context, t *testctx.T) {
	require.Equal(t, "int[][]", render(t, ast.ArrayOf(intType(), 2)))

	decl := &ast.VariableDeclarationExpr{
		Type: ast.ArrayOf(classType("String"), 1),
		Vars: []*ast.VariableDeclarator{{Name: "args"}},
	}
	require.Equal(t, "String[] args", render(t, decl))

	annotated := &ast.ArrayType{
		Component: &ast.ArrayType{Component: intType()},
		Annotations: []ast.AnnotationExpr{
			&ast.MarkerAnnotationExpr{Name: name("NonNull")},
		},
	}
	require.Equal(t, "int @NonNull [][]", render(t, annotated))
}

func (PrinterSuite) TestDiamond(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name     string
		typ      *ast.ClassOrInterfaceType
		expected string
	}{
		{
			name:     "diamond",
			typ:      &ast.ClassOrInterfaceType{Name: "ArrayList", Diamond: true},
			expected: "new ArrayList<>()",
		},
		{
			name:     "explicit argument",
			typ:      classType("ArrayList", classType("ConcreteType")),
			expected: "new ArrayList<ConcreteType>()",
		},
		{
			name:     "raw",
			typ:      classType("ArrayList"),
			expected: "new ArrayList()",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, test.expected, render(t, &ast.ObjectCreationExpr{Type: test.typ}))
		})
	}
}

func (PrinterSuite) TestIfElse(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name     string
		stmt     *ast.IfStmt
		expected string
	}{
		{
			name: "block arms",
			stmt: &ast.IfStmt{
				Condition: name("c"),
				Then:      &ast.BlockStmt{Stmts: []ast.Statement{stmt(call("x"))}},
				Else:      &ast.BlockStmt{Stmts: []ast.Statement{stmt(call("y"))}},
			},
			expected: `if (c) {
    x();
} else {
    y();
}`,
		},
		{
			name: "else if chain",
			stmt: &ast.IfStmt{
				Condition: name("c"),
				Then:      &ast.BlockStmt{Stmts: []ast.Statement{stmt(call("x"))}},
				Else: &ast.IfStmt{
					Condition: name("d"),
					Then:      stmt(call("y")),
					Else:      stmt(call("z")),
				},
			},
			expected: `if (c) {
    x();
} else if (d)
    y();
else
    z();`,
		},
		{
			name: "bare then",
			stmt: &ast.IfStmt{
				Condition: name("c"),
				Then:      &ast.ReturnStmt{},
			},
			expected: `if (c)
    return;`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, test.expected, render(t, test.stmt))
		})
	}
}

func (PrinterSuite) TestEnumBodies(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name     string
		decl     *ast.EnumDecl
		expected string
	}{
		{
			name: "constants only",
			decl: &ast.EnumDecl{
				Name:    "Color",
				Entries: []*ast.EnumConstantDecl{{Name: "RED"}, {Name: "GREEN"}},
			},
			expected: "enum Color {\n\n    RED, GREEN\n}",
		},
		{
			name: "constants and members",
			decl: &ast.EnumDecl{
				Modifiers: ast.ModifierSet(ast.Public),
				Name:      "Op",
				Entries: []*ast.EnumConstantDecl{
					{Name: "ADD", Args: []ast.Expression{&ast.CharLiteralExpr{Value: "+"}}},
				},
				Members: []ast.BodyDecl{
					&ast.MethodDecl{Type: &ast.VoidType{}, Name: "apply"},
				},
			},
			expected: "public enum Op {\n\n    ADD('+');\n\n    void apply();\n}",
		},
		{
			name:     "empty",
			decl:     &ast.EnumDecl{Name: "Nothing"},
			expected: "enum Nothing {\n\n}",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, test.expected, render(t, test.decl))
		})
	}
}

func (PrinterSuite) TestMethods(ctx context.Context, t *testctx.T) {
	abstract := &ast.MethodDecl{
		Modifiers: ast.ModifierSet(ast.Abstract, ast.Public),
		Type:      &ast.VoidType{},
		Name:      "run",
		Params: []*ast.Parameter{
			{Type: classType("String"), VarArgs: true, Name: "args"},
		},
		Throws: []ast.Type{classType("IOException")},
	}
	require.Equal(t, "public abstract void run(String... args) throws IOException;", render(t, abstract))

	generic := &ast.MethodDecl{
		Annotations: []ast.AnnotationExpr{&ast.MarkerAnnotationExpr{Name: name("Override")}},
		Modifiers:   ast.ModifierSet(ast.Static),
		TypeParams: []*ast.TypeParameter{
			{Name: "T", Bounds: []*ast.ClassOrInterfaceType{classType("A"), classType("B")}},
		},
		Type:   classType("T"),
		Name:   "pick",
		Params: []*ast.Parameter{{Modifiers: ast.ModifierSet(ast.Final), Type: classType("T"), Name: "t"}},
		Body: &ast.BlockStmt{Stmts: []ast.Statement{
			&ast.ReturnStmt{Expr: name("t")},
		}},
	}
	generic.Comment = &ast.JavadocComment{Content: " Picks. "}
	require.Equal(t, `/** Picks. */
@Override
static <T extends A & B> T pick(final T t) {
    return t;
}`, render(t, generic))
}

func (PrinterSuite) TestClassMembers(ctx context.Context, t *testctx.T) {
	cls := &ast.ClassOrInterfaceDecl{
		Modifiers:  ast.ModifierSet(ast.Public),
		Name:       "Box",
		TypeParams: []*ast.TypeParameter{{Name: "T"}},
		Implements: []*ast.ClassOrInterfaceType{classType("Supplier", classType("T"))},
		Members: []ast.BodyDecl{
			&ast.FieldDecl{
				Modifiers: ast.ModifierSet(ast.Private, ast.Final),
				Type:      classType("T"),
				Vars:      []*ast.VariableDeclarator{{Name: "value"}},
			},
			&ast.ConstructorDecl{
				Name:   "Box",
				Params: []*ast.Parameter{{Type: classType("T"), Name: "value"}},
				Body: &ast.BlockStmt{Stmts: []ast.Statement{
					stmt(&ast.AssignExpr{
						Target: &ast.FieldAccessExpr{Scope: &ast.ThisExpr{}, Field: "value"},
						Op:     ast.Assign,
						Value:  name("value"),
					}),
				}},
			},
		},
	}
	require.Equal(t, `public class Box<T> implements Supplier<T> {

    private final T value;

    Box(T value) {
        this.value = value;
    }
}`, render(t, cls))
}

func (PrinterSuite) TestTryWithResources(ctx context.Context, t *testctx.T) {
	resource := func(typ, v string) *ast.VariableDeclarationExpr {
		return &ast.VariableDeclarationExpr{
			Type: classType(typ),
			Vars: []*ast.VariableDeclarator{{Name: v, Init: call("open")}},
		}
	}
	try := &ast.TryStmt{
		Resources: []*ast.VariableDeclarationExpr{resource("A", "a"), resource("B", "b"), resource("C", "c")},
		Try:       &ast.BlockStmt{},
		Catches: []*ast.CatchClause{{
			Param: &ast.Parameter{
				Type: &ast.UnionType{Elements: []ast.Type{classType("IOException"), classType("RuntimeException")}},
				Name: "e",
			},
			Body: &ast.BlockStmt{},
		}},
		Finally: &ast.BlockStmt{},
	}
	require.Equal(t, `try (A a = open();
    B b = open();
    C c = open()) {
} catch (IOException | RuntimeException e) {
} finally {
}`, render(t, try))

	single := &ast.TryStmt{
		Resources: []*ast.VariableDeclarationExpr{resource("A", "a")},
		Try:       &ast.BlockStmt{},
	}
	require.Equal(t, "try (A a = open()) {\n}", render(t, single))
}

func (PrinterSuite) TestLambdaBodies(ctx context.Context, t *testctx.T) {
	bare := &ast.LambdaExpr{
		Params: []*ast.Parameter{{Type: &ast.UnknownType{}, Name: "x"}},
		Body: stmt(&ast.BinaryExpr{
			Left: name("x"), Op: ast.Plus, Right: &ast.IntegerLiteralExpr{Value: "1"},
		}),
	}
	require.Equal(t, "x -> x + 1", render(t, bare))

	block := &ast.LambdaExpr{
		Params: []*ast.Parameter{
			{Type: &ast.UnknownType{}, Name: "a"},
			{Type: &ast.UnknownType{}, Name: "b"},
		},
		ParametersEnclosed: true,
		Body:               &ast.BlockStmt{Stmts: []ast.Statement{stmt(call("run"))}},
	}
	require.Equal(t, "(a, b) -> {\n    run();\n}", render(t, block))
}

func (PrinterSuite) TestSwitch(ctx context.Context, t *testctx.T) {
	sw := &ast.SwitchStmt{
		Selector: name("k"),
		Entries: []*ast.SwitchEntryStmt{
			{Label: &ast.IntegerLiteralExpr{Value: "1"}, Stmts: []ast.Statement{stmt(call("one")), &ast.BreakStmt{}}},
			{Stmts: []ast.Statement{&ast.ContinueStmt{Label: "outer"}}},
		},
	}
	require.Equal(t, `switch (k) {
    case 1:
        one();
        break;
    default:
        continue outer;
}`, render(t, sw))
}

func (PrinterSuite) TestCompilationUnit(ctx context.Context, t *testctx.T) {
	cu := &ast.CompilationUnit{
		Package: &ast.PackageDecl{Name: &ast.NameExpr{Qualifier: name("a"), Name: "b"}},
		Imports: []*ast.ImportDecl{
			{Name: &ast.NameExpr{Qualifier: &ast.NameExpr{Qualifier: name("java"), Name: "util"}, Name: "List"}},
			{Name: &ast.NameExpr{Qualifier: name("org"), Name: "junit"}, Asterisk: true, Static: true},
		},
		Types: []ast.TypeDecl{
			&ast.ClassOrInterfaceDecl{Name: "A"},
			&ast.ClassOrInterfaceDecl{Interface: true, Name: "B"},
		},
	}
	require.Equal(t, `package a.b;

import java.util.List;
import static org.junit.*;

class A {
}

interface B {
}
`, render(t, cu))
}

func (PrinterSuite) TestExpressions(ctx context.Context, t *testctx.T) {
	tests := []struct {
		name     string
		expr     ast.Expression
		expected string
	}{
		{"cast", &ast.CastExpr{Type: intType(), Expr: name("x")}, "(int) x"},
		{"conditional", &ast.ConditionalExpr{Condition: name("c"), Then: name("a"), Else: name("b")}, "c ? a : b"},
		{"string", &ast.StringLiteralExpr{Value: `hi\n`}, `"hi\n"`},
		{"array init", &ast.ArrayInitializerExpr{Values: []ast.Expression{name("a"), name("b")}}, "{ a, b }"},
		{"empty array init", &ast.ArrayInitializerExpr{}, "{}"},
		{"array creation", &ast.ArrayCreationExpr{
			ElemType: intType(),
			Levels:   []*ast.ArrayCreationLevel{{Dimension: name("n")}, {}},
		}, "new int[n][]"},
		{"method ref", &ast.MethodReferenceExpr{Scope: name("String"), Identifier: "valueOf"}, "String::valueOf"},
		{"generic call", &ast.MethodCallExpr{
			Scope: name("Collections"), TypeArgs: []ast.Type{classType("String")}, Name: "emptyList",
		}, "Collections.<String>emptyList()"},
		{"instanceof", &ast.InstanceOfExpr{Expr: name("o"), Type: classType("List", &ast.WildcardType{Extends: classType("Number")})}, "o instanceof List<? extends Number>"},
		{"normal annotation", &ast.NormalAnnotationExpr{
			Name:  name("Retry"),
			Pairs: []*ast.MemberValuePair{{Name: "times", Value: &ast.IntegerLiteralExpr{Value: "3"}}},
		}, "@Retry(times = 3)"},
		{"qualified this", &ast.ThisExpr{Class: name("Outer")}, "Outer.this"},
		{"class literal", &ast.ClassExpr{Type: classType("String")}, "String.class"},
	}
	for _, test := range tests {
		t.Run(test.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, test.expected, render(t, test.expr))
		})
	}
}

func (PrinterSuite) TestNestedUnary(ctx context.Context, t *testctx.T) {
	unary := func(op ast.UnaryOp, e ast.Expression) *ast.UnaryExpr {
		return &ast.UnaryExpr{Op: op, Expr: e}
	}
	tests := []struct {
		name     string
		expr     ast.Expression
		expected string
	}{
		{"negate negative", unary(ast.Negative, unary(ast.Negative, name("x"))), "- -x"},
		{"plus positive", unary(ast.Positive, unary(ast.Positive, name("x"))), "+ +x"},
		{"negate predecrement", unary(ast.Negative, unary(ast.PreDecrement, name("x"))), "- --x"},
		{"plus preincrement", unary(ast.Positive, unary(ast.PreIncrement, name("x"))), "+ ++x"},
		{"negate positive", unary(ast.Negative, unary(ast.Positive, name("x"))), "-+x"},
		{"negate postincrement", unary(ast.Negative, unary(ast.PostIncrement, name("x"))), "-x++"},
		{"not not", unary(ast.Not, unary(ast.Not, name("b"))), "!!b"},
	}
	for _, test := range tests {
		t.Run(test.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, test.expected, render(t, test.expr))
		})
	}
}

func (PrinterSuite) TestAnonymousClass(ctx context.Context, t *testctx.T) {
	expr := &ast.ObjectCreationExpr{
		Type: classType("Runnable"),
		AnonymousBody: []ast.BodyDecl{
			&ast.MethodDecl{
				Modifiers: ast.ModifierSet(ast.Public),
				Type:      &ast.VoidType{},
				Name:      "run",
				Body:      &ast.BlockStmt{},
			},
		},
	}
	require.Equal(t, `new Runnable() {

    public void run() {
    }
}`, render(t, expr))
}

func (PrinterSuite) TestIndentUnit(ctx context.Context, t *testctx.T) {
	block := &ast.BlockStmt{Stmts: []ast.Statement{stmt(call("a"))}}
	out, err := Print(ast.NewTree(block), Options{Indent: "\t"})
	require.NoError(t, err)
	require.Equal(t, "{\n\ta();\n}", out)
}

func (PrinterSuite) TestIndentationBalanced(ctx context.Context, t *testctx.T) {
	block, _ := orphanBlock()
	nested := &ast.IfStmt{
		Condition: name("c"),
		Then:      stmt(call("x")),
		Else:      &ast.WhileStmt{Condition: name("d"), Body: block},
	}
	buf := NewBuffer("")
	err := Fprint(buf, ast.NewTree(nested), nested, Options{EmitComments: true})
	require.NoError(t, err)
	require.Equal(t, 0, buf.Depth())
	require.Contains(t, buf.String(), "else\n    while (d) {\n        a();")
}

func (PrinterSuite) TestMovedChildIsInconsistent(ctx context.Context, t *testctx.T) {
	a := stmt(call("a"))
	from := &ast.BlockStmt{Stmts: []ast.Statement{a}}
	to := &ast.BlockStmt{}
	root := &ast.BlockStmt{Stmts: []ast.Statement{from, to}}
	tree := ast.NewTree(root)

	from.Stmts = nil
	to.Stmts = []ast.Statement{a}

	out, err := Print(tree, Options{EmitComments: true})
	require.Error(t, err)
	require.Empty(t, out)

	var cerr *ConsistencyError
	require.True(t, errors.As(err, &cerr))
	require.Same(t, a, cerr.Node)
	require.Same(t, from, cerr.Parent)
	require.Contains(t, err.Error(), "not among its parent's children")

	tree.Adopt()
	out, err = Print(tree, Options{})
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "a();"))
}

func (PrinterSuite) TestUnregisteredNodeIsInconsistent(ctx context.Context, t *testctx.T) {
	block := &ast.BlockStmt{}
	tree := ast.NewTree(block)
	block.Stmts = append(block.Stmts, stmt(call("late")))

	_, err := Print(tree, Options{})
	var cerr *ConsistencyError
	require.ErrorAs(t, err, &cerr)
	require.Contains(t, cerr.Reason, "not registered")
}
