package javaparse

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/vito/jfmt/pkg/ast"
	"github.com/vito/jfmt/pkg/printer"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type ParseSuite struct{}

func TestParse(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(ParseSuite{})
}

func format(t require.TestingT, src string) string {
	tree, err := Parse(context.Background(), "test.java", []byte(src))
	require.NoError(t, err)
	out, err := printer.Print(tree, printer.Options{EmitComments: true})
	require.NoError(t, err)
	return out
}

// TestFormatGolden formats each testdata/*.java file and compares it with
// the matching .golden file.
func TestFormatGolden(t *testing.T) {
	sources, err := filepath.Glob(filepath.Join("testdata", "*.java"))
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	for _, path := range sources {
		name := strings.TrimSuffix(filepath.Base(path), ".java")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)
			golden.Assert(t, format(t, string(src)), name+".golden")
		})
	}
}

var roundTrips = map[string]string{
	"generics": `class Box<T extends Number & Comparable<T>> {
  <R> Box<R> map(java.util.function.Function<? super T, ? extends R> fn) { return new Box<R>(); }
  Map<String, List<int[]>> index;
}`,
	"enum": `enum Color implements Named {
  RED("r"), GREEN("g") { String hex() { return "0f0"; } }, BLUE("b");
  private final String code;
  Color(String code) { this.code = code; }
}`,
	"annotations": `@Retention(RetentionPolicy.RUNTIME)
@interface Tag {
  String value() default "";
  int[] ids() default {1, 2};
}
@Tag(value = "x", ids = {3})
@SuppressWarnings("unchecked")
class Tagged {}`,
	"expressions": `class E {
  void f(Object o, int[] a) {
    int x = (int) 3L + a[0] * -a.length;
    boolean b = o instanceof String && !(x >= 2) || x != 0;
    x <<= 2; x >>>= 1;
    String s = b ? "y" : 'n' + "";
    Object r = (Runnable & java.io.Serializable) () -> {};
    int[][] m = new int[3][];
    String[] t = new String[] {"a", "b"};
    java.util.function.Function<String, Integer> len = String::length;
    Class<?> c = int[].class;
    Outer.this.g(); Outer.super.g(); this.<String>h(); x = ++x + x--;
  }
}`,
	"loops": `class L {
  void f(java.util.List<String> xs) {
    outer:
    for (int i = 0, j = 10; i < j; i++, j--) {
      for (;;) break outer;
    }
    do { continue; } while (false);
    for (final String s : xs) synchronized (this) { assert s != null : "null"; }
    ;
  }
}`,
	"inner": `class Outer {
  static { init(); }
  { count = 1; }
  class Inner extends Base implements A, B {
    Inner() throws Exception { this(1); }
    Inner(int x) { Outer.this.super(); }
  }
  interface Shape { default double area() { return 0.0; } double perimeter(); }
  void local() {
    class Local {}
    Object o = new Object() { public String toString() { return "anon"; } };
    Outer.Inner in = this.new Inner();
  }
}`,
	"comments": `// license
package p;

/* before */
class C {
  /** Field. */
  int x; // trailing

  // detached

  void f() {
    g(/* arg */ 1);
    // end of body
  }
  // end of class
}
// end of file
`,
	"statement comments": `class D {
  abstract void g() /* none */;
  int y = 1 /* one */;
  void f(int x) {
    do { x--; } while (x > 0 /* still */);
    switch (x) {
      // first
      case 1: // one
        g();
        break /* out */;
      default: // nothing
    }
    return /* bare */;
  }
}`,
}

func (ParseSuite) TestIdempotent(ctx context.Context, t *testctx.T) {
	for name, src := range roundTrips {
		t.Run(name, func(ctx context.Context, t *testctx.T) {
			once := format(t, src)
			twice := format(t, once)
			require.Equal(t, once, twice)
		})
	}
}

func (ParseSuite) TestCommentsSurviveFormatting(ctx context.Context, t *testctx.T) {
	out := format(t, roundTrips["comments"])
	for _, c := range []string{
		"// license",
		"/* before */",
		"/** Field. */",
		"// trailing",
		"// detached",
		"/* arg */",
		"// end of body",
		"// end of class",
		"// end of file",
	} {
		assert.Equal(t, 1, strings.Count(out, c), "comment %q", c)
	}
}

func (ParseSuite) TestStatementComments(ctx context.Context, t *testctx.T) {
	out := format(t, roundTrips["statement comments"])
	for _, c := range []string{"/* none */", "/* one */", "/* still */", "// first", "// one", "/* out */", "// nothing", "/* bare */"} {
		assert.Equal(t, 1, strings.Count(out, c), "comment %q", c)
	}
	assert.Contains(t, out, "        } while (x > 0/* still */\n        );\n")
	assert.NotContains(t, out, ";/*")
	assert.Contains(t, out, "            // first\n            case 1:\n                // one\n                g();\n")
	assert.Contains(t, out, "            default:\n                // nothing\n        }\n")
}

func (ParseSuite) TestAttachedComments(ctx context.Context, t *testctx.T) {
	tree := MustParse(`class A {
  // doc
  int x;

  int y; // same line

  // detached

  int z;
}`)
	cls := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl)
	require.Len(t, cls.Members, 3)

	x := cls.Members[0].(*ast.FieldDecl)
	require.IsType(t, &ast.LineComment{}, x.Comment)
	require.Equal(t, " doc", x.Comment.Text())

	y := cls.Members[1].(*ast.FieldDecl)
	require.Nil(t, y.Comment)
	z := cls.Members[2].(*ast.FieldDecl)
	require.Nil(t, z.Comment)

	var orphans []string
	for _, c := range cls.Orphans {
		orphans = append(orphans, c.Text())
	}
	require.Equal(t, []string{" same line", " detached"}, orphans)

	parent, ok := tree.Parent(x.Comment)
	require.True(t, ok)
	require.Same(t, x, parent)
}

func (ParseSuite) TestCommentKinds(ctx context.Context, t *testctx.T) {
	tree := MustParse(`/** doc */
class A {
  /* block */
  void f() {}
  /**/
  int x;
}`)
	cls := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl)
	require.IsType(t, &ast.JavadocComment{}, cls.Comment)
	require.Equal(t, " doc ", cls.Comment.Text())
	require.IsType(t, &ast.BlockComment{}, cls.Members[0].Base().Comment)
	// an empty block comment is not javadoc
	require.IsType(t, &ast.BlockComment{}, cls.Members[1].Base().Comment)
	require.Equal(t, "", cls.Members[1].Base().Comment.Text())
}

func (ParseSuite) TestRanges(ctx context.Context, t *testctx.T) {
	tree := MustParse("class A {\n  int x;\n}\n")
	cu := tree.Root.(*ast.CompilationUnit)
	require.Equal(t, 0, cu.Range.Begin.Offset)
	require.Equal(t, len("class A {\n  int x;\n}\n"), cu.Range.End.Offset)

	field := cu.Types[0].(*ast.ClassOrInterfaceDecl).Members[0]
	require.Equal(t, ast.Position{Line: 2, Column: 3, Offset: 12}, field.Base().Range.Begin)
	require.Equal(t, 2, field.Base().Range.End.Line)
}

func (ParseSuite) TestLowering(ctx context.Context, t *testctx.T) {
	t.Run("long literal", func(ctx context.Context, t *testctx.T) {
		tree := MustParse("class A { long x = 10L; int y = 0x1F; }")
		members := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl).Members
		require.IsType(t, &ast.LongLiteralExpr{}, members[0].(*ast.FieldDecl).Vars[0].Init)
		require.IsType(t, &ast.IntegerLiteralExpr{}, members[1].(*ast.FieldDecl).Vars[0].Init)
	})

	t.Run("postfix and prefix", func(ctx context.Context, t *testctx.T) {
		tree := MustParse("class A { void f() { i++; --i; } }")
		method := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl).Members[0].(*ast.MethodDecl)
		post := method.Body.Stmts[0].(*ast.ExpressionStmt).Expr.(*ast.UnaryExpr)
		pre := method.Body.Stmts[1].(*ast.ExpressionStmt).Expr.(*ast.UnaryExpr)
		require.Equal(t, ast.PostIncrement, post.Op)
		require.Equal(t, ast.PreDecrement, pre.Op)
	})

	t.Run("abstract method", func(ctx context.Context, t *testctx.T) {
		tree := MustParse("abstract class A { abstract void f(); }")
		method := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl).Members[0].(*ast.MethodDecl)
		require.Nil(t, method.Body)
		require.True(t, method.Modifiers.Has(ast.Abstract))
	})

	t.Run("diamond", func(ctx context.Context, t *testctx.T) {
		tree := MustParse("class A { Object o = new java.util.ArrayList<>(); }")
		field := tree.Root.(*ast.CompilationUnit).Types[0].(*ast.ClassOrInterfaceDecl).Members[0].(*ast.FieldDecl)
		created := field.Vars[0].Init.(*ast.ObjectCreationExpr)
		require.True(t, created.Type.Diamond)
		require.Equal(t, "ArrayList", created.Type.Name)
		require.Equal(t, "util", created.Type.Scope.Name)
	})

	t.Run("every node registered", func(ctx context.Context, t *testctx.T) {
		tree := MustParse(roundTrips["expressions"])
		ast.Walk(tree.Root, func(n ast.Node) bool {
			require.True(t, tree.Contains(n), ast.KindOf(n))
			return true
		})
	})
}

func (ParseSuite) TestErrors(ctx context.Context, t *testctx.T) {
	t.Run("syntax", func(ctx context.Context, t *testctx.T) {
		_, err := Parse(ctx, "Broken.java", []byte("class A {\n  int x = ;\n}\n"))
		var syntax *SyntaxError
		require.True(t, errors.As(err, &syntax), "%v", err)
		require.Equal(t, "Broken.java", syntax.File)
		require.Equal(t, 2, syntax.Line)
		require.Contains(t, err.Error(), "Broken.java:2:")
	})

	for name, src := range map[string]string{
		"record":      "record Point(int x, int y) {}",
		"switch rule": "class A { void f(int x) { switch (x) { case 1 -> g(); default -> h(); } } }",
	} {
		t.Run(name, func(ctx context.Context, t *testctx.T) {
			_, err := Parse(ctx, "A.java", []byte(src))
			var unsupported *UnsupportedError
			require.True(t, errors.As(err, &unsupported), "%v", err)
			require.Equal(t, "A.java", unsupported.File)
		})
	}
}

func (ParseSuite) TestMustParsePanics(ctx context.Context, t *testctx.T) {
	require.Panics(t, func() {
		MustParse("class {")
	})
}
