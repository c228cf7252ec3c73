package describe

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type DescribeSuite struct{}

func TestDescribe(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(DescribeSuite{})
}

const figures = `package draw;

public class Figures {
  // the figures
  private java.util.List<Figure> figures;

  /** Returns the figures. */
  public java.util.List<Figure> getFigures() throws IllegalStateException {
    // refresh first
    refresh();

    return figures;
  }

  void substitute(String text, int limit) {
    int i = 0;
    log("start");
    try {
      open(text);
    } catch (Exception e) {
      recover(e);
    } finally {
      close();
    }
    while (i < limit) {
      if (i % 2 == 0) {
        even(i);
      } else
        odd(i);
      i++;
    }
    Runnable r = () -> hidden();
    return;
  }

  void substitute(String text) {
    substitute(text, 1);
  }

  abstract static class Shape {
    abstract double area();
  }
}
`

func load(ctx context.Context, t *testctx.T) *Unit {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/draw/Figures.java", []byte(figures), 0o644))
	unit, err := Load(ctx, fs, "/src/draw/Figures.java")
	require.NoError(t, err)
	return unit
}

func (DescribeSuite) TestLoad(ctx context.Context, t *testctx.T) {
	unit := load(ctx, t)
	require.Equal(t, "Figures", unit.Class)

	var names []string
	for _, m := range unit.Methods {
		names = append(names, m.FullName())
	}
	require.Equal(t, []string{
		"Figures.getFigures",
		"Figures.substitute",
		"Figures.substitute",
		"Figures.area",
	}, names)

	get := unit.Methods[0]
	require.Equal(t, "/src/draw/Figures.java", get.Path)
	require.Equal(t, []string{"public"}, get.Modifiers)
	require.Equal(t, "java.util.List<Figure>", get.ReturnType)
	require.Equal(t, []string{"IllegalStateException"}, get.Throws)
	require.Empty(t, get.Params)
	require.Equal(t, 8, get.Line)
	require.NotContains(t, get.Text, "Returns the figures")
	require.NotContains(t, get.Text, "refresh first")
}

func (DescribeSuite) TestTokens(ctx context.Context, t *testctx.T) {
	unit := load(ctx, t)

	get, ok := unit.Method("getFigures")
	require.True(t, ok)
	require.Equal(t, []string{"refresh();", "return figures;"}, get.Tokens())

	area, ok := unit.Method("area")
	require.True(t, ok)
	require.Empty(t, area.Tokens())
}

func (DescribeSuite) TestOverloadsLastWins(ctx context.Context, t *testctx.T) {
	unit := load(ctx, t)
	m, ok := unit.Method("substitute")
	require.True(t, ok)
	require.Equal(t, []string{"String text"}, m.Params)

	_, ok = unit.Method("missing")
	require.False(t, ok)
}

func (DescribeSuite) TestCalledMethods(ctx context.Context, t *testctx.T) {
	unit := load(ctx, t)

	t.Run("last overload", func(ctx context.Context, t *testctx.T) {
		calls, err := unit.CalledMethods("substitute")
		require.NoError(t, err)
		require.Equal(t, []string{"substitute(text, 1);"}, calls)
	})

	t.Run("nested statements", func(ctx context.Context, t *testctx.T) {
		calls, err := unit.CalledMethods("getFigures")
		require.NoError(t, err)
		require.Equal(t, []string{"refresh();"}, calls)
	})

	t.Run("abstract", func(ctx context.Context, t *testctx.T) {
		calls, err := unit.CalledMethods("area")
		require.NoError(t, err)
		require.Empty(t, calls)
	})

	t.Run("missing", func(ctx context.Context, t *testctx.T) {
		_, err := unit.CalledMethods("nope")
		require.True(t, errors.Is(err, ErrMethodNotFound))
	})
}

func (DescribeSuite) TestCalledMethodsDescends(ctx context.Context, t *testctx.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, `C:\src\Walk.java`, []byte(`class Walk {
  void run(int limit) {
    int i = 0;
    log("start");
    try {
      open();
    } catch (Exception e) {
      recover(e);
    } finally {
      close();
    }
    while (i < limit) {
      if (i % 2 == 0) {
        even(i);
      } else
        odd(i);
      i++;
    }
    Runnable r = () -> hidden();
  }
}`), 0o644))

	unit, err := Load(ctx, fs, `C:\src\Walk.java`)
	require.NoError(t, err)
	require.Equal(t, "Walk", unit.Class)

	calls, err := unit.CalledMethods("run")
	require.NoError(t, err)
	require.Equal(t, []string{
		"int i = 0;",
		`log("start");`,
		"open();",
		"recover(e);",
		"close();",
		"even(i);",
		"odd(i);",
		"i++;",
		"Runnable r = () -> hidden();",
	}, calls)
}

func (DescribeSuite) TestInvalidPaths(ctx context.Context, t *testctx.T) {
	for _, path := range []string{"", "   ", "Figures.java", "/src/Figures", "/src.d/Figures"} {
		t.Run(path, func(ctx context.Context, t *testctx.T) {
			_, err := Load(ctx, afero.NewMemMapFs(), path)
			var invalid *InvalidPathError
			require.True(t, errors.As(err, &invalid), "%v", err)
		})
	}

	name, err := ClassName(`C:\work\src\Figures.java`)
	require.NoError(t, err)
	require.Equal(t, "Figures", name)
}
