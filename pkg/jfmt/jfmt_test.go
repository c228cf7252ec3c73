package jfmt

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/jfmt/pkg/ioctx"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type JfmtSuite struct{}

func TestJfmt(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(JfmtSuite{})
}

const (
	messy     = "class A{int x; // count\n}"
	formatted = "class A {\n\n    int x;\n    // count\n}\n"
)

func memFs(t *testctx.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o640))
	}
	return fs
}

func (JfmtSuite) TestSource(ctx context.Context, t *testctx.T) {
	out, err := Source(ctx, "A.java", []byte(messy), DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, formatted, out)

	cfg := DefaultConfig()
	cfg.EmitComments = false
	cfg.Indent = "  "
	out, err = Source(ctx, "A.java", []byte(messy), cfg)
	require.NoError(t, err)
	require.Equal(t, "class A {\n\n  int x;\n}\n", out)

	_, err = Source(ctx, "A.java", []byte("class {"), DefaultConfig())
	require.Error(t, err)
}

func (JfmtSuite) TestLoadConfig(ctx context.Context, t *testctx.T) {
	t.Run("defaults for unset keys", func(ctx context.Context, t *testctx.T) {
		fs := memFs(t, map[string]string{
			"/p/jfmt.toml": `exclude = ["*_gen.java"]`,
		})
		cfg, err := LoadConfig(fs, "/p/jfmt.toml")
		require.NoError(t, err)
		require.True(t, cfg.EmitComments)
		require.Equal(t, "    ", cfg.Indent)
		require.Equal(t, []string{"*_gen.java"}, cfg.Exclude)
	})

	t.Run("explicit values", func(ctx context.Context, t *testctx.T) {
		fs := memFs(t, map[string]string{
			"/p/jfmt.toml": "emit_comments = false\nindent = \"\\t\"\n",
		})
		cfg, err := LoadConfig(fs, "/p/jfmt.toml")
		require.NoError(t, err)
		require.False(t, cfg.EmitComments)
		require.Equal(t, "\t", cfg.Indent)
	})

	t.Run("invalid", func(ctx context.Context, t *testctx.T) {
		fs := memFs(t, map[string]string{
			"/bad/jfmt.toml":    `indent = "xx"`,
			"/broken/jfmt.toml": `indent = `,
			"/glob/jfmt.toml":   `exclude = ["[a"]`,
		})
		for _, path := range []string{"/bad/jfmt.toml", "/broken/jfmt.toml", "/glob/jfmt.toml"} {
			_, err := LoadConfig(fs, path)
			assert.ErrorContains(t, err, path)
		}
	})
}

func (JfmtSuite) TestFindConfig(ctx context.Context, t *testctx.T) {
	fs := memFs(t, map[string]string{
		"/repo/jfmt.toml":       `indent = "  "`,
		"/repo/src/main/A.java": messy,
		"/other/.git/HEAD":      "ref: main",
		"/other/sub/B.java":     messy,
		"/jfmt.toml":            `indent = "\t"`,
		"/loose/deeper/C.java":  messy,
	})

	path, cfg, err := FindConfig(fs, "/repo/src/main")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/repo", ConfigFile), path)
	require.Equal(t, "  ", cfg.Indent)

	path, cfg, err = FindConfig(fs, "/other/sub")
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, DefaultConfig(), cfg)

	path, cfg, err = FindConfig(fs, "/loose/deeper")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/", ConfigFile), path)
	require.Equal(t, "\t", cfg.Indent)
}

func (JfmtSuite) TestWithEnv(ctx context.Context, t *testctx.T) {
	env := map[string]string{
		"JFMT_EMIT_COMMENTS": "false",
		"JFMT_INDENT":        "\t",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := DefaultConfig().WithEnv(lookup)
	require.NoError(t, err)
	require.False(t, cfg.EmitComments)
	require.Equal(t, "\t", cfg.Indent)

	cfg, err = DefaultConfig().WithEnv(func(string) (string, bool) { return "", false })
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	env["JFMT_EMIT_COMMENTS"] = "maybe"
	_, err = DefaultConfig().WithEnv(lookup)
	require.Error(t, err)
}

func (JfmtSuite) TestFiles(ctx context.Context, t *testctx.T) {
	files := map[string]string{
		"/src/a/A.java":       messy,
		"/src/a/Tidy.java":    formatted,
		"/src/b/Gen_gen.java": messy,
		"/src/b/Broken.java":  "class {",
		"/src/b/notes.txt":    "not java",
		"/src/.hidden/H.java": messy,
	}
	cfg := DefaultConfig()
	cfg.Exclude = []string{"*_gen.java"}

	t.Run("list", func(ctx context.Context, t *testctx.T) {
		fs := memFs(t, files)
		results, err := Files(ctx, fs, []string{"/src"}, cfg, ModeList)
		require.NoError(t, err)

		var paths []string
		for _, r := range results {
			paths = append(paths, r.Path)
		}
		require.Equal(t, []string{"/src/a/A.java", "/src/a/Tidy.java", "/src/b/Broken.java"}, paths)

		require.True(t, results[0].Changed)
		require.False(t, results[1].Changed)
		require.Error(t, results[2].Err)

		var stdout, stderr bytes.Buffer
		ctx = ioctx.StdoutToContext(ctx, &stdout)
		ctx = ioctx.StderrToContext(ctx, &stderr)
		failed := Report(ctx, results, ModeList, false)
		require.Equal(t, 1, failed)
		require.Equal(t, "/src/a/A.java\n", stdout.String())
		require.Contains(t, stderr.String(), "Broken.java")

		unchanged, err := afero.ReadFile(fs, "/src/a/A.java")
		require.NoError(t, err)
		require.Equal(t, messy, string(unchanged))
	})

	t.Run("write", func(ctx context.Context, t *testctx.T) {
		fs := memFs(t, files)
		results, err := Files(ctx, fs, []string{"/src/a", "/src/b/Gen_gen.java"}, cfg, ModeWrite)
		require.NoError(t, err)
		require.Len(t, results, 3)

		for _, path := range []string{"/src/a/A.java", "/src/b/Gen_gen.java"} {
			out, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			require.Equal(t, formatted, string(out), path)

			info, err := fs.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0o640), info.Mode().Perm())
		}
	})

	t.Run("missing path", func(ctx context.Context, t *testctx.T) {
		_, err := Files(ctx, memFs(t, files), []string{"/nope"}, cfg, ModePrint)
		require.Error(t, err)
	})
}

func (JfmtSuite) TestReportPrint(ctx context.Context, t *testctx.T) {
	var stdout bytes.Buffer
	ctx = ioctx.StdoutToContext(ctx, &stdout)
	failed := Report(ctx, []Result{
		{Path: "A.java", Formatted: "class A {\n}\n"},
		{Path: "B.java", Formatted: "class B {\n}\n", Changed: true},
	}, ModePrint, false)
	require.Zero(t, failed)
	require.Equal(t, "class A {\n}\nclass B {\n}\n", stdout.String())
}

func (JfmtSuite) TestDiff(ctx context.Context, t *testctx.T) {
	before := "class A {\nint x;\n\n}\n"
	after := "class A {\n\n    int x;\n}\n"

	require.Equal(t, "--- A.java\n"+
		"+++ A.java (formatted)\n"+
		" class A {\n"+
		"-int x;\n"+
		" \n"+
		"+    int x;\n"+
		" }\n", Diff("A.java", before, after, false))

	colored := Diff("A.java", before, after, true)
	require.Contains(t, colored, "\x1b[31m-int x;")
	require.Contains(t, colored, "\x1b[32m+    int x;")

	require.Equal(t, "--- A.java\n+++ A.java (formatted)\n class A {\n }\n",
		Diff("A.java", "class A {\n}\n", "class A {\n}\n", false))
}

func TestExcluded(t *testing.T) {
	cfg := Config{Exclude: []string{"*_gen.java", "Legacy*.java"}}
	assert.True(t, cfg.Excluded("/x/y/Foo_gen.java"))
	assert.True(t, cfg.Excluded("LegacyThing.java"))
	assert.False(t, cfg.Excluded("/x/gen/Foo.java"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "diff", ModeDiff.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
