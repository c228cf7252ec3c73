package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vito/jfmt/pkg/ioctx"
	"github.com/vito/jfmt/pkg/jfmt"
	"github.com/vito/jfmt/pkg/lsp"
)

// Config holds the command-line configuration
type Config struct {
	Debug      bool
	Write      bool
	List       bool
	Diff       bool
	NoComments bool
	Indent     string
	LSP        bool
	LSPLogFile string
}

func main() {
	ctx := ioctx.WithStdio(context.Background(), os.Stdout, os.Stderr)
	if err := fang.Execute(ctx, newRootCmd(afero.NewOsFs()),
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "jfmt [flags] [path...]",
		Short: "Java source formatter",
		Long: `jfmt prints Java source in a canonical layout.

By default the formatted source is printed to stdout. With no paths,
jfmt formats standard input. Directories are searched for .java files.

Settings are read from the nearest jfmt.toml, then from JFMT_EMIT_COMMENTS
and JFMT_INDENT, then from flags.`,
		Example: `  # Format a file and print to stdout
  jfmt Main.java

  # Rewrite every file under src/ in place
  jfmt -w src

  # Show what would change
  jfmt -d src

  # Serve formatting to an editor
  jfmt --lsp`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(ioctx.StderrFromContext(cmd.Context()), cfg.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.LSP {
				return runLSP(cmd.Context(), fs, cfg)
			}
			if len(args) == 0 {
				return runStdin(cmd, fs, cfg)
			}
			return runFormat(cmd, fs, cfg, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "D", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "Write result to source file instead of stdout")
	rootCmd.Flags().BoolVarP(&cfg.List, "list", "l", false, "List files whose formatting differs")
	rootCmd.Flags().BoolVarP(&cfg.Diff, "diff", "d", false, "Display diffs instead of rewriting files")
	rootCmd.Flags().BoolVar(&cfg.NoComments, "no-comments", false, "Drop comments from the output")
	rootCmd.Flags().StringVar(&cfg.Indent, "indent", "", "Indentation unit (default four spaces)")
	rootCmd.Flags().BoolVar(&cfg.LSP, "lsp", false, "Run in Language Server Protocol mode")
	rootCmd.Flags().StringVar(&cfg.LSPLogFile, "lsp-log-file", "", "Path to LSP log file (stderr if not specified)")

	rootCmd.AddCommand(
		methodsCmd(fs),
		callsCmd(fs),
		astCmd(fs),
	)

	return rootCmd
}

// setupLogging installs a text logger writing to w as the default and
// returns it.
func setupLogging(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// formatConfig layers jfmt.toml, the environment and flags.
func formatConfig(cmd *cobra.Command, fs afero.Fs, cfg Config, dir string) (jfmt.Config, error) {
	path, fc, err := jfmt.FindConfig(fs, dir)
	if err != nil {
		return fc, err
	}
	if path != "" {
		slog.Debug("using config", "path", path)
	}

	fc, err = fc.WithEnv(nil)
	if err != nil {
		return fc, err
	}

	if cmd.Flags().Changed("indent") {
		fc.Indent = cfg.Indent
	}
	if cfg.NoComments {
		fc.EmitComments = false
	}
	return fc, fc.Validate()
}

func runStdin(cmd *cobra.Command, fs afero.Fs, cfg Config) error {
	if cfg.Write || cfg.List || cfg.Diff {
		return fmt.Errorf("-w, -l and -d need at least one path")
	}

	fc, err := formatConfig(cmd, fs, cfg, ".")
	if err != nil {
		return err
	}

	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	out, err := jfmt.Source(cmd.Context(), "<stdin>", src, fc)
	if err != nil {
		return err
	}

	_, err = io.WriteString(ioctx.StdoutFromContext(cmd.Context()), out)
	return err
}

func runFormat(cmd *cobra.Command, fs afero.Fs, cfg Config, paths []string) error {
	ctx := cmd.Context()

	dir := paths[0]
	if info, err := fs.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	fc, err := formatConfig(cmd, fs, cfg, dir)
	if err != nil {
		return err
	}

	mode := jfmt.ModePrint
	switch {
	case cfg.Write:
		mode = jfmt.ModeWrite
	case cfg.Diff:
		mode = jfmt.ModeDiff
	case cfg.List:
		mode = jfmt.ModeList
	}

	results, err := jfmt.Files(ctx, fs, paths, fc, mode)
	if err != nil {
		return err
	}

	report := mode
	if mode == jfmt.ModeWrite {
		switch {
		case cfg.Diff:
			report = jfmt.ModeDiff
		case cfg.List:
			report = jfmt.ModeList
		}
	}

	if failed := jfmt.Report(ctx, results, report, isTerminal(ioctx.StdoutFromContext(ctx))); failed > 0 {
		return fmt.Errorf("%d of %d files could not be formatted", failed, len(results))
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runLSP serves the language server over stdin and stdout. Logs go to
// --lsp-log-file when set; stdout belongs to the protocol.
func runLSP(ctx context.Context, fs afero.Fs, cfg Config) error {
	logger := slog.Default()
	if cfg.LSPLogFile != "" {
		logFile, err := os.Create(cfg.LSPLogFile)
		if err != nil {
			return fmt.Errorf("open lsp log: %w", err)
		}
		defer logFile.Close() //nolint:errcheck
		logger = setupLogging(logFile, cfg.Debug)
	}

	handler := lsp.NewHandler(fs)
	srv := jrpc2.NewServer(handler, &jrpc2.ServerOptions{
		AllowPush: true,
		Logger:    func(text string) { logger.Debug(text) },
	})
	handler.SetServer(srv)

	logger.InfoContext(ctx, "serving LSP")
	srv.Start(channel.LSP(os.Stdin, os.Stdout))

	err := srv.Wait()
	logger.InfoContext(ctx, "LSP server closed", "error", err)
	return nil
}
