// Package jfmt formats Java source files in the canonical layout produced
// by the printer.
package jfmt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/vito/jfmt/pkg/ioctx"
	"github.com/vito/jfmt/pkg/javaparse"
	"github.com/vito/jfmt/pkg/printer"
)

// Mode selects what Files and Report do with formatted output.
type Mode int

const (
	// ModePrint writes formatted sources to stdout.
	ModePrint Mode = iota
	// ModeWrite rewrites changed files in place.
	ModeWrite
	// ModeList prints the paths of files whose formatting differs.
	ModeList
	// ModeDiff prints a line diff for files whose formatting differs.
	ModeDiff
)

func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeWrite:
		return "write"
	case ModeList:
		return "list"
	case ModeDiff:
		return "diff"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Source parses src and prints it according to cfg.
func Source(ctx context.Context, filename string, src []byte, cfg Config) (string, error) {
	tree, err := javaparse.Parse(ctx, filename, src)
	if err != nil {
		return "", err
	}
	return printer.Print(tree, cfg.PrinterOptions())
}

// Result is the outcome of formatting one file.
type Result struct {
	Path      string
	Original  string
	Formatted string
	Changed   bool
	Err       error
}

// Expand resolves paths into the Java files to format. Directories are
// walked for *.java files not matched by cfg.Exclude; files named
// explicitly are always kept.
func Expand(fs afero.Fs, paths []string, cfg Config) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := fs.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = afero.Walk(fs, path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if p != path && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(p) != ".java" || cfg.Excluded(p) {
				return nil
			}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}
	}
	return files, nil
}

// Files formats every Java file under paths concurrently. Results come
// back in the order Expand lists them. In ModeWrite changed files are
// rewritten with their original permissions.
//
// A file that fails to read, parse or print records its error in its
// Result and does not stop the others.
func Files(ctx context.Context, fs afero.Fs, paths []string, cfg Config, mode Mode) ([]Result, error) {
	files, err := Expand(fs, paths, cfg)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		eg.Go(func() error {
			results[i] = formatFile(ctx, fs, path, cfg, mode)
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatFile(ctx context.Context, fs afero.Fs, path string, cfg Config, mode Mode) Result {
	res := Result{Path: path}

	info, err := fs.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Original = string(src)

	res.Formatted, res.Err = Source(ctx, path, src, cfg)
	if res.Err != nil {
		slog.Debug("format failed", "path", path, "err", res.Err)
		return res
	}
	res.Changed = res.Formatted != res.Original
	slog.Debug("formatted", "path", path, "changed", res.Changed)

	if mode == ModeWrite && res.Changed {
		if err := afero.WriteFile(fs, path, []byte(res.Formatted), info.Mode().Perm()); err != nil {
			res.Err = fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return res
}

// Report writes results to the stdout and stderr carried by ctx, as mode
// dictates. ModeWrite prints only errors. It returns the number of files
// that failed.
func Report(ctx context.Context, results []Result, mode Mode, colored bool) int {
	stdout := ioctx.StdoutFromContext(ctx)
	stderr := ioctx.StderrFromContext(ctx)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintln(stderr, res.Err)
			continue
		}
		switch mode {
		case ModePrint:
			io.WriteString(stdout, res.Formatted)
		case ModeList:
			if res.Changed {
				fmt.Fprintln(stdout, res.Path)
			}
		case ModeDiff:
			if res.Changed {
				io.WriteString(stdout, Diff(res.Path, res.Original, res.Formatted, colored))
			}
		}
	}
	return failed
}
