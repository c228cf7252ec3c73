// Package describe summarizes the methods declared in a Java source file.
package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/vito/jfmt/pkg/ast"
	"github.com/vito/jfmt/pkg/javaparse"
	"github.com/vito/jfmt/pkg/printer"
)

// ErrMethodNotFound is returned when a unit declares no method with the
// requested name.
var ErrMethodNotFound = errors.New("method not found")

// InvalidPathError reports a path that cannot name a Java source file.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid Java file path %q: %s", e.Path, e.Reason)
}

// Method describes one method declaration.
type Method struct {
	Path       string   `yaml:"path"`
	Class      string   `yaml:"class"`
	Name       string   `yaml:"name"`
	Line       int      `yaml:"line"`
	Modifiers  []string `yaml:"modifiers,omitempty"`
	ReturnType string   `yaml:"return_type"`
	Params     []string `yaml:"params,omitempty"`
	Throws     []string `yaml:"throws,omitempty"`

	// Text is the declaration printed without comments.
	Text string `yaml:"text"`
}

// FullName returns Class.method.
func (m *Method) FullName() string {
	return m.Class + "." + m.Name
}

// Tokens returns the lines of the method body, left-trimmed, with blank
// lines dropped. A method without a body has no tokens.
func (m *Method) Tokens() []string {
	start := strings.Index(m.Text, "{")
	end := strings.LastIndex(m.Text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil
	}
	body := m.Text[start+1 : end]
	var tokens []string
	for _, line := range strings.FieldsFunc(body, func(r rune) bool {
		return r == '\r' || r == '\n'
	}) {
		line = strings.TrimLeft(line, " \t\f\v")
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens
}

// Unit is a parsed source file and its method descriptions.
type Unit struct {
	Path    string
	Class   string
	Tree    *ast.Tree
	Methods []*Method

	decls map[*Method]*ast.MethodDecl
}

// ClassName derives the class name from a source path: the segment after
// the last path separator, up to the last dot.
func ClassName(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &InvalidPathError{Path: path, Reason: "missing value for path"}
	}
	slash := strings.LastIndex(path, `\`)
	if slash == -1 {
		slash = strings.LastIndex(path, "/")
	}
	dot := strings.LastIndex(path, ".")
	if dot == -1 || slash == -1 || dot <= slash {
		return "", &InvalidPathError{Path: path, Reason: "expected a directory and a file extension"}
	}
	return path[slash+1 : dot], nil
}

// Load reads and parses the file at path and describes every method
// declaration in document order, including those of nested and local
// classes.
func Load(ctx context.Context, fs afero.Fs, path string, opts ...javaparse.Option) (*Unit, error) {
	class, err := ClassName(path)
	if err != nil {
		return nil, err
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := javaparse.Parse(ctx, path, src, opts...)
	if err != nil {
		return nil, err
	}

	unit := &Unit{
		Path:  path,
		Class: class,
		Tree:  tree,
		decls: map[*Method]*ast.MethodDecl{},
	}

	var describeErr error
	ast.Walk(tree.Root, func(n ast.Node) bool {
		decl, ok := n.(*ast.MethodDecl)
		if !ok || describeErr != nil {
			return describeErr == nil
		}
		m, err := unit.describe(decl)
		if err != nil {
			describeErr = fmt.Errorf("describe %s: %w", decl.Name, err)
			return false
		}
		unit.Methods = append(unit.Methods, m)
		unit.decls[m] = decl
		return true
	})
	if describeErr != nil {
		return nil, describeErr
	}

	return unit, nil
}

func (u *Unit) print(n ast.Node) (string, error) {
	return printer.PrintNode(u.Tree, n, printer.Options{})
}

func (u *Unit) printAll(nodes []ast.Node) ([]string, error) {
	var out []string
	for _, n := range nodes {
		s, err := u.print(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (u *Unit) describe(decl *ast.MethodDecl) (*Method, error) {
	m := &Method{
		Path:  u.Path,
		Class: u.Class,
		Name:  decl.Name,
		Line:  decl.Range.Begin.Line,
	}
	for _, mod := range decl.Modifiers.List() {
		m.Modifiers = append(m.Modifiers, mod.Keyword())
	}

	var err error
	if m.ReturnType, err = u.print(decl.Type); err != nil {
		return nil, err
	}

	params := make([]ast.Node, len(decl.Params))
	for i, p := range decl.Params {
		params[i] = p
	}
	if m.Params, err = u.printAll(params); err != nil {
		return nil, err
	}

	throws := make([]ast.Node, len(decl.Throws))
	for i, t := range decl.Throws {
		throws[i] = t
	}
	if m.Throws, err = u.printAll(throws); err != nil {
		return nil, err
	}

	if m.Text, err = u.print(decl); err != nil {
		return nil, err
	}
	return m, nil
}

// Method returns the description of the method called name. When the
// name is overloaded the last declaration wins.
func (u *Unit) Method(name string) (*Method, bool) {
	var found *Method
	for _, m := range u.Methods {
		if m.Name == name {
			found = m
		}
	}
	return found, found != nil
}

// CalledMethods lists the expression statements reachable from the body
// of the named method, printed without comments, in source order.
//
// The trace descends through blocks, the try, catch and finally blocks
// of try statements, loop bodies, both arms of if statements, switch
// entries, labeled and synchronized statements. It does not enter lambda
// bodies, anonymous classes or local classes, since their statements do
// not run as part of the method itself.
func (u *Unit) CalledMethods(name string) ([]string, error) {
	m, ok := u.Method(name)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", u.Class, name, ErrMethodNotFound)
	}
	decl := u.decls[m]
	if decl.Body == nil {
		return nil, nil
	}

	var calls []string
	var trace func(s ast.Statement) error
	trace = func(s ast.Statement) error {
		switch s := s.(type) {
		case *ast.ExpressionStmt:
			text, err := u.print(s)
			if err != nil {
				return err
			}
			calls = append(calls, text)
		case *ast.BlockStmt:
			for _, stmt := range s.Stmts {
				if err := trace(stmt); err != nil {
					return err
				}
			}
		case *ast.TryStmt:
			if err := trace(s.Try); err != nil {
				return err
			}
			for _, c := range s.Catches {
				if err := trace(c.Body); err != nil {
					return err
				}
			}
			if s.Finally != nil {
				return trace(s.Finally)
			}
		case *ast.WhileStmt:
			return trace(s.Body)
		case *ast.DoStmt:
			return trace(s.Body)
		case *ast.ForStmt:
			return trace(s.Body)
		case *ast.ForeachStmt:
			return trace(s.Body)
		case *ast.IfStmt:
			if err := trace(s.Then); err != nil {
				return err
			}
			if s.Else != nil {
				return trace(s.Else)
			}
		case *ast.SwitchStmt:
			for _, e := range s.Entries {
				for _, stmt := range e.Stmts {
					if err := trace(stmt); err != nil {
						return err
					}
				}
			}
		case *ast.LabeledStmt:
			return trace(s.Stmt)
		case *ast.SynchronizedStmt:
			return trace(s.Body)
		}
		return nil
	}
	if err := trace(decl.Body); err != nil {
		return nil, err
	}
	return calls, nil
}
