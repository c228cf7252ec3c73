package main

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vito/jfmt/pkg/describe"
	"github.com/vito/jfmt/pkg/ioctx"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func methodsCmd(fs afero.Fs) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "methods FILE",
		Short: "Describe the methods declared in a Java file",
		Example: `  jfmt methods src/draw/Figures.java
  jfmt methods -o yaml src/draw/Figures.java`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := describe.Load(cmd.Context(), fs, args[0])
			if err != nil {
				return err
			}

			stdout := ioctx.StdoutFromContext(cmd.Context())
			switch output {
			case "yaml":
				if len(unit.Methods) == 0 {
					_, err := io.WriteString(stdout, "[]\n")
					return err
				}
				out, err := yaml.Marshal(unit.Methods)
				if err != nil {
					return err
				}
				_, err = stdout.Write(out)
				return err
			case "text":
				_, err := io.WriteString(stdout, renderMethods(unit, isTerminal(stdout)))
				return err
			}
			return fmt.Errorf("unknown output format %q (want text or yaml)", output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}

// renderMethods lays out one block per method, separated by rules as wide
// as the widest signature.
func renderMethods(unit *describe.Unit, styled bool) string {
	var blocks []string
	width := 0
	for _, m := range unit.Methods {
		var lines []string
		lines = append(lines, nameStyle.Render(m.FullName())+" "+
			dimStyle.Render(fmt.Sprintf("%s:%d", m.Path, m.Line)))
		field := func(label string, values ...string) {
			if len(values) == 0 {
				return
			}
			lines = append(lines, "  "+labelStyle.Render(fmt.Sprintf("%-10s", label))+strings.Join(values, ", "))
		}
		field("modifiers", m.Modifiers...)
		field("returns", m.ReturnType)
		field("params", m.Params...)
		field("throws", m.Throws...)

		for _, l := range lines {
			width = max(width, ansi.StringWidth(l))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	rule := "\n" + ruleStyle.Render(strings.Repeat("─", width)) + "\n"
	out := strings.Join(blocks, rule)
	if out != "" {
		out += "\n"
	}
	if !styled {
		out = ansi.Strip(out)
	}
	return out
}

func callsCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "calls FILE METHOD",
		Short: "List the statements a method runs",
		Long: `List the expression statements reachable from the body of METHOD,
descending through blocks, loops, conditionals, try statements and
switches. When METHOD is overloaded the last declaration is used.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := describe.Load(cmd.Context(), fs, args[0])
			if err != nil {
				return err
			}
			calls, err := unit.CalledMethods(args[1])
			if err != nil {
				return err
			}
			stdout := ioctx.StdoutFromContext(cmd.Context())
			for _, call := range calls {
				if _, err := fmt.Fprintln(stdout, call); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
