package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vito/jfmt/pkg/ast"
	"github.com/vito/jfmt/pkg/ioctx"
	"github.com/vito/jfmt/pkg/javaparse"
)

func astCmd(fs afero.Fs) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Show the syntax tree of a Java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			tree, err := javaparse.Parse(cmd.Context(), args[0], src)
			if err != nil {
				return err
			}

			out := ast.Outline(tree.Root)
			if raw {
				out = ast.Dump(tree.Root) + "\n"
			}
			_, err = io.WriteString(ioctx.StdoutFromContext(cmd.Context()), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Dump every field instead of the kind outline")

	return cmd
}
