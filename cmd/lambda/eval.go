package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/parser"
	"github.com/egarof00/PLGroup/pkg/printer"
)

func newEvalCmd(a *app) *cobra.Command {
	var sourceFile, astFile string

	cmd := &cobra.Command{
		Use:   "eval [source]",
		Short: "Evaluate a term and print the result",
		Long: `Evaluate a term given as an argument, read from a file with --file, decoded
from a JSON AST with --ast, or read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := a.readTerm(args, sourceFile, astFile)
			if err != nil {
				return err
			}
			result, err := a.interp.Evaluate(term)
			if err != nil {
				return err
			}
			a.printResult(printer.Render(result))
			return nil
		},
	}
	cmd.Flags().StringVarP(&sourceFile, "file", "f", "", "read source from a file")
	cmd.Flags().StringVar(&astFile, "ast", "", "read a JSON-encoded term from a file")
	return cmd
}

func (a *app) readTerm(args []string, sourceFile, astFile string) (ast.Term, error) {
	given := 0
	for _, set := range []bool{len(args) > 0, sourceFile != "", astFile != ""} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, errors.New("give at most one of a source argument, --file or --ast")
	}

	switch {
	case astFile != "":
		data, err := os.ReadFile(astFile)
		if err != nil {
			return nil, fmt.Errorf("read ast: %w", err)
		}
		return ast.UnmarshalTerm(data)
	case sourceFile != "":
		data, err := os.ReadFile(sourceFile)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		return parser.Parse(string(data))
	case len(args) == 1:
		return parser.Parse(args[0])
	default:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return parser.Parse(string(data))
	}
}

func (a *app) printResult(rendered string) {
	if a.cfg.Color {
		rendered = printer.Highlight(rendered)
	}
	fmt.Fprintln(a.stdout, rendered)
}
