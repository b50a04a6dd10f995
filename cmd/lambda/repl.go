package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/parser"
	"github.com/egarof00/PLGroup/pkg/printer"
)

const (
	promptMain = "λ> "
	promptCont = ".. "
	replBanner = "lambda REPL. :ast shows the last term as JSON, :quit exits."
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			histPath := a.cfg.HistoryPath()
			if histPath != "" {
				if f, err := os.Open(histPath); err == nil {
					_, _ = ln.ReadHistory(f)
					_ = f.Close()
				}
				defer func() {
					if f, err := os.Create(histPath); err == nil {
						_, _ = ln.WriteHistory(f)
						_ = f.Close()
					}
				}()
			}

			fmt.Fprintln(a.stdout, replBanner)
			s := &replSession{app: a}
			return s.loop(ln, ln.AppendHistory)
		},
	}
}

// prompter is the part of liner.State the session reads from.
type prompter interface {
	Prompt(prompt string) (string, error)
}

type replSession struct {
	app  *app
	last ast.Term
}

func (s *replSession) loop(in prompter, remember func(string)) error {
	for {
		src, ok := readByParseProbe(in, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(s.app.stdout)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		if s.handle(src) {
			return nil
		}
		if remember != nil {
			remember(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// handle runs one complete input and reports whether the session should end.
func (s *replSession) handle(src string) bool {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit", ":q":
			return true
		case ":ast":
			if s.last == nil {
				fmt.Fprintln(s.app.stderr, "no term entered yet")
				return false
			}
			data, err := ast.MarshalTermIndent(s.last)
			if err != nil {
				fmt.Fprintln(s.app.stderr, err)
				return false
			}
			fmt.Fprintln(s.app.stdout, string(data))
		default:
			fmt.Fprintln(s.app.stderr, "unknown command. Type :quit to exit.")
		}
		return false
	}

	term, err := parser.Parse(src)
	if err != nil {
		fmt.Fprintln(s.app.stderr, err)
		return false
	}
	s.last = term
	result, err := s.app.interp.Evaluate(term)
	if err != nil {
		fmt.Fprintln(s.app.stderr, err)
		return false
	}
	s.app.printResult(printer.Render(result))
	return false
}

// readByParseProbe keeps prompting while the buffered input parses as an
// incomplete term. ok is false at end of input.
func readByParseProbe(in prompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := in.Prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			// Ctrl-C abandons the current input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := parser.Parse(src); perr != nil && parser.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}
