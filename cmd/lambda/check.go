package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egarof00/PLGroup/pkg/driver"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <suite.yml>...",
		Short: "Run YAML scenario suites",
		Long: `Run one or more YAML suites. Each case gives a source and either the
expected rendering (expect) or a fragment of the expected error (error).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				suite, err := driver.LoadSuite(path)
				if err != nil {
					return err
				}
				results := suite.Run(a.interp.EvaluateAndRender)
				failures := driver.Failures(results)
				for _, res := range failures {
					fmt.Fprintf(a.stdout, "FAIL %s: %s\n  %s\n", suite.Name, res.Case.Source, res.Describe())
				}
				status := "ok"
				if len(failures) > 0 {
					status = "FAIL"
				}
				fmt.Fprintf(a.stdout, "%s\t%s\t%d/%d passed\n", status, suite.Name, len(results)-len(failures), len(results))
				failed += len(failures)
			}
			if failed > 0 {
				return fmt.Errorf("%d case(s) failed", failed)
			}
			return nil
		},
	}
}
