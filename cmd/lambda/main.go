package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/egarof00/PLGroup/pkg/driver"
	"github.com/egarof00/PLGroup/pkg/interpreter"
)

const cliToolVersion = "lambda 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// app is the state shared by every subcommand once configuration is loaded.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	color      bool
	maxSteps   uint64

	cfg    *driver.Config
	logger *slog.Logger
	interp *interpreter.Interpreter
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "lambda [source]",
		Short: "Evaluate lambda calculus terms",
		Long: `lambda evaluates terms of a small call-by-name lambda calculus with numbers,
lists, conditionals, let and letrec, and prints the resulting term.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to lambda.yml (default: nearest lambda.yml above the working directory)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.color, "color", true, "highlight results")
	flags.Uint64Var(&a.maxSteps, "max-steps", 0, "abort after this many reduction steps (0 = unbounded)")

	evalCmd := newEvalCmd(a)
	rootCmd.RunE = evalCmd.RunE
	rootCmd.Flags().AddFlagSet(evalCmd.Flags())

	rootCmd.AddCommand(
		evalCmd,
		newReplCmd(a),
		newCheckCmd(a),
		newMCPCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			// Printing the version must not depend on a readable lambda.yml.
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(a.stdout, cliToolVersion)
			},
		},
	)
	return rootCmd
}

// setup resolves configuration, applies flag overrides and builds the
// interpreter.
func (a *app) setup(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, err := driver.ResolveConfig(a.configPath, wd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = a.maxSteps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MaxStackBytes > 0 {
		debug.SetMaxStack(cfg.MaxStackBytes)
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(a.stderr)
	a.interp = interpreter.New(
		interpreter.WithLogger(a.logger),
		interpreter.WithStepLimit(cfg.MaxSteps),
	)
	if cfg.Path != "" {
		a.logger.Debug("loaded config", "path", cfg.Path)
	}
	return nil
}
