package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/config"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/driver"
	"github.com/rm-a0/sol25/internal/xmlast"
)

var (
	trace   bool
	dumpAST bool
)

var runCmd = &cobra.Command{
	Use:   "run [ast-file]",
	Short: "Run a SOL25 program from its XML AST",
	Long: `Execute a SOL25 program whose AST has already been produced by
the XML front end.

Examples:
  # Run a program from a file
  sol25 run program.xml

  # Run a program piped in on stdin
  cat program.xml | sol25 run -

  # Trace every message send to stderr
  sol25 run --trace program.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&trace, "trace", false, "trace every message send to stderr")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the loaded AST (as JSON) before running")
}

func runProgram(c *cobra.Command, args []string) error {
	runID := uuid.New().String()

	var input *os.File
	switch {
	case len(args) == 0, args[0] == "-":
		input = os.Stdin
	default:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		input = f
	}

	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		cfg = loaded
	}
	effectiveTrace, effectiveDumpAST := cfg.Trace, cfg.DumpAST
	if c.Flags().Changed("trace") {
		effectiveTrace = trace
	}
	if c.Flags().Changed("dump-ast") {
		effectiveDumpAST = dumpAST
	}

	program, err := xmlast.Load(input)
	if err != nil {
		return reportAndExit(runID, err)
	}

	if effectiveDumpAST {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(program)
	}

	opts := driver.Options{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Trace:  effectiveTrace,
	}

	if err := runWithRecover(program, opts); err != nil {
		return reportAndExit(runID, err)
	}
	return nil
}

// runWithRecover converts a panic deep in the evaluator (a defect, not
// a language-level error) into an InternalError rather than crashing
// the process with a Go stack trace — every other failure mode in
// spec.md's taxonomy is a typed *diag.Error returned normally.
func runWithRecover(program *ast.Program, opts driver.Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diag.Newf(diag.InternalError, "panic", "%v", r)
		}
	}()
	return driver.Run(program, opts)
}

func reportAndExit(runID string, err error) error {
	cat := diag.InternalError
	if de, ok := diag.As(err); ok {
		cat = de.Category
	}
	fmt.Fprintf(os.Stderr, "sol25[%s]: %s\n", runID, err)
	os.Exit(cat.ExitCode())
	return nil
}
