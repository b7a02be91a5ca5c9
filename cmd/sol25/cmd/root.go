package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set by build flags — same shape as the
// teacher's cmd/dwscript/cmd/root.go.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sol25",
	Short: "SOL25 interpreter",
	Long: `sol25 runs programs written in SOL25, a tiny purely
object-oriented, Smalltalk-flavored language, from an already-parsed
XML Abstract Syntax Tree.

It implements the core execution engine only: the object/value model,
message dispatch, block-and-closure semantics, and the built-in class
library (Object, Integer, String, True, False, Nil, Block). The XML
front end that produces the AST is treated as an external collaborator
— see "sol25 run --help" for how to point it at one.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults for --trace/--dump-ast)")
}

var configPath string

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
