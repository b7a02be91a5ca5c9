// Command sol25 runs SOL25 programs from their XML AST.
package main

import (
	"fmt"
	"os"

	"github.com/rm-a0/sol25/cmd/sol25/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
