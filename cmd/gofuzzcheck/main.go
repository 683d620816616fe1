// Command gofuzzcheck is the thin CLI wrapper spec §6 allows a
// collaborator to layer over the core: it owns no generator, property,
// or outcome logic, only flag parsing and wiring into package harness.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gofuzzcheck",
		Short:         "Run property-based tests driven by a coverage-guided fuzzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newRunCommand())
	return cmd
}
