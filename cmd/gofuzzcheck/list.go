package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofuzzcheck/gofuzzcheck/registry"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names of every registered test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range registry.Tests() {
				fmt.Fprintln(cmd.OutOrStdout(), t.Name())
			}
			return nil
		},
	}
}
