package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gofuzzcheck/gofuzzcheck/fuzzconfig"
	"github.com/gofuzzcheck/gofuzzcheck/fuzzmetrics"
	"github.com/gofuzzcheck/gofuzzcheck/harness"
	"github.com/gofuzzcheck/gofuzzcheck/registry"
)

func newRunCommand() *cobra.Command {
	var (
		persistent  bool
		handshakeFD int
	)
	cmd := &cobra.Command{
		Use:   "run <test-name>",
		Short: "Run one registered test against stdin once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags *pflag.FlagSet = cmd.Flags()

			cfg := fuzzconfig.Load()
			if flags.Changed("persistent") {
				cfg.Persistent = persistent
			}
			if flags.Changed("handshake-fd") {
				cfg.HandshakeFD = handshakeFD
			}

			testName := args[0]
			if _, ok := registry.Lookup(testName); !ok {
				return &unknownTestError{name: testName}
			}

			res, err := harness.RunOnceWithConfig(cfg, testName, os.Stdin, os.Stderr, fuzzmetrics.Noop)
			if err != nil {
				return err
			}
			os.Exit(int(res.ExitCode))
			return nil
		},
	}
	cmd.Flags().BoolVar(&persistent, "persistent", false, "run in AFL-style persistent mode")
	cmd.Flags().IntVar(&handshakeFD, "handshake-fd", 0, "file descriptor to write the persistent-mode handshake byte to")
	return cmd
}

type unknownTestError struct{ name string }

func (e *unknownTestError) Error() string {
	return "gofuzzcheck: no test registered with name " + e.name
}
