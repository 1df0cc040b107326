package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ltiverify",
		Short: "ltiverify - verify OAuth 1.0 signed LTI launches",
		Long: `ltiverify validates LTI 1.x launch parameters the same way the launch
endpoint does. It can also print the signature base string of a launch,
which is the usual place consumer and provider disagree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newBaseStringCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
