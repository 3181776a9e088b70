// Package cli wires the mergeflow commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command. Running mergeflow with no
// subcommand performs the promotion itself.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mergeflow",
		Short: "Mergeflow promotes the current branch to a shared target branch via a staging branch",
		Long: `Mergeflow automates a three-stage branch promotion: merge the current
branch into its staging branch, merge staging into the shared target branch,
and push each stage to the remote. On any failure it returns you to the
branch you started on.

Do not run two invocations against the same repository at once; each step
mutates the working tree and current branch that the next step depends on.`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts := addPromoteFlags(rootCmd)
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runPromote(cmd, opts)
	}

	rootCmd.AddCommand(newPromoteCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
