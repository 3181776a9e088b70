package cli

import (
	"github.com/spf13/cobra"

	"mergeflow.dev/mergeflow/internal/config"
	"mergeflow.dev/mergeflow/internal/git"
	"mergeflow.dev/mergeflow/internal/output"
	"mergeflow.dev/mergeflow/internal/prompt"
	"mergeflow.dev/mergeflow/internal/workflow"
)

// promoteOptions holds the promote flag values. The same flag set is
// registered on both the root command and the promote subcommand, so bare
// `mergeflow` runs the promotion directly.
type promoteOptions struct {
	commitMessage string
	stagingBranch string
	targetBranch  string
	remote        string
	dryRun        bool
	whatIf        bool
}

// addPromoteFlags registers the promote flags on a command
func addPromoteFlags(cmd *cobra.Command) *promoteOptions {
	opts := &promoteOptions{}
	cmd.Flags().StringVarP(&opts.commitMessage, "commit-message", "m", "", "Commit uncommitted changes with this message before promoting")
	cmd.Flags().StringVar(&opts.stagingBranch, "staging-branch", "", "Use this staging branch instead of <branch>"+config.DefaultStagingSuffix)
	cmd.Flags().StringVar(&opts.targetBranch, "target-branch", "", "Promote into this branch instead of "+config.DefaultTargetBranch)
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Push to this remote instead of "+config.DefaultRemote)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report the commands that would run without executing them")
	cmd.Flags().BoolVar(&opts.whatIf, "what-if", false, "Alias for --dry-run")
	return opts
}

// runPromote executes the promotion workflow with the given options
func runPromote(cmd *cobra.Command, opts *promoteOptions) error {
	log := output.NewSplog()
	defer func() { _ = log.Close() }()

	client, err := git.Open("", log)
	if err != nil {
		return err
	}

	cfg, err := config.Load(client.Root())
	if err != nil {
		log.Warn("ignoring unreadable config: %v", err)
		cfg = nil
	}

	client.SetDryRun(opts.dryRun || opts.whatIf)

	req := workflow.Request{
		CommitMessage: opts.commitMessage,
		StagingBranch: opts.stagingBranch,
		TargetBranch:  opts.targetBranch,
		Remote:        opts.remote,
		DryRun:        opts.dryRun || opts.whatIf,
	}

	eng := workflow.NewEngine(client, prompt.NewConfirmer(log), log)
	return eng.Run(cmd.Context(), req, cfg)
}

// newPromoteCmd creates the promote command
func newPromoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Merge the current branch into staging, then staging into the target branch",
		Long: `Merge the current branch into its staging branch, merge staging into the
target branch, and push each stage to the remote.

The staging branch is <branch><suffix> unless overridden. Values come from
flags first, then ` + config.FileName + `, then the defaults
(` + config.DefaultTargetBranch + `, ` + config.DefaultStagingSuffix + `, ` + config.DefaultRemote + `).`,
		Args: cobra.NoArgs,
	}

	opts := addPromoteFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runPromote(cmd, opts)
	}

	return cmd
}
