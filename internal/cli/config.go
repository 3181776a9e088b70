package cli

import (
	"github.com/spf13/cobra"

	"mergeflow.dev/mergeflow/internal/config"
	"mergeflow.dev/mergeflow/internal/git"
	"mergeflow.dev/mergeflow/internal/output"
)

// newConfigCmd creates the config command group
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write the workflow configuration file",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd() *cobra.Command {
	var (
		targetBranch  string
		stagingSuffix string
		remote        string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write " + config.FileName + " at the repository root",
		Long: `Write the workflow configuration file. Only explicitly set flags are
persisted; unset fields keep falling back to the defaults at run time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := output.NewSplog()
			defer func() { _ = log.Close() }()

			client, err := git.Open("", log)
			if err != nil {
				return err
			}

			cfg := &config.WorkflowConfig{}
			if cmd.Flags().Changed("target-branch") {
				cfg.TargetBranch = &targetBranch
			}
			if cmd.Flags().Changed("staging-suffix") {
				cfg.StagingSuffix = &stagingSuffix
			}
			if cmd.Flags().Changed("remote") {
				cfg.Remote = &remote
			}

			if err := config.Save(client.Root(), cfg); err != nil {
				return err
			}
			log.Success("wrote %s", config.Path(client.Root()))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetBranch, "target-branch", config.DefaultTargetBranch, "Target branch promotions merge into")
	cmd.Flags().StringVar(&stagingSuffix, "staging-suffix", config.DefaultStagingSuffix, "Suffix appended to the branch name to form the staging branch")
	cmd.Flags().StringVar(&remote, "remote", config.DefaultRemote, "Remote both stages push to")

	return cmd
}

// newConfigShowCmd creates the config show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved workflow configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			source := func(set bool) string {
				if set {
					return output.Faint("(" + config.FileName + ")")
				}
				return output.Faint("(default)")
			}

			log.Info("target branch:  %s %s", cfg.TargetBranchOrDefault(), source(cfg != nil && cfg.TargetBranch != nil))
			log.Info("staging suffix: %s %s", cfg.StagingSuffixOrDefault(), source(cfg != nil && cfg.StagingSuffix != nil))
			log.Info("remote:         %s %s", cfg.RemoteOrDefault(), source(cfg != nil && cfg.Remote != nil))
			return nil
		},
	}
}
