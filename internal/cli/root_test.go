package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdRunsPromote(t *testing.T) {
	t.Parallel()

	rootCmd := NewRootCmd("1.2.3", "abc1234", "2026-08-23")

	// Bare `mergeflow` performs the promotion, so the root carries the
	// promote flags and an action of its own.
	require.NotNil(t, rootCmd.RunE)
	for _, flag := range []string{"commit-message", "staging-branch", "target-branch", "remote", "dry-run", "what-if"} {
		require.NotNil(t, rootCmd.Flags().Lookup(flag), "missing root flag %s", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	rootCmd := NewRootCmd("1.2.3", "abc1234", "2026-08-23")

	var found bool
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
		}
	}
	require.True(t, found, "version subcommand not registered")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "mergeflow 1.2.3")
	require.Contains(t, out.String(), "abc1234")
}
