package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mergeflow.dev/mergeflow/internal/output"
)

func TestRunnerDryRun(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner(t.TempDir(), output.NewSplog())
	runner.SetDryRun(true)
	require.True(t, runner.DryRun())

	// Mutating commands are never spawned in dry-run mode; the runner
	// reports a synthetic success instead.
	res, err := runner.Run(context.Background(), "merge", "--no-ff", "feature-x")
	require.NoError(t, err)
	require.Equal(t, 0, res.ExitCode)
	require.Empty(t, res.Output)

	res, err = runner.RunAllowFailure(context.Background(), "pull")
	require.NoError(t, err)
	require.Equal(t, 0, res.ExitCode)
}
