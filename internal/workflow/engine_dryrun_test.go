package workflow

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mergeflow.dev/mergeflow/internal/git"
	"mergeflow.dev/mergeflow/internal/output"
)

// runGit runs a git command in dir and fails the test on error
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return strings.TrimSpace(string(out))
}

// initScratchRepo creates a repository on feature-x with main and develop
// pushed to a local file remote named origin, so remote probes work offline.
func initScratchRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("scratch\n"), 0644))
	runGit(t, dir, "add", "-A")
	runGit(t, dir, "commit", "-m", "initial commit")
	runGit(t, dir, "branch", "-M", "main")
	runGit(t, dir, "checkout", "-b", "develop")
	runGit(t, dir, "checkout", "-b", "feature-x")

	remoteDir := filepath.Join(t.TempDir(), "remote.git")
	runGit(t, dir, "init", "--bare", remoteDir)
	runGit(t, dir, "remote", "add", "origin", remoteDir)
	runGit(t, dir, "push", "origin", "main", "develop")

	return dir
}

func newScratchEngine(t *testing.T, dir string) *Engine {
	t.Helper()

	log := output.NewSplog()
	client, err := git.Open(dir, log)
	require.NoError(t, err)
	client.SetDryRun(true)

	return NewEngine(client, &fakeConfirmer{}, log)
}

func TestRunDryRunMutatesNothing(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	t.Run("staging branch does not exist anywhere", func(t *testing.T) {
		t.Parallel()
		dir := initScratchRepo(t)
		head := runGit(t, dir, "rev-parse", "HEAD")

		eng := newScratchEngine(t, dir)
		err := eng.Run(context.Background(), Request{DryRun: true}, nil)
		require.NoError(t, err)

		require.Equal(t, "feature-x", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
		require.Equal(t, head, runGit(t, dir, "rev-parse", "HEAD"))
		require.Empty(t, runGit(t, dir, "branch", "--list", "feature-x-staging"))
		require.NotContains(t, runGit(t, dir, "ls-remote", "--heads", "origin"), "feature-x-staging")
		require.Empty(t, runGit(t, dir, "status", "--porcelain"))
	})

	t.Run("staging branch exists locally", func(t *testing.T) {
		t.Parallel()
		dir := initScratchRepo(t)
		runGit(t, dir, "branch", "feature-x-staging")
		head := runGit(t, dir, "rev-parse", "HEAD")

		eng := newScratchEngine(t, dir)
		err := eng.Run(context.Background(), Request{DryRun: true}, nil)
		require.NoError(t, err)

		// checkout of the existing staging branch was simulated only
		require.Equal(t, "feature-x", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
		require.Equal(t, head, runGit(t, dir, "rev-parse", "HEAD"))
		require.NotContains(t, runGit(t, dir, "ls-remote", "--heads", "origin"), "feature-x-staging")
	})

	t.Run("staging branch exists only on the remote", func(t *testing.T) {
		t.Parallel()
		dir := initScratchRepo(t)
		runGit(t, dir, "push", "origin", "feature-x:feature-x-staging")
		head := runGit(t, dir, "rev-parse", "HEAD")

		eng := newScratchEngine(t, dir)
		err := eng.Run(context.Background(), Request{DryRun: true}, nil)
		require.NoError(t, err)

		// the tracking fetch and checkout were simulated only
		require.Equal(t, "feature-x", runGit(t, dir, "rev-parse", "--abbrev-ref", "HEAD"))
		require.Equal(t, head, runGit(t, dir, "rev-parse", "HEAD"))
		require.Empty(t, runGit(t, dir, "branch", "--list", "feature-x-staging"))
	})

	t.Run("dirty tree with a commit message stays uncommitted", func(t *testing.T) {
		t.Parallel()
		dir := initScratchRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wip.txt"), []byte("wip\n"), 0644))
		head := runGit(t, dir, "rev-parse", "HEAD")

		eng := newScratchEngine(t, dir)
		err := eng.Run(context.Background(), Request{CommitMessage: "wip", DryRun: true}, nil)
		require.NoError(t, err)

		require.Equal(t, head, runGit(t, dir, "rev-parse", "HEAD"))
		require.NotEmpty(t, runGit(t, dir, "status", "--porcelain"))
	})
}
