// Package git wraps the git binary and go-git for the repository operations
// the promotion workflow needs.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	mferrors "mergeflow.dev/mergeflow/internal/errors"
	"mergeflow.dev/mergeflow/internal/output"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandResult holds the exit code and combined output of a git command
type CommandResult struct {
	ExitCode int
	Output   string
}

// CommandRunner executes git commands in a fixed working directory.
// In dry-run mode, mutating commands are not executed; the runner reports
// the command line it would have run and returns a synthetic success.
// Read-only queries always execute, so a dry run still follows the same
// decision path as a real run.
type CommandRunner struct {
	workingDir string
	dryRun     bool
	log        *output.Splog
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string, log *output.Splog) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, log: log}
}

// SetDryRun enables or disables dry-run mode
func (r *CommandRunner) SetDryRun(dryRun bool) {
	r.dryRun = dryRun
}

// DryRun reports whether the runner is in dry-run mode
func (r *CommandRunner) DryRun() bool {
	return r.dryRun
}

// Query executes a read-only git command and returns its trimmed output.
// Queries run even in dry-run mode.
func (r *CommandRunner) Query(ctx context.Context, args ...string) (string, error) {
	res, err := r.execute(ctx, args)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", mferrors.NewGitCommandError(args, res.ExitCode, res.Output, nil)
	}
	return strings.TrimSpace(res.Output), nil
}

// Run executes a mutating git command. A non-zero exit is returned as a
// GitCommandError carrying the combined output.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (CommandResult, error) {
	if r.dryRun {
		r.log.DryRun("git " + strings.Join(args, " "))
		return CommandResult{}, nil
	}
	r.log.Debug("exec: git %s", strings.Join(args, " "))
	res, err := r.execute(ctx, args)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, mferrors.NewGitCommandError(args, res.ExitCode, res.Output, nil)
	}
	return res, nil
}

// RunAllowFailure executes a mutating git command but reports a non-zero
// exit through the CommandResult instead of an error. The returned error is
// only non-nil when the command could not be spawned at all.
func (r *CommandRunner) RunAllowFailure(ctx context.Context, args ...string) (CommandResult, error) {
	if r.dryRun {
		r.log.DryRun("git " + strings.Join(args, " "))
		return CommandResult{}, nil
	}
	r.log.Debug("exec: git %s", strings.Join(args, " "))
	return r.execute(ctx, args)
}

func (r *CommandRunner) execute(ctx context.Context, args []string) (CommandResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return CommandResult{ExitCode: exitErr.ExitCode(), Output: combined.String()}, nil
		}
		return CommandResult{ExitCode: -1, Output: combined.String()},
			mferrors.NewGitCommandError(args, -1, combined.String(), err)
	}
	return CommandResult{ExitCode: 0, Output: combined.String()}, nil
}
