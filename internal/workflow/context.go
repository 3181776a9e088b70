// Package workflow implements the branch promotion workflow: merge the
// current branch into its staging branch, then merge staging into the shared
// target branch, pushing each stage to the remote.
package workflow

import (
	"context"
	"fmt"

	"mergeflow.dev/mergeflow/internal/config"
	mferrors "mergeflow.dev/mergeflow/internal/errors"
)

// Request holds the caller-supplied inputs for one promotion run.
// Overrides take precedence over the config file, which takes precedence
// over the hardcoded defaults.
type Request struct {
	CommitMessage string
	StagingBranch string
	TargetBranch  string
	Remote        string
	DryRun        bool
}

// RunContext is the resolved, immutable context for one promotion run
type RunContext struct {
	OriginalBranch string
	StagingBranch  string
	TargetBranch   string
	Remote         string
}

// Git is the repository surface the workflow drives. *git.Client satisfies it.
type Git interface {
	CurrentBranch() (string, error)
	BranchExists(name string) (bool, error)
	RemoteBranchExists(ctx context.Context, remote, name string) (bool, error)
	RemoteReachable(ctx context.Context, remote string) error
	DirtyFiles(ctx context.Context) ([]string, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Checkout(ctx context.Context, branch string) error
	CreateAndCheckout(ctx context.Context, branch string) error
	CheckoutTracking(ctx context.Context, remote, branch string) error
	PullUpstream(ctx context.Context) error
	PullBranch(ctx context.Context, remote, branch string) error
	MergeNoFF(ctx context.Context, source, message string) error
	PushSetUpstream(ctx context.Context, remote, branch string) error
	Push(ctx context.Context, remote, branch string) error
}

// ResolveContext probes the current branch, applies the override precedence
// chain, and validates that the current branch is neither the staging nor the
// target branch. Nothing has been mutated when it fails.
func ResolveContext(g Git, req Request, cfg *config.WorkflowConfig) (*RunContext, error) {
	current, err := g.CurrentBranch()
	if err != nil {
		return nil, err
	}

	target := req.TargetBranch
	if target == "" {
		target = cfg.TargetBranchOrDefault()
	}

	remote := req.Remote
	if remote == "" {
		remote = cfg.RemoteOrDefault()
	}

	staging := req.StagingBranch
	if staging == "" {
		staging = current + cfg.StagingSuffixOrDefault()
	}

	if current == target {
		return nil, fmt.Errorf("%w (%s), switch to the branch you want to promote", mferrors.ErrInvalidTarget, target)
	}
	if current == staging {
		return nil, fmt.Errorf("%w (%s), switch to the branch you want to promote", mferrors.ErrInvalidStaging, staging)
	}

	return &RunContext{
		OriginalBranch: current,
		StagingBranch:  staging,
		TargetBranch:   target,
		Remote:         remote,
	}, nil
}
