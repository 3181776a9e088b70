package workflow

import (
	"context"
	"fmt"

	"mergeflow.dev/mergeflow/internal/config"
	mferrors "mergeflow.dev/mergeflow/internal/errors"
	"mergeflow.dev/mergeflow/internal/output"
	"mergeflow.dev/mergeflow/internal/prompt"
)

// Engine drives the promotion workflow. It must not run concurrently with
// another invocation against the same repository; each step mutates the
// working tree and current-branch pointer the next step depends on.
type Engine struct {
	git     Git
	confirm prompt.Confirmer
	log     *output.Splog
}

// NewEngine creates a workflow engine
func NewEngine(g Git, confirmer prompt.Confirmer, log *output.Splog) *Engine {
	return &Engine{git: g, confirm: confirmer, log: log}
}

// Run executes the full promotion workflow. Validation and precondition
// failures abort before anything is mutated. Once the branch pointer can have
// moved, the engine always attempts to return to the original branch before
// surfacing an error.
func (e *Engine) Run(ctx context.Context, req Request, cfg *config.WorkflowConfig) error {
	rc, err := ResolveContext(e.git, req, cfg)
	if err != nil {
		return err
	}

	if req.DryRun {
		e.log.Info("dry run: no repository changes will be made")
	}
	e.log.Info("promoting %s via %s to %s (remote %s)",
		output.Branch(rc.OriginalBranch), output.Branch(rc.StagingBranch),
		output.Branch(rc.TargetBranch), rc.Remote)

	if err := e.git.RemoteReachable(ctx, rc.Remote); err != nil {
		return err
	}

	if err := e.ensureClean(ctx, req.CommitMessage); err != nil {
		return err
	}

	// Everything from here on can move the branch pointer.
	defer e.restoreOriginalBranch(ctx, rc, req.DryRun)

	if err := e.promoteToStaging(ctx, rc); err != nil {
		return err
	}
	if err := e.promoteToTarget(ctx, rc); err != nil {
		return err
	}

	e.log.Success("promoted %s to %s", output.Branch(rc.OriginalBranch), output.Branch(rc.TargetBranch))
	return nil
}

// ensureClean inspects the working tree. A dirty tree is committed when a
// commit message was supplied, and aborts the run otherwise.
func (e *Engine) ensureClean(ctx context.Context, commitMessage string) error {
	files, err := e.git.DirtyFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	if commitMessage == "" {
		return mferrors.NewUncommittedChangesError(files)
	}

	e.log.Info("committing %d changed files", len(files))
	if err := e.git.StageAll(ctx); err != nil {
		return err
	}
	return e.git.Commit(ctx, commitMessage)
}

// promoteToStaging resolves the staging branch, merges the original branch
// into it, and pushes it.
func (e *Engine) promoteToStaging(ctx context.Context, rc *RunContext) error {
	if err := e.resolveStaging(ctx, rc); err != nil {
		return err
	}

	// No upstream yet is expected for a brand-new staging branch.
	if err := e.git.PullUpstream(ctx); err != nil {
		return err
	}

	message := fmt.Sprintf("Merge branch '%s' into %s", rc.OriginalBranch, rc.StagingBranch)
	if err := e.git.MergeNoFF(ctx, rc.OriginalBranch, message); err != nil {
		return mferrors.NewMergeConflictError(rc.StagingBranch, err)
	}
	e.log.Info("merged %s into %s", output.Branch(rc.OriginalBranch), output.Branch(rc.StagingBranch))

	if err := e.git.PushSetUpstream(ctx, rc.Remote, rc.StagingBranch); err != nil {
		return e.confirmSkipPush(rc, err)
	}
	return nil
}

// resolveStaging checks out the staging branch, creating it when necessary.
// Local takes precedence over remote; a failed remote probe is treated as
// "branch absent" so the workflow still works when the probe is flaky.
func (e *Engine) resolveStaging(ctx context.Context, rc *RunContext) error {
	existsLocally, err := e.git.BranchExists(rc.StagingBranch)
	if err != nil {
		return err
	}

	if existsLocally {
		e.log.Debug("staging branch %s exists locally", rc.StagingBranch)
		if err := e.git.Checkout(ctx, rc.StagingBranch); err != nil {
			return fmt.Errorf("%w: %v", mferrors.ErrCheckoutFailed, err)
		}
		return nil
	}

	existsOnRemote, err := e.git.RemoteBranchExists(ctx, rc.Remote, rc.StagingBranch)
	if err != nil {
		e.log.Warn("could not probe %s for %s, assuming it does not exist: %v",
			rc.Remote, rc.StagingBranch, err)
		existsOnRemote = false
	}

	if existsOnRemote {
		e.log.Info("checking out %s from %s", output.Branch(rc.StagingBranch), rc.Remote)
		if err := e.git.CheckoutTracking(ctx, rc.Remote, rc.StagingBranch); err != nil {
			return fmt.Errorf("%w: %v", mferrors.ErrCheckoutFailed, err)
		}
		return nil
	}

	e.log.Info("creating staging branch %s", output.Branch(rc.StagingBranch))
	if err := e.git.CreateAndCheckout(ctx, rc.StagingBranch); err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrCheckoutFailed, err)
	}
	return nil
}

// confirmSkipPush is the one interactive recovery point in the workflow.
// A staging push failure has a safe fallback (continue with the locally
// merged staging branch), so the operator gets to choose; every other
// failure is fatal.
func (e *Engine) confirmSkipPush(rc *RunContext, pushErr error) error {
	e.log.Error("push of %s to %s failed:\n%v", rc.StagingBranch, rc.Remote, pushErr)

	skip, err := e.confirm.Confirm(fmt.Sprintf(
		"Skip the push and promote the locally merged %s anyway?", rc.StagingBranch))
	if err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrPushFailed, pushErr)
	}
	if !skip {
		return fmt.Errorf("%w: %v", mferrors.ErrPushFailed, pushErr)
	}

	e.log.Warn("continuing without pushing %s", rc.StagingBranch)
	return nil
}

// promoteToTarget checks out the target branch, brings it up to date, merges
// staging into it, and pushes. All failures here are fatal; the target push
// is the workflow's success criterion.
func (e *Engine) promoteToTarget(ctx context.Context, rc *RunContext) error {
	if err := e.git.Checkout(ctx, rc.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrCheckoutFailed, err)
	}

	// Unlike staging, the target's history is assumed to exist and be pullable.
	if err := e.git.PullBranch(ctx, rc.Remote, rc.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrPullFailed, err)
	}

	message := fmt.Sprintf("Merge branch '%s' into %s", rc.StagingBranch, rc.TargetBranch)
	if err := e.git.MergeNoFF(ctx, rc.StagingBranch, message); err != nil {
		return mferrors.NewMergeConflictError(rc.TargetBranch, err)
	}
	e.log.Info("merged %s into %s", output.Branch(rc.StagingBranch), output.Branch(rc.TargetBranch))

	if err := e.git.Push(ctx, rc.Remote, rc.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrPushFailed, err)
	}
	return nil
}

// restoreOriginalBranch returns to the branch the run started on. Best
// effort: the workflow's outcome is already determined, so a failure here is
// logged, never escalated. In a dry run the branch pointer never actually
// moved, so the restore a real run would perform is reported instead.
func (e *Engine) restoreOriginalBranch(ctx context.Context, rc *RunContext, dryRun bool) {
	if dryRun {
		e.log.DryRun("git checkout " + rc.OriginalBranch)
		return
	}

	current, err := e.git.CurrentBranch()
	if err != nil {
		e.log.Warn("could not determine current branch during cleanup: %v", err)
		return
	}
	if current == rc.OriginalBranch {
		return
	}
	if err := e.git.Checkout(ctx, rc.OriginalBranch); err != nil {
		e.log.Warn("could not return to branch %s: %v", rc.OriginalBranch, err)
		return
	}
	e.log.Info("returned to %s", output.Branch(rc.OriginalBranch))
}
