package git

import (
	"context"
	"fmt"
	"strings"
)

// Checkout checks out an existing branch
func (c *Client) Checkout(ctx context.Context, branch string) error {
	if _, err := c.runner.Run(ctx, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branch, err)
	}
	return nil
}

// CreateAndCheckout creates and checks out a new branch from the current HEAD
func (c *Client) CreateAndCheckout(ctx context.Context, branch string) error {
	if _, err := c.runner.Run(ctx, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// CheckoutTracking fetches the exact remote ref for a branch and checks out a
// new local branch tracking it. Used when the branch exists on the remote but
// not locally.
func (c *Client) CheckoutTracking(ctx context.Context, remote, branch string) error {
	refspec := fmt.Sprintf("refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch)
	if _, err := c.runner.Run(ctx, "fetch", remote, refspec); err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w", branch, remote, err)
	}
	if _, err := c.runner.Run(ctx, "checkout", "-b", branch, "--track", remote+"/"+branch); err != nil {
		return fmt.Errorf("failed to checkout tracking branch %s: %w", branch, err)
	}
	return nil
}

// PullUpstream pulls the configured upstream of the current branch. A failed
// pull is reported at debug level and otherwise ignored: a brand-new branch
// has no upstream yet, which is expected.
func (c *Client) PullUpstream(ctx context.Context) error {
	res, err := c.runner.RunAllowFailure(ctx, "pull")
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		c.log.Debug("pull skipped (no upstream?): %s", firstLine(res.Output))
	}
	return nil
}

// PullBranch pulls a branch from the remote into the current branch
func (c *Client) PullBranch(ctx context.Context, remote, branch string) error {
	if _, err := c.runner.Run(ctx, "pull", remote, branch); err != nil {
		return fmt.Errorf("failed to pull %s from %s: %w", branch, remote, err)
	}
	return nil
}

// MergeNoFF merges source into the current branch, always creating a merge
// commit so branch topology is preserved.
func (c *Client) MergeNoFF(ctx context.Context, source, message string) error {
	if _, err := c.runner.Run(ctx, "merge", "--no-ff", source, "-m", message); err != nil {
		return err
	}
	return nil
}

// PushSetUpstream pushes a branch and sets its upstream tracking ref
func (c *Client) PushSetUpstream(ctx context.Context, remote, branch string) error {
	if _, err := c.runner.Run(ctx, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branch, err)
	}
	return nil
}

// Push pushes a branch to the remote
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	if _, err := c.runner.Run(ctx, "push", remote, branch); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branch, err)
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
