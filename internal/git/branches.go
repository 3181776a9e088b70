package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	mferrors "mergeflow.dev/mergeflow/internal/errors"
)

// CurrentBranch returns the name of the currently checked-out branch.
// Detached HEAD and unborn repositories both report ErrNotOnBranch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: %v", mferrors.ErrNotOnBranch, err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("%w: HEAD is detached at %s", mferrors.ErrNotOnBranch, head.Hash().String()[:8])
	}
	return head.Name().Short(), nil
}

// BranchExists reports whether a local branch with the given name exists
func (c *Client) BranchExists(name string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return true, nil
}
