package git

import (
	"context"
	"fmt"

	mferrors "mergeflow.dev/mergeflow/internal/errors"
)

// RemoteReachable checks that the remote can be contacted with a lightweight
// ref listing. It exists to fail fast before any branch mutation.
func (c *Client) RemoteReachable(ctx context.Context, remote string) error {
	if _, err := c.runner.Query(ctx, "ls-remote", "--heads", remote); err != nil {
		return fmt.Errorf("%w: %v", mferrors.ErrRemoteUnreachable, err)
	}
	return nil
}

// RemoteBranchExists reports whether a branch exists on the remote. The probe
// queries the full ref path; probing by short name can match unrelated refs
// (tags, refs whose name contains the branch name as a suffix).
func (c *Client) RemoteBranchExists(ctx context.Context, remote, name string) (bool, error) {
	output, err := c.runner.Query(ctx, "ls-remote", "--heads", remote, "refs/heads/"+name)
	if err != nil {
		return false, err
	}
	return output != "", nil
}
