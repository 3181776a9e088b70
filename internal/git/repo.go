package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	mferrors "mergeflow.dev/mergeflow/internal/errors"
	"mergeflow.dev/mergeflow/internal/output"
)

// Client combines go-git for read-only repository queries with the command
// runner for everything that mutates the working tree or talks to a remote.
type Client struct {
	repo   *gogit.Repository
	root   string
	runner *CommandRunner
	log    *output.Splog
}

// Open locates the git repository containing path (or the current directory
// when path is empty) and returns a client rooted at it.
func Open(path string, log *output.Splog) (*Client, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = wd
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mferrors.ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Client{
		repo:   repo,
		root:   root,
		runner: NewCommandRunner(root, log),
		log:    log,
	}, nil
}

// Root returns the repository root directory
func (c *Client) Root() string {
	return c.root
}

// SetDryRun enables or disables dry-run mode on the underlying runner
func (c *Client) SetDryRun(dryRun bool) {
	c.runner.SetDryRun(dryRun)
}
