package git

import (
	"context"
	"fmt"
	"strings"
)

// DirtyFiles returns the paths reported by git status for a dirty working
// tree. An empty slice means the tree is clean.
func (c *Client) DirtyFiles(ctx context.Context) ([]string, error) {
	output, err := c.runner.Query(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to check working tree status: %w", err)
	}
	if output == "" {
		return nil, nil
	}

	lines := strings.Split(output, "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		// porcelain lines are "XY <path>"
		if len(line) > 3 {
			files = append(files, strings.TrimSpace(line[3:]))
		}
	}
	return files, nil
}

// StageAll stages all changes including untracked files
func (c *Client) StageAll(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message
func (c *Client) Commit(ctx context.Context, message string) error {
	if _, err := c.runner.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
