package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncommittedChangesError(t *testing.T) {
	t.Parallel()

	err := NewUncommittedChangesError([]string{"main.go", "go.mod"})
	require.ErrorIs(t, err, ErrUncommittedChanges)
	require.Contains(t, err.Error(), "2 files")
	require.Contains(t, err.Error(), "main.go")

	wrapped := fmt.Errorf("workflow aborted: %w", err)
	var target *UncommittedChangesError
	require.ErrorAs(t, wrapped, &target)
	require.Equal(t, []string{"main.go", "go.mod"}, target.Files)
}

func TestMergeConflictError(t *testing.T) {
	t.Parallel()

	cause := errors.New("CONFLICT (content): main.go")
	err := NewMergeConflictError("feature-x-staging", cause)
	require.ErrorIs(t, err, ErrMergeConflict)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "feature-x-staging")
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	err := NewGitCommandError([]string{"push", "-u", "origin", "feature-x-staging"}, 128,
		"fatal: could not read from remote repository", nil)
	require.Contains(t, err.Error(), "git push -u origin feature-x-staging")
	require.Contains(t, err.Error(), "exit 128")
	require.Contains(t, err.Error(), "could not read from remote repository")
}
