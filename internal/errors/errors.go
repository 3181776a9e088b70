// Package errors provides sentinel errors and custom error types for mergeflow.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrInvalidTarget indicates the current branch is the target branch
	ErrInvalidTarget = errors.New("current branch is the target branch")

	// ErrInvalidStaging indicates the current branch is the staging branch
	ErrInvalidStaging = errors.New("current branch is the staging branch")

	// ErrRemoteUnreachable indicates the remote could not be contacted
	ErrRemoteUnreachable = errors.New("remote unreachable")

	// ErrUncommittedChanges indicates the working tree is dirty and no commit message was given
	ErrUncommittedChanges = errors.New("uncommitted changes")

	// ErrMergeConflict indicates a merge could not complete cleanly
	ErrMergeConflict = errors.New("merge conflict")

	// ErrCheckoutFailed indicates a branch checkout failed
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrPullFailed indicates a pull failed
	ErrPullFailed = errors.New("pull failed")

	// ErrPushFailed indicates a push failed
	ErrPushFailed = errors.New("push failed")
)

// UncommittedChangesError reports a dirty working tree along with the files involved
type UncommittedChangesError struct {
	Files []string
}

func (e *UncommittedChangesError) Error() string {
	return fmt.Sprintf("uncommitted changes in working tree (%d files):\n  %s",
		len(e.Files), strings.Join(e.Files, "\n  "))
}

// Is returns true if the target error is ErrUncommittedChanges
func (e *UncommittedChangesError) Is(target error) bool {
	return target == ErrUncommittedChanges
}

// NewUncommittedChangesError creates a new UncommittedChangesError
func NewUncommittedChangesError(files []string) *UncommittedChangesError {
	return &UncommittedChangesError{Files: files}
}

// MergeConflictError reports a merge that could not complete on a branch
type MergeConflictError struct {
	Branch string
	Err    error
}

func (e *MergeConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("merge conflict on branch %s: %v", e.Branch, e.Err)
	}
	return fmt.Sprintf("merge conflict on branch %s", e.Branch)
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

func (e *MergeConflictError) Unwrap() error {
	return e.Err
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(branch string, err error) *MergeConflictError {
	return &MergeConflictError{Branch: branch, Err: err}
}

// GitCommandError represents an error from a git command execution.
// Output holds the combined stdout/stderr of the failed command so the
// operator can diagnose without re-running.
type GitCommandError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: git %s (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(args []string, exitCode int, output string, err error) *GitCommandError {
	return &GitCommandError{
		Args:     args,
		ExitCode: exitCode,
		Output:   output,
		Err:      err,
	}
}
