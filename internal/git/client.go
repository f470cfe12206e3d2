// Package git shells out to the git binary for the operations this
// tool performs: listing remotes and cloning. Calls block until the
// child process exits; there is no timeout, a hung git hangs the tool.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client wraps invocations of the git binary.
type Client struct {
	GitPath string // Path to the git executable
	RepoDir string // Working directory for repository-scoped commands
}

// NewClient creates a client for the current directory.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{GitPath: gitPath}
}

// Command creates a git command rooted at the client's repo directory.
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}

	return cmd
}

// Remotes returns the verbose, both-directions remote listing for the
// repository, as emitted by `git remote -vv`.
func (c *Client) Remotes(ctx context.Context) (string, error) {
	args := []string{"remote", "-vv"}
	cmd := c.Command(ctx, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", NewGitError(args, string(output), err)
	}

	return string(output), nil
}

// Clone clones cloneURL into targetPath.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	args := []string{"clone", cloneURL, targetPath}
	cmd := c.Command(ctx, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return NewGitError(args, string(output), err)
	}

	return nil
}

// GitError represents a failed git command.
type GitError struct {
	ExitCode int
	Stderr   string
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git command failed: %v", e.err)
	}

	return fmt.Sprintf("git command failed: %s", strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
