// Package gitx implements core.GitOperations using the git executable.
package gitx

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"relver/internal/core"
)

// Available reports whether a git executable can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// OSGitOperations implements core.GitOperations using actual git commands,
// executed against a fixed repository directory.
type OSGitOperations struct {
	dir         string
	execCommand func(name string, arg ...string) *exec.Cmd
}

// NewOSGitOperations creates git operations rooted at dir, using the
// default exec.Command.
func NewOSGitOperations(dir string) *OSGitOperations {
	return &OSGitOperations{
		dir:         dir,
		execCommand: exec.Command,
	}
}

// Verify OSGitOperations implements core.GitOperations.
var _ core.GitOperations = (*OSGitOperations)(nil)

func (g *OSGitOperations) Describe(matchPattern string, abbrev int) (string, error) {
	args := []string{"describe", "--tags", fmt.Sprintf("--abbrev=%d", abbrev)}
	if matchPattern != "" {
		args = append(args, "--match", matchPattern)
	}

	cmd := g.execCommand("git", args...)
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("git describe failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (g *OSGitOperations) DiffIndexNames() (string, error) {
	cmd := g.execCommand("git", "diff-index", "--name-only", "HEAD", "--")
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("git diff-index failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (g *OSGitOperations) IsShallow() (bool, error) {
	cmd := g.execCommand("git", "rev-parse", "--is-shallow-repository")
	cmd.Dir = g.dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("failed to query shallow state: %w", err)
	}

	return strings.TrimSpace(stdout.String()) == "true", nil
}

func (g *OSGitOperations) FetchUnshallow() error {
	cmd := g.execCommand("git", "fetch", "--unshallow", "--tags")
	cmd.Dir = g.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return fmt.Errorf("git fetch --unshallow failed: %w", err)
	}
	return nil
}
