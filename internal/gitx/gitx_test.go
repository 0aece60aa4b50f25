package gitx

import (
	"os/exec"
	"strings"
	"testing"
)

// fakeCommand replaces the git invocation with a fixed shell command so the
// subprocess plumbing can be exercised without a repository.
func fakeCommand(output string, fail bool) func(name string, arg ...string) *exec.Cmd {
	return func(_ string, _ ...string) *exec.Cmd {
		if fail {
			return exec.Command("sh", "-c", "echo 'fatal: no names found' >&2; exit 128")
		}
		return exec.Command("sh", "-c", "printf '%s\\n' "+shellQuote(output))
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func TestOSGitOperations_Describe(t *testing.T) {
	g := NewOSGitOperations(t.TempDir())
	g.execCommand = fakeCommand("v0.5-2-g034f", false)

	got, err := g.Describe("v*", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "v0.5-2-g034f" {
		t.Errorf("got %q, want %q", got, "v0.5-2-g034f")
	}
}

func TestOSGitOperations_Describe_Error(t *testing.T) {
	g := NewOSGitOperations(t.TempDir())
	g.execCommand = fakeCommand("", true)

	_, err := g.Describe("v*", 4)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no names found") {
		t.Errorf("expected stderr text in error, got %q", err.Error())
	}
}

func TestOSGitOperations_DiffIndexNames(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"clean tree", "", ""},
		{"modified files", "src/main.c\nREADME.md", "src/main.c\nREADME.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewOSGitOperations(t.TempDir())
			g.execCommand = fakeCommand(tt.output, false)

			got, err := g.DiffIndexNames()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOSGitOperations_IsShallow(t *testing.T) {
	tests := []struct {
		output string
		want   bool
	}{
		{"true", true},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			g := NewOSGitOperations(t.TempDir())
			g.execCommand = fakeCommand(tt.output, false)

			got, err := g.IsShallow()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOSGitOperations_FetchUnshallow_Error(t *testing.T) {
	g := NewOSGitOperations(t.TempDir())
	g.execCommand = fakeCommand("", true)

	if err := g.FetchUnshallow(); err == nil {
		t.Fatal("expected error, got nil")
	}
}
