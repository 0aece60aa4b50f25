// Package testutils provides shared helpers for command tests: a CLI
// harness, stdout capture, and fixture writers.
package testutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"relver/internal/printer"
)

// BuildCLIForTests builds a root command hosting the given subcommands,
// with colored output disabled for deterministic assertions.
func BuildCLIForTests(cmds []*cli.Command) *cli.Command {
	printer.SetNoColor(true)
	return &cli.Command{
		Name:     "relver",
		Commands: cmds,
	}
}

// RunCLITest runs the CLI with args and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string) {
	t.Helper()
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("cli run failed: %v", err)
	}
}

// CaptureStdout captures everything fn writes to stdout.
func CaptureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create pipe: %w", err)
	}
	os.Stdout = w

	fn()

	if err := w.Close(); err != nil {
		os.Stdout = orig
		return "", fmt.Errorf("failed to close pipe writer: %w", err)
	}
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read captured output: %w", err)
	}
	return string(out), nil
}

// Chdir moves into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

// WriteTempVersionFile writes a .version marker file under dir.
func WriteTempVersionFile(t *testing.T, dir, version string) {
	t.Helper()
	WriteTempFile(t, dir, ".version", version+"\n")
}

// WriteTempFile writes name under dir with the given content.
func WriteTempFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
