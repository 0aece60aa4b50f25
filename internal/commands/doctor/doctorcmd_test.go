package doctor

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"relver/internal/config"
	"relver/internal/testutils"
)

func TestCLI_DoctorCommand_PinnedVersion(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempVersionFile(t, dir, "1.2.3")

	cfg := config.DefaultConfig()
	cfg.Root = dir
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "doctor"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "Pinned version file") {
		t.Errorf("expected marker check in output, got %q", output)
	}
	if !strings.Contains(output, "Resolved version 1.2.3") {
		t.Errorf("expected resolution summary, got %q", output)
	}
}

func TestCLI_DoctorCommand_ManifestOnly(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempFile(t, dir, "package.xml",
		"<package><name>thing</name><version>2.0.0</version></package>")

	cfg := config.DefaultConfig()
	cfg.Root = dir
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "doctor"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "carries version 2.0.0") {
		t.Errorf("expected manifest check in output, got %q", output)
	}
}

func TestCLI_DoctorCommand_NoSource(t *testing.T) {
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Root = dir
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	var runErr error
	_, err := testutils.CaptureStdout(func() {
		runErr = app.Run(context.Background(), []string{"relver", "doctor"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	if runErr == nil || !strings.Contains(runErr.Error(), "no usable version source") {
		t.Fatalf("expected no-source error, got: %v", runErr)
	}
}
