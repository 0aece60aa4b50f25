package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"relver/internal/config"
	"relver/internal/testutils"
)

func TestCLI_ExportCommand_JSONFile(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempVersionFile(t, dir, "1.2.3")
	out := filepath.Join(dir, "version.json")

	cfg := config.DefaultConfig()
	cfg.Root = dir
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	_, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "export", "--out", out})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if !strings.Contains(string(data), `"raw":"1.2.3"`) {
		t.Errorf("exported file missing version, got %s", data)
	}
}

func TestCLI_ExportCommand_EnvFile(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempVersionFile(t, dir, "1.2.3")
	out := filepath.Join(dir, "version.env")

	cfg := config.DefaultConfig()
	cfg.Root = dir
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	_, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "export", "--out", out, "--format", "env"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if !strings.Contains(string(data), "VERSION=1.2.3") {
		t.Errorf("exported file missing version, got %s", data)
	}
}
