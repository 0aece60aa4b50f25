package initialize

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"relver/internal/config"
	"relver/internal/testutils"
)

func TestCLI_InitCommand_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)

	app := testutils.BuildCLIForTests([]*cli.Command{Run()})

	_, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "init", "--yes", "--marker", "VERSION", "--tag-pattern", "rel-*"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(config.ConfigFile)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "marker: VERSION") {
		t.Errorf("config missing marker, got:\n%s", data)
	}
	if !strings.Contains(string(data), "tag-pattern: rel-*") {
		t.Errorf("config missing tag pattern, got:\n%s", data)
	}
}

func TestCLI_InitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)
	testutils.WriteTempFile(t, dir, config.ConfigFile, "marker: .version\n")

	app := testutils.BuildCLIForTests([]*cli.Command{Run()})

	err := app.Run(context.Background(), []string{"relver", "init", "--yes"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got: %v", err)
	}
}

func TestCLI_InitCommand_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)
	testutils.WriteTempFile(t, dir, config.ConfigFile, "marker: old\n")

	app := testutils.BuildCLIForTests([]*cli.Command{Run()})

	_, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"relver", "init", "--yes", "--force"})
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(config.ConfigFile)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "marker: .version") {
		t.Errorf("config not overwritten, got:\n%s", data)
	}
}
