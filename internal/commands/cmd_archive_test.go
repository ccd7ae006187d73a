package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/config"
	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/internal/runner"
)

// noopHost satisfies runner.Host for commands that never reach execution.
type noopHost struct{}

func (noopHost) Execute(context.Context, runner.Handoff) error        { return nil }
func (noopHost) ExecuteBatch(context.Context, []runner.Handoff) error { return nil }

func newTestApp(t *testing.T) (*promptq.App, string) {
	t.Helper()

	workDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.WorkDir = workDir

	return promptq.NewApp(&cfg, noopHost{}, zerolog.Nop()), workDir
}

func seedPrompt(t *testing.T, workDir, filename string) {
	t.Helper()

	dir := filepath.Join(workDir, "prompts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create prompts dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), []byte("body\n"), 0o644); err != nil {
		t.Fatalf("write prompt: %v", err)
	}
}

func TestArchiveCmd_MovesResolvedPrompt(t *testing.T) {
	pqApp, workDir := newTestApp(t)
	seedPrompt(t, workDir, "001-auth.md")
	seedPrompt(t, workDir, "002-api.md")

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewArchiveCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "archive", "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dest := filepath.Join(workDir, "prompts", prompt.CompletedDirName, "001-auth.md")
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "prompts", "001-auth.md")); !os.IsNotExist(err) {
		t.Errorf("source file should be gone, stat err: %v", err)
	}
	if !strings.Contains(buf.String(), "001-auth.md -> "+dest) {
		t.Errorf("output %q missing archive line", buf.String())
	}
}

func TestArchiveCmd_UnresolvedTokenAbortsBatch(t *testing.T) {
	pqApp, workDir := newTestApp(t)
	seedPrompt(t, workDir, "001-auth.md")
	seedPrompt(t, workDir, "002-api.md")

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewArchiveCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "archive", "1", "999"})
	if err == nil {
		t.Fatal("expected resolution error")
	}

	// Nothing moves when any token fails to resolve.
	for _, name := range []string{"001-auth.md", "002-api.md"} {
		if _, statErr := os.Stat(filepath.Join(workDir, "prompts", name)); statErr != nil {
			t.Errorf("%s should still be pending: %v", name, statErr)
		}
	}
}

func TestArchiveCmd_RequiresToken(t *testing.T) {
	pqApp, _ := newTestApp(t)

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewArchiveCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "archive"})
	if err == nil {
		t.Fatal("expected usage error")
	}
}
