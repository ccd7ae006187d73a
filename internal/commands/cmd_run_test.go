package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/runner"
)

func TestRunCmd_SequentialArchivesOnSuccess(t *testing.T) {
	pqApp, workDir := newTestApp(t)
	seedPrompt(t, workDir, "001-auth.md")

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewRunCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "run", "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	archived := filepath.Join(workDir, "prompts", prompt.CompletedDirName, "001-auth.md")
	if _, err := os.Stat(archived); err != nil {
		t.Errorf("prompt not archived after run: %v", err)
	}
	if !strings.Contains(buf.String(), "001-auth.md completed") {
		t.Errorf("output %q missing completion line", buf.String())
	}
}

func TestRunCmd_UnresolvedTokenSurfacesNotFound(t *testing.T) {
	pqApp, workDir := newTestApp(t)
	seedPrompt(t, workDir, "001-auth.md")

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewRunCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "run", "999"})
	if !errors.Is(err, prompt.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output before execution, got %q", buf.String())
	}
}

func TestRunCmd_JSONOutput(t *testing.T) {
	pqApp, workDir := newTestApp(t)
	seedPrompt(t, workDir, "001-auth.md")

	var buf bytes.Buffer
	app := &cli.Command{Name: "promptq", Writer: &buf}
	NewRunCmd(&Flags{}, pqApp).Register(app)

	err := app.Run(context.Background(), []string{"promptq", "run", "--json", "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res runner.Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("parse result line: %v", err)
	}
	if res.Filename != "001-auth.md" || res.Status != runner.StatusCompleted {
		t.Errorf("unexpected result: %+v", res)
	}
}
