package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/handoff"
	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/core/todo"
	"github.com/colonyops/promptq/internal/promptq"
)

// NextCmd implements the promptq next command.
type NextCmd struct {
	flags *Flags
	app   *promptq.App
}

// NewNextCmd creates a new next command.
func NewNextCmd(flags *Flags, app *promptq.App) *NextCmd {
	return &NextCmd{flags: flags, app: app}
}

// Register adds the next command to the application.
func (cmd *NextCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "next",
		Usage:     "Regenerate the whats-next.md handoff document",
		UsageText: "promptq next",
		Description: `Rewrites whats-next.md from the current pending prompts and the todo
log. The document is a snapshot of workspace state; any previous version
is replaced.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *NextCmd) run(ctx context.Context, c *cli.Command) error {
	pending, err := cmd.app.Prompts.Pending()
	if err != nil {
		return fmt.Errorf("list pending prompts: %w", err)
	}

	data := handoff.Data{GeneratedAt: time.Now()}
	for _, rec := range pending {
		hp := handoff.Prompt{Record: rec}
		if content, err := cmd.app.Prompts.Read(rec); err == nil {
			hp.Description = prompt.ParseFrontmatter(content).Description
		}
		data.Pending = append(data.Pending, hp)
	}

	sections, err := cmd.app.Todos.Sections()
	switch {
	case errors.Is(err, todo.ErrNotFound):
		// An empty log is a valid state for the handoff document.
	case err != nil:
		return fmt.Errorf("read todo log: %w", err)
	default:
		data.Todos = sections
	}

	path := cmd.app.Config.HandoffPath()
	if err := handoff.Write(path, data); err != nil {
		return err
	}

	cmd.app.Logger.Info().Str("path", path).Int("pending", len(data.Pending)).Int("todos", len(data.Todos)).Msg("handoff regenerated")
	fmt.Fprintf(c.Root().Writer, "%s wrote %s\n", styles.StatusIcon("completed"), path)
	return nil
}
