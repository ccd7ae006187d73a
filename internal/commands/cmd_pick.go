package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/internal/tui/picker"
)

// PickCmd implements the promptq pick command.
type PickCmd struct {
	flags *Flags
	app   *promptq.App
}

// NewPickCmd creates a new pick command.
func NewPickCmd(flags *Flags, app *promptq.App) *PickCmd {
	return &PickCmd{flags: flags, app: app}
}

// Register adds the pick command to the application.
func (cmd *PickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pick",
		Usage:     "Interactively select a pending prompt",
		UsageText: "promptq pick",
		Description: `Opens a filterable list of pending prompts and prints the path of the
selection. Useful with command substitution:

  $EDITOR "$(promptq pick)"`,
		Action: cmd.run,
	})

	return app
}

// Run exposes the picker as the root command's default action.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *PickCmd) run(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pick requires an interactive terminal")
	}

	pending, err := cmd.app.Prompts.Pending()
	if err != nil {
		return fmt.Errorf("list pending prompts: %w", err)
	}
	if len(pending) == 0 {
		return fmt.Errorf("no pending prompts to pick from")
	}

	items := make([]picker.Item, 0, len(pending))
	for _, rec := range pending {
		it := picker.Item{Rec: rec}
		if content, err := cmd.app.Prompts.Read(rec); err == nil {
			it.Desc = prompt.ParseFrontmatter(content).Description
		}
		items = append(items, it)
	}

	rec, chosen, err := picker.Run(items)
	if err != nil {
		return err
	}
	if !chosen {
		return nil
	}

	_, err = fmt.Fprintln(c.Root().Writer, rec.Path)
	return err
}
