package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/promptq"
)

// ArchiveCmd implements the promptq archive command.
type ArchiveCmd struct {
	flags *Flags
	app   *promptq.App
}

// NewArchiveCmd creates a new archive command.
func NewArchiveCmd(flags *Flags, app *promptq.App) *ArchiveCmd {
	return &ArchiveCmd{flags: flags, app: app}
}

// Register adds the archive command to the application.
func (cmd *ArchiveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "archive",
		Aliases:   []string{"done"},
		Usage:     "Move prompts into the completed archive without running them",
		UsageText: "promptq archive <token>...",
		Description: `Resolves every token, then moves each prompt into prompts/completed/.

Resolution is all-or-nothing: one unresolved token aborts the batch
before any file moves. Archiving an already-archived prompt fails with
not-found; a same-named file in the archive fails with a conflict and
nothing is overwritten.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ArchiveCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: promptq archive <token>...")
	}

	records, err := cmd.app.Prompts.ResolveAll(c.Args().Slice())
	if err != nil {
		return err
	}

	out := c.Root().Writer
	for _, rec := range records {
		dest, err := cmd.app.Prompts.Archive(rec.Filename)
		if err != nil {
			return fmt.Errorf("archive %s: %w", rec.Filename, err)
		}
		cmd.app.Logger.Info().Str("file", rec.Filename).Str("archived_to", dest).Msg("prompt archived")
		fmt.Fprintf(out, "%s %s -> %s\n", styles.StatusIcon("archived"), rec.Filename, dest)
	}

	return nil
}
