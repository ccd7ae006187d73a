package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/pkg/iojson"
)

// LsCmd implements the promptq ls command.
type LsCmd struct {
	flags *Flags
	app   *promptq.App

	completed  bool
	jsonOutput bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *promptq.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List prompt files",
		UsageText: "promptq ls [--completed] [--json]",
		Description: `Displays a table of pending prompts with their number, slug, and front
matter description.

Use --completed to list the archive instead, and --json for line-oriented
output suitable for scripts.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "completed",
				Usage:       "list archived prompts instead of pending ones",
				Destination: &cmd.completed,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	var (
		records []prompt.Record
		err     error
	)
	if cmd.completed {
		records, err = cmd.app.Prompts.Completed()
	} else {
		records, err = cmd.app.Prompts.Pending()
	}
	if err != nil {
		return fmt.Errorf("list prompts: %w", err)
	}

	if len(records) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintln(os.Stderr, "No prompts found")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, rec := range records {
			info := cmd.buildInfo(rec)
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode prompt: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NUM\tSLUG\tDESCRIPTION\tMODIFIED")
	for _, rec := range records {
		info := cmd.buildInfo(rec)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			prompt.FormatNumber(rec.Number), rec.Slug, info.Description, rec.ModTime.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// promptInfo is the JSON output format for promptq ls --json.
type promptInfo struct {
	Number      int    `json:"number"`
	Slug        string `json:"slug"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

func (cmd *LsCmd) buildInfo(rec prompt.Record) promptInfo {
	info := promptInfo{
		Number:   rec.Number,
		Slug:     rec.Slug,
		Filename: rec.Filename,
		Path:     rec.Path,
		Status:   string(rec.Status),
	}

	if content, err := cmd.app.Prompts.Read(rec); err == nil {
		info.Description = prompt.ParseFrontmatter(content).Description
	}

	return info
}
