package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/promptq/internal/promptq"
)

// ShowCmd implements the promptq show command.
type ShowCmd struct {
	flags *Flags
	app   *promptq.App

	raw bool
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags, app *promptq.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Aliases:   []string{"cat"},
		Usage:     "Resolve and display a prompt",
		UsageText: "promptq show [token]",
		Description: `Resolves a single prompt and renders its markdown to the terminal.

Token forms:
  (empty)    the most recently created pending prompt
  2, 002     numeric match against the zero-padded filename prefix
  auth       case-sensitive substring match against the full filename

Output is styled when attached to a terminal; use --raw to force plain
text.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print raw file content without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	rec, err := cmd.app.Prompts.Resolve(c.Args().First())
	if err != nil {
		return err
	}

	content, err := cmd.app.Prompts.Read(rec)
	if err != nil {
		return fmt.Errorf("read prompt: %w", err)
	}

	out := c.Root().Writer

	if cmd.raw || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err = fmt.Fprint(out, content)
		return err
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > 120 {
		width = 120
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}
