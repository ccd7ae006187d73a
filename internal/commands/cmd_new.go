package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/core/validate"
	"github.com/colonyops/promptq/internal/promptq"
)

// NewCmd implements the promptq new command.
type NewCmd struct {
	flags *Flags
	app   *promptq.App

	title        string
	description  string
	argumentHint string
	allowedTools string
	body         string
}

// NewNewCmd creates a new new command.
func NewNewCmd(flags *Flags, app *promptq.App) *NewCmd {
	return &NewCmd{flags: flags, app: app}
}

// Register adds the new command to the application.
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a new prompt file",
		UsageText: "promptq new [options] [title]",
		Description: `Allocates the next sequence number, slugifies the title, and writes a
new pending prompt file with YAML front matter.

The body is read from stdin when piped; otherwise the file starts with a
heading only. When no title is given and stdin is a terminal, an
interactive form prompts for input.

Examples:
  promptq new "Add auth middleware"
  cat body.md | promptq new "Add auth middleware" -d "wire session store"
  promptq new`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "front matter description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "argument-hint",
				Usage:       "front matter argument hint shown by the host",
				Destination: &cmd.argumentHint,
			},
			&cli.StringFlag{
				Name:        "allowed-tools",
				Usage:       "front matter allowed tools list",
				Destination: &cmd.allowedTools,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	cmd.title = strings.Join(c.Args().Slice(), " ")

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if !interactive {
		// Piped input becomes the prompt body.
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		cmd.body = string(data)
	}

	if cmd.title == "" {
		if !interactive {
			return fmt.Errorf("title is required when stdin is not a terminal")
		}
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := validate.TitleField("title", cmd.title); err != nil {
		return err
	}

	slug := prompt.Slugify(cmd.title)
	if err := validate.SlugField("slug", slug); err != nil {
		return fmt.Errorf("title %q produces no usable slug: %w", cmd.title, err)
	}

	number, err := cmd.app.Prompts.NextNumber()
	if err != nil {
		return fmt.Errorf("allocate sequence number: %w", err)
	}

	body := cmd.body
	if strings.TrimSpace(body) == "" {
		body = fmt.Sprintf("# %s\n", cmd.title)
	}

	fm := prompt.Frontmatter{
		Description:  cmd.description,
		ArgumentHint: cmd.argumentHint,
		AllowedTools: cmd.allowedTools,
	}

	rec, err := cmd.app.Prompts.Create(number, slug, fm.Render(body))
	if err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}

	cmd.app.Logger.Info().Str("file", rec.Filename).Msg("prompt created")
	fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.Success.Render("created"), rec.Path)
	return nil
}

func (cmd *NewCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Used for the filename slug").
				Validate(validate.Title).
				Value(&cmd.title),
			huh.NewInput().
				Title("Description").
				Description("Front matter summary shown in listings").
				Value(&cmd.description),
			huh.NewInput().
				Title("Argument hint").
				Placeholder("[service name]").
				Value(&cmd.argumentHint),
			huh.NewInput().
				Title("Allowed tools").
				Placeholder("Bash(git:*), Read, Edit").
				Value(&cmd.allowedTools),
			huh.NewText().
				Title("Body").
				Description("Prompt content handed to the host verbatim").
				Value(&cmd.body),
		),
	).Run()
}
