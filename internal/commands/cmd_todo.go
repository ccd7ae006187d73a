package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/core/todo"
	"github.com/colonyops/promptq/internal/core/validate"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/pkg/iojson"
)

// TodoCmd implements the promptq todo command group.
type TodoCmd struct {
	flags *Flags
	app   *promptq.App
	fr    *iojson.FileReader[todoInput]

	// add flags
	addTitle     string
	addAction    string
	addComponent string
	addDesc      string
	addProblem   string
	addFiles     string
	addSolution  string

	// list flags
	jsonOutput bool
}

// todoInput is the JSON input schema for promptq todo add -f.
type todoInput struct {
	Title string `json:"title"`
	Items []struct {
		Action      string `json:"action"`
		Component   string `json:"component"`
		Description string `json:"description"`
		Problem     string `json:"problem,omitempty"`
		Files       string `json:"files,omitempty"`
		Solution    string `json:"solution,omitempty"`
	} `json:"items"`
}

// NewTodoCmd creates a new todo command.
func NewTodoCmd(flags *Flags, app *promptq.App) *TodoCmd {
	return &TodoCmd{flags: flags, app: app, fr: &iojson.FileReader[todoInput]{}}
}

// Register adds the todo command to the application.
func (cmd *TodoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "todo",
		Usage: "Manage the append-only TO-DOS.md log",
		Description: `The todo log is append-only: entries are added as dated sections and
never updated or deleted.

Examples:
  promptq todo add -t "Resolver cleanup" -a Fix -c Resolver \
      --desc "padding bug" --problem "token 2 never matched" \
      --paths internal/core/prompt/resolver.go:30-45
  echo '{"title":"Batch","items":[...]}' | promptq todo add
  promptq todo list`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.listCmd(),
		},
	})

	return app
}

func (cmd *TodoCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append an entry to the todo log",
		UsageText: "promptq todo add [options]",
		Description: `Appends one section to TO-DOS.md with a timestamped heading.

A single item is built from flags; multiple items can be supplied as
JSON via -f or stdin.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "section title",
				Destination: &cmd.addTitle,
			},
			&cli.StringFlag{
				Name:        "action",
				Aliases:     []string{"a"},
				Usage:       "item action, e.g. Fix, Add, Refactor",
				Destination: &cmd.addAction,
			},
			&cli.StringFlag{
				Name:        "component",
				Aliases:     []string{"c"},
				Usage:       "component the action applies to",
				Destination: &cmd.addComponent,
			},
			&cli.StringFlag{
				Name:        "desc",
				Usage:       "item description",
				Destination: &cmd.addDesc,
			},
			&cli.StringFlag{
				Name:        "problem",
				Usage:       "what is wrong today",
				Destination: &cmd.addProblem,
			},
			&cli.StringFlag{
				Name:        "paths",
				Usage:       "file references as path:line-range",
				Destination: &cmd.addFiles,
			},
			&cli.StringFlag{
				Name:        "solution",
				Usage:       "proposed fix (optional)",
				Destination: &cmd.addSolution,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *TodoCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List todo log sections",
		UsageText: "promptq todo list [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *TodoCmd) runAdd(ctx context.Context, c *cli.Command) error {
	entry, err := cmd.buildEntry()
	if err != nil {
		return err
	}

	if err := cmd.app.Todos.Append(entry); err != nil {
		return fmt.Errorf("append todo: %w", err)
	}

	cmd.app.Logger.Info().Str("title", entry.Title).Int("items", len(entry.Items)).Msg("todo appended")
	fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.StatusIcon("archived"), entry.Heading())
	return nil
}

func (cmd *TodoCmd) buildEntry() (todo.Entry, error) {
	now := time.Now()

	// Flag mode: one item from flags.
	if cmd.addTitle != "" {
		if err := validate.TitleField("title", cmd.addTitle); err != nil {
			return todo.Entry{}, err
		}
		if cmd.addAction == "" || cmd.addComponent == "" || cmd.addDesc == "" {
			return todo.Entry{}, fmt.Errorf("flags --action, --component, and --desc are required with --title")
		}

		return todo.Entry{
			Title:     cmd.addTitle,
			CreatedAt: now,
			Items: []todo.Item{{
				Action:      cmd.addAction,
				Component:   cmd.addComponent,
				Description: cmd.addDesc,
				Problem:     cmd.addProblem,
				Files:       cmd.addFiles,
				Solution:    cmd.addSolution,
			}},
		}, nil
	}

	// JSON mode: full entry from -f or stdin.
	input, err := cmd.fr.Read()
	if err != nil {
		return todo.Entry{}, fmt.Errorf("read input: %w", err)
	}
	if err := validate.TitleField("title", input.Title); err != nil {
		return todo.Entry{}, err
	}
	if len(input.Items) == 0 {
		return todo.Entry{}, fmt.Errorf("entry has no items")
	}

	entry := todo.Entry{Title: input.Title, CreatedAt: now}
	for _, it := range input.Items {
		entry.Items = append(entry.Items, todo.Item{
			Action:      it.Action,
			Component:   it.Component,
			Description: it.Description,
			Problem:     it.Problem,
			Files:       it.Files,
			Solution:    it.Solution,
		})
	}
	return entry, nil
}

func (cmd *TodoCmd) runList(ctx context.Context, c *cli.Command) error {
	sections, err := cmd.app.Todos.Sections()
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	out := c.Root().Writer
	for _, section := range sections {
		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, section); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintln(out, styles.Title.Render(section.Title), styles.Muted.Render(section.CreatedAt.Format("2006-01-02 15:04")))
		for _, line := range section.Body {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}

	return nil
}
