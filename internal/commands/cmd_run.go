package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/internal/runner"
	"github.com/colonyops/promptq/pkg/iojson"
)

// RunCmd implements the promptq run command.
type RunCmd struct {
	flags *Flags
	app   *promptq.App

	parallel   bool
	jsonOutput bool
}

// NewRunCmd creates a new run command.
func NewRunCmd(flags *Flags, app *promptq.App) *RunCmd {
	return &RunCmd{flags: flags, app: app}
}

// Register adds the run command to the application.
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Execute prompts via the host runtime and archive them",
		UsageText: "promptq run [options] [token]...",
		Description: `Resolves every token, reads every prompt body, and only then hands the
prompts to the configured host command. Resolution is all-or-nothing:
one unresolved token aborts the whole batch before anything executes.

Sequential mode (default) runs prompts one at a time, archiving each
into prompts/completed/ as it succeeds and stopping at the first
failure. --parallel performs a single batched handoff and lets the host
schedule the prompts itself; archival happens only after the handoff
succeeds.

With no tokens, the most recently created pending prompt is run.

Examples:
  promptq run            # run the newest pending prompt
  promptq run 5 6        # run 005-* and 006-* in order
  promptq run -p 5 6 7   # one batched handoff for all three`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "parallel",
				Aliases:     []string{"p"},
				Usage:       "hand the whole batch to the host in one call",
				Destination: &cmd.parallel,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output results as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	tokens := c.Args().Slice()
	if len(tokens) == 0 {
		tokens = []string{""}
	}

	results, runErr := cmd.app.Runner.Run(ctx, tokens, cmd.parallel)

	// Resolution failures produce no results; surface the candidate list.
	if results == nil && runErr != nil {
		if errors.Is(runErr, prompt.ErrNotFound) || errors.Is(runErr, prompt.ErrAmbiguous) {
			return runErr
		}
		return fmt.Errorf("run prompts: %w", runErr)
	}

	out := c.Root().Writer
	for _, res := range results {
		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, res); err != nil {
				return err
			}
			continue
		}

		line := fmt.Sprintf("%s %s %s", styles.StatusIcon(res.Status), res.Filename, res.Status)
		if res.Status == runner.StatusFailed && res.Error != "" {
			line += ": " + res.Error
		}
		fmt.Fprintln(out, line)
	}

	if runErr != nil {
		return fmt.Errorf("run prompts: %w", runErr)
	}
	return nil
}
