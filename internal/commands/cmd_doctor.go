package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/promptq/internal/core/styles"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/pkg/iojson"
)

// DoctorCmd implements the promptq doctor command.
type DoctorCmd struct {
	flags *Flags
	app   *promptq.App

	jsonOutput bool
}

// NewDoctorCmd creates a new doctor command.
func NewDoctorCmd(flags *Flags, app *promptq.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

// Register adds the doctor command to the application.
func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "doctor",
		Usage:     "Check the workspace for resolution and archival hazards",
		UsageText: "promptq doctor [--json]",
		Description: `Inspects the prompts directory for conditions that break commands later:
a missing directory, duplicate sequence numbers, and pending files that
collide with the archive.

Exits non-zero when any check fails.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output checks as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	checks := cmd.app.Doctor()
	out := c.Root().Writer

	failed := 0
	for _, check := range checks {
		if check.Status == promptq.CheckFail {
			failed++
		}

		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, check); err != nil {
				return err
			}
			continue
		}

		icon := styles.StatusIcon("completed")
		switch check.Status {
		case promptq.CheckWarn:
			icon = styles.Warning.Render("!")
		case promptq.CheckFail:
			icon = styles.StatusIcon("failed")
		}
		fmt.Fprintf(out, "%s %s: %s\n", icon, check.Name, check.Detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
