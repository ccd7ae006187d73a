package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/promptq/internal/commands"
	"github.com/colonyops/promptq/internal/core/config"
	"github.com/colonyops/promptq/internal/promptq"
	"github.com/colonyops/promptq/internal/runner"
	"github.com/colonyops/promptq/pkg/executil"
	"github.com/colonyops/promptq/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		pqApp     = &promptq.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "promptq",
		Usage:     "Manage a queue of numbered prompt files",
		UsageText: "promptq [global options] command [command options]",
		Description: `Promptq keeps agent prompts as numbered markdown files in a prompts/
directory, runs them through a configured host command, and archives the
ones that complete into prompts/completed/.

Run 'promptq' with no arguments to open the interactive prompt picker.
Run 'promptq new' to queue a new prompt.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PROMPTQ_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("PROMPTQ_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PROMPTQ_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"C"},
				Usage:       "workspace directory holding prompts/, TO-DOS.md, and whats-next.md",
				Sources:     cli.EnvVars("PROMPTQ_DIR"),
				Value:       commands.DefaultWorkDir(),
				Destination: &flags.WorkDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.WorkDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			host := &runner.ShellHost{
				Command:      cfg.Host.Command,
				BatchCommand: cfg.Host.BatchCommand,
				Dir:          cfg.WorkDir,
				Shell:        executil.RealShell{},
				Stdout:       os.Stdout,
				Stderr:       os.Stderr,
				Logger:       logger.With().Str("component", "host").Logger(),
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*pqApp = *promptq.NewApp(cfg, host, logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	pickCmd := commands.NewPickCmd(flags, pqApp)

	app = commands.NewNewCmd(flags, pqApp).Register(app)
	app = commands.NewLsCmd(flags, pqApp).Register(app)
	app = commands.NewShowCmd(flags, pqApp).Register(app)
	app = commands.NewRunCmd(flags, pqApp).Register(app)
	app = commands.NewArchiveCmd(flags, pqApp).Register(app)
	app = commands.NewTodoCmd(flags, pqApp).Register(app)
	app = commands.NewNextCmd(flags, pqApp).Register(app)
	app = pickCmd.Register(app)
	app = commands.NewDoctorCmd(flags, pqApp).Register(app)

	// Open the picker when invoked bare on a terminal; otherwise show help.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'promptq --help' for usage", c.Args().First())
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return pickCmd.Run(ctx, c)
		}
		return cli.ShowSubcommandHelp(c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
