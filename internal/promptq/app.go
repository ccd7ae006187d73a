// Package promptq wires the core stores and services behind a single App
// that commands consume instead of cherry-picking raw dependencies.
package promptq

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/promptq/internal/core/config"
	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/core/todo"
	"github.com/colonyops/promptq/internal/runner"
)

// App is the central entry point for all promptq operations.
type App struct {
	Prompts *prompt.Store
	Todos   *todo.Log
	Runner  *runner.Runner
	Config  *config.Config
	Logger  zerolog.Logger
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, host runner.Host, logger zerolog.Logger) *App {
	store := prompt.NewStore(cfg.PromptsPath(), cfg.Ignore...)

	return &App{
		Prompts: store,
		Todos:   todo.NewLog(cfg.TodoPath()),
		Runner:  runner.New(store, host, logger.With().Str("component", "runner").Logger()),
		Config:  cfg,
		Logger:  logger,
	}
}
