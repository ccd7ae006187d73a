package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/colonyops/promptq/pkg/executil"
	"github.com/colonyops/promptq/pkg/tmpl"
)

// Handoff is the unit passed across the host boundary: a well-formed file
// path plus its raw body. promptq never interprets the body.
type Handoff struct {
	Path string
	Body string
}

// Host is the external runtime that executes prompt content. Everything
// past this interface (interpolation, tool calls, scheduling) is outside
// promptq's control.
type Host interface {
	// Execute hands one prompt to the host and blocks until it reports
	// success or failure.
	Execute(ctx context.Context, h Handoff) error

	// ExecuteBatch hands a whole batch to the host in one call. The host
	// decides how to schedule the individual prompts.
	ExecuteBatch(ctx context.Context, hs []Handoff) error
}

// ShellHost renders configured command templates and runs them through the
// shell. It is the default Host implementation.
type ShellHost struct {
	Command      string // template, sees .File and .Prompt
	BatchCommand string // template, sees .Files and .Dir
	Dir          string // working directory for the host process
	Shell        executil.Shell
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       zerolog.Logger
}

type commandData struct {
	File   string
	Prompt string
}

type batchCommandData struct {
	Files []string
	Dir   string
}

func (h *ShellHost) Execute(ctx context.Context, hand Handoff) error {
	cmd, err := tmpl.Render(h.Command, commandData{File: hand.Path, Prompt: hand.Body})
	if err != nil {
		return fmt.Errorf("render host command: %w", err)
	}

	h.Logger.Debug().Str("file", hand.Path).Str("cmd", cmd).Msg("host handoff")

	if err := h.Shell.Run(ctx, h.Dir, cmd, h.Stdout, h.Stderr); err != nil {
		return fmt.Errorf("host execution: %w", err)
	}
	return nil
}

func (h *ShellHost) ExecuteBatch(ctx context.Context, hands []Handoff) error {
	files := make([]string, 0, len(hands))
	for _, hand := range hands {
		files = append(files, hand.Path)
	}

	cmd, err := tmpl.Render(h.BatchCommand, batchCommandData{Files: files, Dir: h.Dir})
	if err != nil {
		return fmt.Errorf("render host batch command: %w", err)
	}

	h.Logger.Debug().Int("count", len(hands)).Str("cmd", cmd).Msg("host batch handoff")

	if err := h.Shell.Run(ctx, h.Dir, cmd, h.Stdout, h.Stderr); err != nil {
		return fmt.Errorf("host batch execution: %w", err)
	}
	return nil
}
