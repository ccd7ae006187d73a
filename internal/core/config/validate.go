package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/promptq/pkg/tmpl"
)

// Validate checks the configuration for errors that would otherwise only
// surface mid-operation.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.PromptsDir == "" {
		errs = errs.Append("prompts_dir", fmt.Errorf("must not be empty"))
	}
	if c.TodoFile == "" {
		errs = errs.Append("todo_file", fmt.Errorf("must not be empty"))
	}
	if c.HandoffFile == "" {
		errs = errs.Append("handoff_file", fmt.Errorf("must not be empty"))
	}

	if err := tmpl.Valid(c.Host.Command); err != nil {
		errs = errs.Append("host.command", err)
	}
	if err := tmpl.Valid(c.Host.BatchCommand); err != nil {
		errs = errs.Append("host.batch_command", err)
	}

	for i, pattern := range c.Ignore {
		if pattern == "" {
			errs = errs.Append(fmt.Sprintf("ignore[%d]", i), fmt.Errorf("empty pattern"))
		}
	}

	return errs.ToError()
}
