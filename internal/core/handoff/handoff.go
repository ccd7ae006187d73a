// Package handoff regenerates the whats-next.md document from the current
// workspace state. The file is rewritten wholesale on every run; it is a
// snapshot, not a log.
package handoff

import (
	"fmt"
	"os"
	"time"

	"github.com/colonyops/promptq/internal/core/prompt"
	"github.com/colonyops/promptq/internal/core/todo"
	"github.com/colonyops/promptq/pkg/tmpl"
)

// Data is everything the handoff template can see.
type Data struct {
	GeneratedAt time.Time
	Pending     []Prompt
	Todos       []todo.Section
}

// Prompt pairs a record with its parsed front matter for display.
type Prompt struct {
	Record      prompt.Record
	Description string
}

const documentTemplate = `# What's Next

_Generated {{ .GeneratedAt.Format "2006-01-02 15:04" }}. This file is regenerated; do not edit._

## Pending prompts
{{ if .Pending }}{{ range .Pending }}
- ` + "`{{ .Record.Filename }}`" + `{{ if .Description }}: {{ .Description }}{{ end }}{{ end }}
{{ else }}
Nothing pending. Create a prompt with ` + "`promptq new`" + `.
{{ end }}
## Recent todos
{{ if .Todos }}{{ range .Todos }}
### {{ .Title }} ({{ .CreatedAt.Format "2006-01-02 15:04" }})
{{ range .Body }}{{ . }}
{{ end }}{{ end }}{{ else }}
No todo entries logged.
{{ end }}`

// Write renders the handoff document to path, replacing any previous
// version.
func Write(path string, data Data) error {
	out, err := tmpl.Render(documentTemplate, data)
	if err != nil {
		return fmt.Errorf("render handoff document: %w", err)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write handoff document: %w", err)
	}
	return nil
}
