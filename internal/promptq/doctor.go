package promptq

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/promptq/internal/core/prompt"
)

// CheckStatus is the outcome of a single doctor check.
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// Check is one workspace health finding.
type Check struct {
	Name   string      `json:"name"`
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail,omitempty"`
}

// Doctor inspects the workspace for conditions that break resolution or
// archival: a missing prompts directory, duplicate sequence numbers (which
// make numeric tokens ambiguous), and pending files that would collide with
// the archive.
func (a *App) Doctor() []Check {
	var checks []Check

	dir := a.Config.PromptsPath()
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			checks = append(checks, Check{
				Name:   "prompts directory",
				Status: CheckWarn,
				Detail: fmt.Sprintf("%s does not exist; run 'promptq new' to create it", dir),
			})
		} else {
			checks = append(checks, Check{Name: "prompts directory", Status: CheckFail, Detail: err.Error()})
		}
		return checks
	}
	checks = append(checks, Check{Name: "prompts directory", Status: CheckOK, Detail: dir})

	pending, err := a.Prompts.Pending()
	if err != nil {
		checks = append(checks, Check{Name: "pending listing", Status: CheckFail, Detail: err.Error()})
		return checks
	}

	byNumber := map[int][]string{}
	for _, rec := range pending {
		byNumber[rec.Number] = append(byNumber[rec.Number], rec.Filename)
	}
	dupes := false
	for number, names := range byNumber {
		if len(names) > 1 {
			dupes = true
			checks = append(checks, Check{
				Name:   "duplicate sequence numbers",
				Status: CheckWarn,
				Detail: fmt.Sprintf("%s shared by %v; numeric token %d will be ambiguous", prompt.FormatNumber(number), names, number),
			})
		}
	}
	if !dupes {
		checks = append(checks, Check{Name: "duplicate sequence numbers", Status: CheckOK, Detail: "none"})
	}

	collisions := false
	for _, rec := range pending {
		dest := filepath.Join(a.Prompts.CompletedDir(), rec.Filename)
		if _, err := os.Stat(dest); err == nil {
			collisions = true
			checks = append(checks, Check{
				Name:   "archive collisions",
				Status: CheckWarn,
				Detail: fmt.Sprintf("%s already exists in the archive; archiving it will fail with a conflict", rec.Filename),
			})
		}
	}
	if !collisions {
		checks = append(checks, Check{Name: "archive collisions", Status: CheckOK, Detail: "none"})
	}

	return checks
}
