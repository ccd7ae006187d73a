// Package todo implements the append-only TO-DOS.md log. Entries are only
// ever appended; there is no update or delete operation.
package todo

import (
	"fmt"
	"strings"
	"time"
)

// HeadingTimeLayout is the timestamp format used in section headings.
const HeadingTimeLayout = "2006-01-02 15:04"

// Entry is one log section, keyed by a human-readable title plus timestamp.
type Entry struct {
	Title     string
	CreatedAt time.Time
	Items     []Item
}

// Item is a single structured bullet inside an entry. Solution is optional.
type Item struct {
	Action      string // e.g. "Fix", "Add", "Refactor"
	Component   string // what the action applies to
	Description string
	Problem     string
	Files       string // path:line-range references
	Solution    string
}

// Heading renders the section heading line for the entry.
func (e Entry) Heading() string {
	return fmt.Sprintf("## %s - %s", e.Title, e.CreatedAt.Format(HeadingTimeLayout))
}

// Bullet renders the canonical single-line form of an item.
func (i Item) Bullet() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **%s %s** - %s.", i.Action, i.Component, strings.TrimRight(i.Description, "."))
	if i.Problem != "" {
		fmt.Fprintf(&b, " **Problem:** %s.", strings.TrimRight(i.Problem, "."))
	}
	if i.Files != "" {
		fmt.Fprintf(&b, " **Files:** %s.", strings.TrimRight(i.Files, "."))
	}
	if i.Solution != "" {
		fmt.Fprintf(&b, " **Solution:** %s.", strings.TrimRight(i.Solution, "."))
	}
	return b.String()
}

// Render produces the full markdown block for the entry: heading, one bullet
// per item, trailing blank line.
func (e Entry) Render() string {
	var b strings.Builder
	b.WriteString(e.Heading())
	b.WriteString("\n\n")
	for _, item := range e.Items {
		b.WriteString(item.Bullet())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
