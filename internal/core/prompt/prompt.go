// Package prompt implements the numbered prompt file store: sequence
// allocation, token resolution, and archival of executed prompts.
package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SeqWidth is the zero-padded width of sequence number prefixes.
const SeqWidth = 3

// Status is the lifecycle state of a prompt record. It is encoded by file
// location (pending directory vs completed subdirectory), not stored in the
// file itself.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Record is a single prompt file in the store.
type Record struct {
	Number   int       `json:"number"`
	Slug     string    `json:"slug"`
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
	Status   Status    `json:"status"`
	ModTime  time.Time `json:"mod_time"`
}

// FormatNumber renders a sequence number with the standard zero padding.
func FormatNumber(n int) string {
	return fmt.Sprintf("%0*d", SeqWidth, n)
}

// BuildFilename composes the canonical filename for a number and slug.
func BuildFilename(n int, slug string) string {
	return fmt.Sprintf("%s-%s.md", FormatNumber(n), slug)
}

// parseFilename splits a prompt filename into its numeric prefix and slug.
// Returns ok=false for files that don't follow the <NNN>-<slug>.md shape.
func parseFilename(name string) (number int, slug string, ok bool) {
	if !strings.HasSuffix(name, ".md") {
		return 0, "", false
	}
	base := strings.TrimSuffix(name, ".md")

	i := 0
	for i < len(base) && base[i] >= '0' && base[i] <= '9' {
		i++
	}
	// Require the full zero-padded width and a separating hyphen.
	if i < SeqWidth || i >= len(base) || base[i] != '-' {
		return 0, "", false
	}

	n, err := strconv.Atoi(base[:i])
	if err != nil {
		return 0, "", false
	}

	return n, base[i+1:], true
}

// numericPrefix returns the leading digit run of a filename, or "" if the
// file has no numeric prefix.
func numericPrefix(name string) string {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	return name[:i]
}

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a free-form title into a filename-safe hyphenated slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSanitizer.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
