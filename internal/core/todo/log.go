package todo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrNotFound is returned when the log file is missing or has no sections.
var ErrNotFound = errors.New("todo log is empty")

// Section is a parsed read-only view of one log entry. Body lines are kept
// verbatim; the log never interprets bullet content beyond presentation.
type Section struct {
	Title     string
	CreatedAt time.Time
	Body      []string
}

// Log is the append-only markdown todo file.
type Log struct {
	path string
}

// NewLog returns a log over the given file path. The file is created on
// first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Append writes an entry section to the end of the log. The file is opened
// in append mode so prior content is never rewritten.
func (l *Log) Append(e Entry) error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open todo log: %w", err)
	}

	if _, err := f.WriteString(e.Render()); err != nil {
		_ = f.Close()
		return fmt.Errorf("append todo entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close todo log: %w", err)
	}
	return nil
}

// Sections parses the log into its entries, oldest first. A missing file or
// a file with no "## " headings fails with ErrNotFound.
func (l *Log) Sections() ([]Section, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open todo log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		sections []Section
		current  *Section
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if title, at, ok := parseHeading(line); ok {
			if current != nil {
				current.Body = trimBlankEdges(current.Body)
				sections = append(sections, *current)
			}
			current = &Section{Title: title, CreatedAt: at}
			continue
		}

		if current != nil {
			current.Body = append(current.Body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan todo log: %w", err)
	}

	if current != nil {
		current.Body = trimBlankEdges(current.Body)
		sections = append(sections, *current)
	}

	if len(sections) == 0 {
		return nil, ErrNotFound
	}
	return sections, nil
}

// parseHeading matches "## <title> - <YYYY-MM-DD HH:MM>" lines. The
// timestamp is anchored to the end so titles may themselves contain " - ".
func parseHeading(line string) (string, time.Time, bool) {
	rest, ok := strings.CutPrefix(line, "## ")
	if !ok {
		return "", time.Time{}, false
	}

	idx := strings.LastIndex(rest, " - ")
	if idx < 0 {
		return "", time.Time{}, false
	}

	at, err := time.Parse(HeadingTimeLayout, rest[idx+3:])
	if err != nil {
		return "", time.Time{}, false
	}

	return strings.TrimSpace(rest[:idx]), at, true
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
