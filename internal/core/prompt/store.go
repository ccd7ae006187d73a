package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// CompletedDirName is the subdirectory that archived prompts move into.
const CompletedDirName = "completed"

// Store is a filesystem-backed prompt store rooted at a single directory.
// It holds no state beyond the root path; every operation is a function of
// the directory contents at call time.
type Store struct {
	dir    string
	ignore []string
}

// NewStore creates a store over dir. Ignore patterns are doublestar globs
// matched against filenames; matching files are invisible to listing,
// resolution, and allocation.
func NewStore(dir string, ignore ...string) *Store {
	return &Store{dir: dir, ignore: ignore}
}

// Dir returns the pending prompt directory.
func (s *Store) Dir() string { return s.dir }

// CompletedDir returns the archive directory.
func (s *Store) CompletedDir() string { return filepath.Join(s.dir, CompletedDirName) }

// Pending lists pending prompt records sorted by sequence number.
func (s *Store) Pending() ([]Record, error) {
	return s.list(s.dir, StatusPending)
}

// Completed lists archived prompt records sorted by sequence number.
// A missing archive directory is an empty listing, not an error.
func (s *Store) Completed() ([]Record, error) {
	return s.list(s.CompletedDir(), StatusCompleted)
}

func (s *Store) list(dir string, status Status) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || s.ignored(entry.Name()) {
			continue
		}

		number, slug, ok := parseFilename(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}

		records = append(records, Record{
			Number:   number,
			Slug:     slug,
			Filename: entry.Name(),
			Path:     filepath.Join(dir, entry.Name()),
			Status:   status,
			ModTime:  info.ModTime(),
		})
	}

	slices.SortFunc(records, func(a, b Record) int {
		if a.Number != b.Number {
			return a.Number - b.Number
		}
		// Duplicate numbers are possible (and surfaced as Ambiguous by the
		// resolver); keep the listing deterministic.
		if a.Filename < b.Filename {
			return -1
		}
		return 1
	})

	return records, nil
}

func (s *Store) ignored(name string) bool {
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Read returns the raw content of a record's file.
func (s *Store) Read(rec Record) (string, error) {
	data, err := os.ReadFile(rec.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Token: rec.Filename}
		}
		return "", fmt.Errorf("read prompt %s: %w", rec.Filename, err)
	}
	return string(data), nil
}

// Create writes a new pending prompt file. The file is created exclusively;
// a name collision fails with Conflict rather than overwriting, since prompt
// files are immutable once written.
func (s *Store) Create(number int, slug, content string) (Record, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Record{}, fmt.Errorf("create prompts dir: %w", err)
	}

	filename := BuildFilename(number, slug)
	path := filepath.Join(s.dir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return Record{}, &ConflictError{Dest: path}
		}
		return Record{}, fmt.Errorf("create prompt file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return Record{}, fmt.Errorf("write prompt file: %w", err)
	}
	if err := f.Close(); err != nil {
		return Record{}, fmt.Errorf("close prompt file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Record{}, fmt.Errorf("stat prompt file: %w", err)
	}

	return Record{
		Number:   number,
		Slug:     slug,
		Filename: filename,
		Path:     path,
		Status:   StatusPending,
		ModTime:  info.ModTime(),
	}, nil
}

// Archive moves a pending prompt into the completed subdirectory and returns
// its new path. The move is a single rename: either the file lands in the
// archive or it stays where it was.
//
// A file already gone from the pending set fails with NotFound (archiving
// twice is a no-op error, never destructive). An existing same-named archive
// file fails with Conflict; nothing is overwritten.
func (s *Store) Archive(filename string) (string, error) {
	src := filepath.Join(s.dir, filename)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			pending, _ := s.Pending()
			return "", &NotFoundError{Token: filename, Available: Filenames(pending)}
		}
		return "", fmt.Errorf("stat pending prompt: %w", err)
	}

	if err := os.MkdirAll(s.CompletedDir(), 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	dest := filepath.Join(s.CompletedDir(), filename)
	if _, err := os.Stat(dest); err == nil {
		return "", &ConflictError{Dest: dest}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat archive destination: %w", err)
	}

	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("archive %s: %w", filename, err)
	}

	return dest, nil
}

// Filenames projects records to their filenames, preserving order.
func Filenames(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Filename)
	}
	return names
}
