package prompt

import (
	"strconv"
	"strings"
)

// Resolve maps a user-supplied token to exactly one pending prompt.
//
//   - Empty token: the most recently created file (by mod time). Fails with
//     NotFound when the pending set is empty.
//   - Integer token: zero-padded and matched against the leading numeric
//     prefix of filenames. Exactly one match required.
//   - Anything else: case-sensitive substring match against full filenames.
//
// Zero matches fail with NotFound carrying the available filenames; more
// than one match fails with Ambiguous carrying all matches. There is no
// automatic tie-break. Resolution is read-only.
func (s *Store) Resolve(token string) (Record, error) {
	records, err := s.Pending()
	if err != nil {
		return Record{}, err
	}

	if token == "" {
		return mostRecent(records)
	}

	var matches []Record
	if n, numErr := strconv.Atoi(token); numErr == nil && n >= 0 {
		prefix := FormatNumber(n)
		for _, r := range records {
			if numericPrefix(r.Filename) == prefix {
				matches = append(matches, r)
			}
		}
	} else {
		for _, r := range records {
			if strings.Contains(r.Filename, token) {
				matches = append(matches, r)
			}
		}
	}

	switch len(matches) {
	case 0:
		return Record{}, &NotFoundError{Token: token, Available: Filenames(records)}
	case 1:
		return matches[0], nil
	default:
		return Record{}, &AmbiguousError{Token: token, Matches: Filenames(matches)}
	}
}

// ResolveAll resolves each token independently and aggregates the results.
// Any failure aborts the whole batch before any result is returned, so a
// caller never acts on a partially resolved set.
func (s *Store) ResolveAll(tokens []string) ([]Record, error) {
	records := make([]Record, 0, len(tokens))
	for _, token := range tokens {
		rec, err := s.Resolve(token)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func mostRecent(records []Record) (Record, error) {
	if len(records) == 0 {
		return Record{}, &NotFoundError{Token: ""}
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.ModTime.After(latest.ModTime) {
			latest = r
		}
	}
	return latest, nil
}
