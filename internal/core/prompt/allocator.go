package prompt

// NextNumber scans the pending listing and allocates the next sequence
// number: max leading prefix + 1, or 1 when no prompt files exist. No
// cross-process coordination is attempted; the tool assumes exclusive
// single-user access to the working directory between invocations.
func (s *Store) NextNumber() (int, error) {
	records, err := s.Pending()
	if err != nil {
		return 0, err
	}

	maxNum := 0
	for _, r := range records {
		if r.Number > maxNum {
			maxNum = r.Number
		}
	}

	return maxNum + 1, nil
}
