package services

// CompetencyMatcher decides whether a competency set covers a required set.
// Matching is exact string identity; no case folding.
type CompetencyMatcher struct{}

// Match reports whether every required competency appears in have, and
// returns the missing subset in required order. Duplicates in required are
// reported once.
func (CompetencyMatcher) Match(have, required []string) (satisfied bool, missing []string) {
	if len(required) == 0 {
		return true, nil
	}

	held := make(map[string]bool, len(have))
	for _, competency := range have {
		held[competency] = true
	}

	seen := make(map[string]bool, len(required))
	for _, competency := range required {
		if held[competency] || seen[competency] {
			continue
		}
		seen[competency] = true
		missing = append(missing, competency)
	}
	return len(missing) == 0, missing
}
