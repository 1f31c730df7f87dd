package dictionary

import "time"

// recentWindowDays is how far back, in days, an entry counts as recent.
const recentWindowDays = 7

// Stats summarizes the collection. It is computed on demand.
type Stats struct {
	TotalEntries      int      `json:"totalEntries"`
	Categories        []string `json:"categories"`
	AverageComplexity float64  `json:"averageComplexity"`
	RecentEntries     int      `json:"recentEntries"`
}

// Stats computes totals, distinct categories in first-seen order, the mean
// complexity over entries that have one, and how many entries were saved
// within the trailing week. Dates are compared by calendar day.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	loc := now.Location()
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -recentWindowDays)

	st := Stats{
		TotalEntries: len(s.entries),
		Categories:   []string{},
	}
	seen := make(map[string]struct{})
	var sum, rated int
	for _, e := range s.entries {
		if _, ok := seen[e.Category]; !ok {
			seen[e.Category] = struct{}{}
			st.Categories = append(st.Categories, e.Category)
		}
		if e.Complexity != nil {
			sum += *e.Complexity
			rated++
		}
		if day, ok := e.SavedOn(loc); ok && day.After(cutoff) {
			st.RecentEntries++
		}
	}
	if rated > 0 {
		st.AverageComplexity = float64(sum) / float64(rated)
	}
	return st
}
