package stats

import (
	"loansight/domain/profile"
)

// Summary holds descriptive statistics for one continuous field.
// StdDev is the population standard deviation (divide by N, not N-1).
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// CategoryCounts holds the distinct observed values of one categorical
// field, in first-seen order, with empirical frequency counts for
// sampling.
type CategoryCounts struct {
	Values []string       `json:"values"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// Frequency returns the empirical probability of value, 0 if unseen.
func (c CategoryCounts) Frequency(value string) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Counts[value]) / float64(c.Total)
}

// Mode returns the most frequent value; ties break toward first-seen
// order. Empty string for an empty count set.
func (c CategoryCounts) Mode() string {
	best, bestCount := "", -1
	for _, v := range c.Values {
		if c.Counts[v] > bestCount {
			best, bestCount = v, c.Counts[v]
		}
	}
	return best
}

// FeatureStatistics is the per-field statistics bundle computed once over
// a labeled training corpus. Built in one pass, immutable afterward;
// rebuilding requires a fresh corpus.
type FeatureStatistics struct {
	Continuous  map[profile.Field]Summary        `json:"continuous"`
	Categorical map[profile.Field]CategoryCounts `json:"categorical"`
	SampleSize  int                              `json:"sample_size"`
}

// ContinuousOrDefault returns the summary for field, or the provided
// fallback when the field was not observed. The generator uses this for
// corpora that omit derived columns.
func (s *FeatureStatistics) ContinuousOrDefault(field profile.Field, fallback Summary) Summary {
	if sum, ok := s.Continuous[field]; ok && sum.StdDev >= 0 {
		return sum
	}
	return fallback
}

// CategoricalOrDefault returns category counts for field, or a uniform
// fallback over the provided values.
func (s *FeatureStatistics) CategoricalOrDefault(field profile.Field, fallback []string) CategoryCounts {
	if c, ok := s.Categorical[field]; ok && c.Total > 0 {
		return c
	}
	counts := make(map[string]int, len(fallback))
	for _, v := range fallback {
		counts[v] = 1
	}
	return CategoryCounts{Values: fallback, Counts: counts, Total: len(fallback)}
}
