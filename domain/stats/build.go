package stats

import (
	"log"

	mstats "github.com/montanaflynn/stats"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Build computes feature statistics over a labeled training corpus in a
// single pass. Fails with an EMPTY_CORPUS error when the corpus is empty:
// statistics over nothing are undefined. No partial or incremental
// updates are supported.
func Build(corpus []profile.LabeledProfile) (*FeatureStatistics, error) {
	if len(corpus) == 0 {
		return nil, errors.EmptyCorpus("feature statistics")
	}

	fs := &FeatureStatistics{
		Continuous:  make(map[profile.Field]Summary, len(profile.ContinuousFields)),
		Categorical: make(map[profile.Field]CategoryCounts, len(profile.CategoricalFields)),
		SampleSize:  len(corpus),
	}

	// Column-major extraction so each field is one montanaflynn call set.
	column := make([]float64, len(corpus))
	for _, field := range profile.ContinuousFieldOrder {
		accessor := profile.ContinuousFields[field]
		for i := range corpus {
			column[i] = accessor(&corpus[i].Profile)
		}
		summary, err := summarize(column)
		if err != nil {
			return nil, errors.Wrapf(err, "summarizing field %s", field)
		}
		fs.Continuous[field] = summary
	}

	for _, field := range profile.CategoricalFieldOrder {
		accessor := profile.CategoricalFields[field]
		counts := CategoryCounts{Counts: make(map[string]int)}
		for i := range corpus {
			value := accessor(&corpus[i].Profile)
			if _, seen := counts.Counts[value]; !seen {
				counts.Values = append(counts.Values, value)
			}
			counts.Counts[value]++
			counts.Total++
		}
		fs.Categorical[field] = counts
	}

	log.Printf("[FeatureStatistics] built over %d profiles (%d continuous, %d categorical fields)",
		fs.SampleSize, len(fs.Continuous), len(fs.Categorical))
	return fs, nil
}

// summarize computes min/max/mean and population stddev for one column.
func summarize(column []float64) (Summary, error) {
	min, err := mstats.Min(column)
	if err != nil {
		return Summary{}, err
	}
	max, err := mstats.Max(column)
	if err != nil {
		return Summary{}, err
	}
	mean, err := mstats.Mean(column)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := mstats.StandardDeviationPopulation(column)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Min: min, Max: max, Mean: mean, StdDev: stdDev}, nil
}
