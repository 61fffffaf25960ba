package similarity

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

func samplesOf(rows ...[3]float64) []profile.LabeledProfile {
	samples := make([]profile.LabeledProfile, len(rows))
	for i, row := range rows {
		samples[i] = profile.LabeledProfile{
			Profile: profile.BorrowerProfile{
				ProfileID:    strconv.Itoa(i + 1),
				CreditScore:  int(row[0]),
				AnnualIncome: row[1],
				LoanAmount:   row[2],
			},
			LoanApproved: 1,
		}
	}
	return samples
}

func TestFindSimilar_ValidationFailures(t *testing.T) {
	valid := samplesOf([3]float64{700, 60000, 120000})

	cases := []struct {
		name    string
		samples []profile.LabeledProfile
		opts    Options
	}{
		{"empty samples", nil, DefaultOptions()},
		{"zero top_k", valid, Options{Weights: [3]float64{1, 1, 1}, TopK: 0, MinThreshold: 0.5}},
		{"threshold above one", valid, Options{Weights: [3]float64{1, 1, 1}, TopK: 5, MinThreshold: 1.5}},
		{"negative threshold", valid, Options{Weights: [3]float64{1, 1, 1}, TopK: 5, MinThreshold: -0.1}},
		{"negative weight", valid, Options{Weights: [3]float64{1, -1, 1}, TopK: 5, MinThreshold: 0.5}},
		{"all-zero weights", valid, Options{Weights: [3]float64{0, 0, 0}, TopK: 5, MinThreshold: 0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FindSimilar(tc.samples, 700, 60000, 120000, tc.opts)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestFindSimilar_ExactMatchRanksFirst(t *testing.T) {
	samples := samplesOf(
		[3]float64{600, 40000, 80000},
		[3]float64{720, 80000, 160000},
		[3]float64{800, 150000, 400000},
	)

	matches, err := FindSimilar(samples, 720, 80000, 160000, DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "2", matches[0].Profile.Profile.ProfileID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
	}
}

func TestFindSimilar_DegenerateAxisScoresFull(t *testing.T) {
	// All samples share one income: that axis must contribute full
	// similarity instead of dividing by a zero range.
	samples := samplesOf(
		[3]float64{650, 60000, 100000},
		[3]float64{750, 60000, 100000},
	)

	matches, err := FindSimilar(samples, 650, 999999, 100000, Options{
		Weights:      [3]float64{0, 1, 0},
		TopK:         5,
		MinThreshold: 0.5,
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, 1.0, m.Score)
	}
}

func TestFindSimilar_TopKAndThreshold(t *testing.T) {
	samples := samplesOf(
		[3]float64{700, 60000, 120000},
		[3]float64{710, 62000, 125000},
		[3]float64{690, 58000, 115000},
		[3]float64{500, 20000, 400000},
	)

	opts := DefaultOptions()
	opts.TopK = 2
	matches, err := FindSimilar(samples, 700, 60000, 120000, opts)
	require.NoError(t, err)
	assert.Len(t, matches, 2, "top_k must cap the result set")

	// A threshold of 1.0 admits only perfect matches.
	opts = DefaultOptions()
	opts.MinThreshold = 1.0
	matches, err = FindSimilar(samples, 700, 60000, 120000, opts)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "1", matches[0].Profile.Profile.ProfileID)
}
