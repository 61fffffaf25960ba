package similarity

import (
	"sort"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Options tunes a similarity search. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Weights for the credit-score, income, and loan-amount axes. Must be
	// non-negative with a positive sum; normalized internally.
	Weights [3]float64
	// TopK is the maximum number of matches returned.
	TopK int
	// MinThreshold filters out matches scoring below it, in [0,1].
	MinThreshold float64
}

// DefaultOptions returns equal axis weights, top 5, threshold 0.5.
func DefaultOptions() Options {
	return Options{Weights: [3]float64{1, 1, 1}, TopK: 5, MinThreshold: 0.5}
}

// Match pairs a sample profile with its weighted similarity score.
type Match struct {
	Profile profile.LabeledProfile `json:"profile"`
	Score   float64                `json:"score"`
}

// FindSimilar ranks the samples most similar to the target along the
// credit-score, income, and loan-amount axes, by weighted normalized
// closeness. Validation failures surface immediately; there is no silent
// correction of bad arguments.
func FindSimilar(samples []profile.LabeledProfile, targetCredit, targetIncome, targetLoan float64, opts Options) ([]Match, error) {
	if len(samples) == 0 {
		return nil, errors.ValidationError("similarity search requires a non-empty sample set")
	}
	weightSum := 0.0
	for i, w := range opts.Weights {
		if w < 0 {
			return nil, errors.ValidationErrorf("weight %d is negative (%g)", i, w)
		}
		weightSum += w
	}
	if weightSum <= 0 {
		return nil, errors.ValidationError("weights must sum to a positive value")
	}
	if opts.TopK <= 0 {
		return nil, errors.ValidationErrorf("top_k must be positive, got %d", opts.TopK)
	}
	if opts.MinThreshold < 0 || opts.MinThreshold > 1 {
		return nil, errors.ValidationErrorf("min_threshold must be within [0,1], got %g", opts.MinThreshold)
	}

	var weights [3]float64
	for i := range opts.Weights {
		weights[i] = opts.Weights[i] / weightSum
	}

	axes := [3]axis{
		{target: targetCredit, value: func(p *profile.BorrowerProfile) float64 { return float64(p.CreditScore) }},
		{target: targetIncome, value: func(p *profile.BorrowerProfile) float64 { return p.AnnualIncome }},
		{target: targetLoan, value: func(p *profile.BorrowerProfile) float64 { return p.LoanAmount }},
	}
	for i := range axes {
		axes[i].computeRange(samples)
	}

	matches := make([]Match, 0, len(samples))
	for _, sample := range samples {
		score := 0.0
		for i := range axes {
			score += weights[i] * axes[i].similarity(&sample.Profile)
		}
		if score >= opts.MinThreshold {
			matches = append(matches, Match{Profile: sample, Score: score})
		}
	}

	// Stable sort keeps input order on score ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > opts.TopK {
		matches = matches[:opts.TopK]
	}
	return matches, nil
}

// axis is one similarity dimension with its sample range.
type axis struct {
	target     float64
	value      func(*profile.BorrowerProfile) float64
	valueRange float64
}

func (a *axis) computeRange(samples []profile.LabeledProfile) {
	min := a.value(&samples[0].Profile)
	max := min
	for i := range samples {
		v := a.value(&samples[i].Profile)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	a.valueRange = max - min
}

// similarity is 1 at an exact match, falling linearly with distance over
// the sample range. A degenerate range (all samples identical on this
// axis) contributes full similarity rather than a division by zero.
func (a *axis) similarity(p *profile.BorrowerProfile) float64 {
	if a.valueRange <= 0 {
		return 1
	}
	diff := a.value(p) - a.target
	if diff < 0 {
		diff = -diff
	}
	return 1 - diff/a.valueRange
}
