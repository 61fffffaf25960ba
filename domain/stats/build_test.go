package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

func corpusOf(scores ...int) []profile.LabeledProfile {
	corpus := make([]profile.LabeledProfile, len(scores))
	for i, score := range scores {
		corpus[i] = profile.LabeledProfile{
			Profile: profile.BorrowerProfile{
				CreditScore:      score,
				AnnualIncome:     60000,
				EmploymentStatus: profile.EmploymentEmployed,
				LoanPurpose:      profile.PurposeHome,
			},
			LoanApproved: i % 2,
		}
	}
	return corpus
}

func TestBuild_EmptyCorpus(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyCorpus(err))
}

func TestBuild_PopulationMoments(t *testing.T) {
	// Scores 600, 700, 800: mean 700, population stddev sqrt(20000/3).
	fs, err := Build(corpusOf(600, 700, 800))
	require.NoError(t, err)
	require.Equal(t, 3, fs.SampleSize)

	credit := fs.Continuous[profile.FieldCreditScore]
	assert.Equal(t, 600.0, credit.Min)
	assert.Equal(t, 800.0, credit.Max)
	assert.InDelta(t, 700.0, credit.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(20000.0/3.0), credit.StdDev, 1e-9)

	// Constant column: stddev must be population zero, not NaN.
	income := fs.Continuous[profile.FieldAnnualIncome]
	assert.Equal(t, 0.0, income.StdDev)
	assert.Equal(t, 60000.0, income.Mean)
}

func TestBuild_CategoricalCounts(t *testing.T) {
	corpus := corpusOf(650, 700, 750)
	corpus[2].Profile.EmploymentStatus = profile.EmploymentUnemployed

	fs, err := Build(corpus)
	require.NoError(t, err)

	employment := fs.Categorical[profile.FieldEmploymentStatus]
	assert.Equal(t, 3, employment.Total)
	assert.Equal(t, []string{profile.EmploymentEmployed, profile.EmploymentUnemployed}, employment.Values)
	assert.InDelta(t, 2.0/3.0, employment.Frequency(profile.EmploymentEmployed), 1e-9)
	assert.Equal(t, profile.EmploymentEmployed, employment.Mode())
	assert.Equal(t, 0.0, employment.Frequency("Retired"))
}

func TestShapeProfile(t *testing.T) {
	corpus := corpusOf(600, 650, 700, 750, 800)

	shape, err := ShapeProfile(corpus, profile.FieldCreditScore)
	require.NoError(t, err)
	assert.Equal(t, profile.FieldCreditScore, shape.Field)
	assert.InDelta(t, 700.0, shape.Median, 1e-9)
	assert.InDelta(t, 0.0, shape.Skewness, 1e-9)
	assert.True(t, shape.Q25 <= shape.Median && shape.Median <= shape.Q75)

	_, err = ShapeProfile(corpus, profile.FieldLoanPurpose)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	_, err = ShapeProfile(nil, profile.FieldCreditScore)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyCorpus(err))
}

func TestCategoricalOrDefault_UniformFallback(t *testing.T) {
	fs := &FeatureStatistics{Categorical: map[profile.Field]CategoryCounts{}}
	counts := fs.CategoricalOrDefault(profile.FieldLoanPurpose, []string{"Home", "Auto"})
	assert.Equal(t, 2, counts.Total)
	assert.InDelta(t, 0.5, counts.Frequency("Home"), 1e-9)
}
