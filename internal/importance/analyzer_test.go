package importance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loansight/domain/profile"
	"loansight/internal/model"
)

func trainedModel(t *testing.T) *model.ApprovalModel {
	t.Helper()
	corpus := []profile.LabeledProfile{
		{Profile: profile.BorrowerProfile{CreditScore: 750, DebtToIncomeRatio: 0.2, AnnualIncome: 90000, LoanAmount: 180000, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeHome}, LoanApproved: 1},
		{Profile: profile.BorrowerProfile{CreditScore: 710, DebtToIncomeRatio: 0.3, AnnualIncome: 70000, LoanAmount: 140000, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeHome}, LoanApproved: 1},
		{Profile: profile.BorrowerProfile{CreditScore: 590, DebtToIncomeRatio: 0.5, AnnualIncome: 40000, LoanAmount: 200000, PreviousLoanDefaults: 1, EmploymentStatus: profile.EmploymentUnemployed, LoanPurpose: profile.PurposeAuto}, LoanApproved: 0},
		{Profile: profile.BorrowerProfile{CreditScore: 620, DebtToIncomeRatio: 0.45, AnnualIncome: 45000, LoanAmount: 180000, BankruptcyHistory: 1, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeHome}, LoanApproved: 0},
	}
	m := model.NewApprovalModel()
	require.NoError(t, m.Train(corpus))
	return m
}

func TestRankedFeatures_DescendingAbsoluteImpact(t *testing.T) {
	fi := &FeatureImportance{
		Impacts: map[string]float64{
			FeatureCreditScore:  0.1,
			FeatureDTI:          -0.3,
			FeatureLoanToIncome: 0.05,
		},
	}
	ranked := fi.RankedFeatures()
	require.Len(t, ranked, len(featureOrder))
	assert.Equal(t, FeatureDTI, ranked[0].Name)
	assert.Equal(t, FeatureCreditScore, ranked[1].Name)
	assert.Equal(t, FeatureLoanToIncome, ranked[2].Name)
	// Untouched features carry a zero impact and keep input order.
	assert.Equal(t, FeatureDefaults, ranked[3].Name)
	assert.Equal(t, FeatureLoanPurpose, ranked[6].Name)
}

func TestAnalyze_ComputesAllImpacts(t *testing.T) {
	m := trainedModel(t)
	a := NewAnalyzer(m)

	p := &profile.BorrowerProfile{
		CreditScore:          640,
		DebtToIncomeRatio:    0.4,
		AnnualIncome:         50000,
		LoanAmount:           200000,
		PreviousLoanDefaults: 1,
		EmploymentStatus:     profile.EmploymentUnemployed,
		LoanPurpose:          profile.PurposeAuto,
	}
	fi := a.Analyze(p)

	assert.Len(t, fi.Impacts, len(featureOrder))
	assert.GreaterOrEqual(t, fi.BaseProbability, 0.0)
	assert.LessOrEqual(t, fi.BaseProbability, 1.0)
	// Every perturbation applies for this profile, so every impact comes
	// from a real counterfactual re-prediction.
	assert.Greater(t, fi.Impacts[FeatureCreditScore], 0.0, "a higher credit score must help")
	assert.Greater(t, fi.Impacts[FeatureDTI], 0.0, "a lower debt ratio must help")
	assert.Greater(t, fi.Impacts[FeatureDefaults], 0.0, "clearing a default must help")
	assert.GreaterOrEqual(t, fi.Impacts[FeatureEmploymentStatus], 0.0, "gaining employment must not hurt")
}

func TestAnalyze_NoOpPerturbationsRecordZero(t *testing.T) {
	m := trainedModel(t)
	a := NewAnalyzer(m)

	// Ceiling credit score, no debt, no derogatory events, already
	// employed, already on the primary purpose: only the loan amount
	// perturbation applies.
	p := &profile.BorrowerProfile{
		CreditScore:      850,
		AnnualIncome:     120000,
		LoanAmount:       100000,
		EmploymentStatus: profile.EmploymentEmployed,
		LoanPurpose:      profile.PurposeHome,
	}
	fi := a.Analyze(p)

	assert.Zero(t, fi.Impacts[FeatureCreditScore])
	assert.Zero(t, fi.Impacts[FeatureDTI])
	assert.Zero(t, fi.Impacts[FeatureDefaults])
	assert.Zero(t, fi.Impacts[FeatureBankruptcy])
	assert.Zero(t, fi.Impacts[FeatureEmploymentStatus])
	assert.Zero(t, fi.Impacts[FeatureLoanPurpose])
}

func TestGenerateRecommendations_ThresholdAndFallback(t *testing.T) {
	weak := &profile.BorrowerProfile{
		CreditScore:       600,
		DebtToIncomeRatio: 0.45,
		AnnualIncome:      40000,
		LoanAmount:        200000,
		EmploymentStatus:  profile.EmploymentUnemployed,
	}
	fi := &FeatureImportance{
		BaseProbability: 0.2,
		Impacts: map[string]float64{
			FeatureCreditScore:      0.12,
			FeatureDTI:              0.08,
			FeatureEmploymentStatus: 0.15,
			FeatureLoanToIncome:     0.01, // below threshold, no line
		},
	}
	fi.GenerateRecommendations(weak)
	require.Len(t, fi.Recommendations, 3)
	// Strongest impact leads.
	assert.Contains(t, fi.Recommendations[0], "employment")

	// Nothing above threshold, favorable base: single positive fallback.
	healthy := &FeatureImportance{BaseProbability: 0.8, Impacts: map[string]float64{}}
	healthy.GenerateRecommendations(&profile.BorrowerProfile{CreditScore: 800})
	require.Len(t, healthy.Recommendations, 1)
	assert.Contains(t, healthy.Recommendations[0], "good shape")

	// Nothing above threshold, unfavorable base: single corrective line.
	shaky := &FeatureImportance{BaseProbability: 0.3, Impacts: map[string]float64{}}
	shaky.GenerateRecommendations(&profile.BorrowerProfile{CreditScore: 700})
	require.Len(t, shaky.Recommendations, 1)
	assert.Contains(t, shaky.Recommendations[0], "loan amount")
}
