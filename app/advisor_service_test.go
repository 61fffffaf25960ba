package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loansight/domain/profile"
	"loansight/internal/errors"
	"loansight/internal/model"
	"loansight/internal/similarity"
)

func testCorpus() []profile.LabeledProfile {
	rows := []struct {
		score    int
		income   float64
		loan     float64
		dti      float64
		status   string
		purpose  string
		defaults int
		approved int
	}{
		{760, 95000, 190000, 0.2, profile.EmploymentEmployed, profile.PurposeHome, 0, 1},
		{730, 82000, 160000, 0.25, profile.EmploymentEmployed, profile.PurposeHome, 0, 1},
		{705, 68000, 140000, 0.3, profile.EmploymentEmployed, profile.PurposeAuto, 0, 1},
		{690, 61000, 150000, 0.33, profile.EmploymentEmployed, profile.PurposeHome, 0, 1},
		{610, 42000, 170000, 0.48, profile.EmploymentUnemployed, profile.PurposeAuto, 1, 0},
		{580, 35000, 160000, 0.52, profile.EmploymentEmployed, profile.PurposeDebtConsolidation, 1, 0},
		{560, 30000, 180000, 0.55, profile.EmploymentUnemployed, profile.PurposeAuto, 2, 0},
	}
	corpus := make([]profile.LabeledProfile, len(rows))
	for i, row := range rows {
		corpus[i] = profile.LabeledProfile{
			Profile: profile.BorrowerProfile{
				CreditScore:          row.score,
				AnnualIncome:         row.income,
				LoanAmount:           row.loan,
				DebtToIncomeRatio:    row.dti,
				EmploymentStatus:     row.status,
				LoanPurpose:          row.purpose,
				PreviousLoanDefaults: row.defaults,
			},
			LoanApproved: row.approved,
		}
	}
	return corpus
}

func newTestService(t *testing.T) *AdvisorService {
	t.Helper()
	svc, err := NewAdvisorService(testCorpus(), 1)
	require.NoError(t, err)
	return svc
}

func TestNewAdvisorService_EmptyCorpus(t *testing.T) {
	_, err := NewAdvisorService(nil, 1)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyCorpus(err))
}

func TestBuildProfile_DefaultsAndDerivation(t *testing.T) {
	req := PredictionRequest{
		CreditScore:  700,
		AnnualIncome: 72000,
		LoanAmount:   150000,
	}
	p := req.BuildProfile()

	assert.Equal(t, 30, p.LoanDurationYears)
	assert.Equal(t, profile.EmploymentEmployed, p.EmploymentStatus)
	assert.Equal(t, profile.PurposeHome, p.LoanPurpose)
	assert.Equal(t, profile.MaritalSingle, p.MaritalStatus)
	assert.Equal(t, profile.OwnershipRent, p.HomeOwnershipStatus)
	assert.Equal(t, 35, p.Age)
	assert.Equal(t, 0.36, p.DebtToIncomeRatio)

	// Monthly debt derives from the defaulted ratio: 6000 * 0.36.
	assert.InDelta(t, 2160.0, p.MonthlyDebtPayments, 1e-9)
	assert.Equal(t, p.TotalAssets-p.TotalLiabilities, p.NetWorth)
}

func TestBuildProfile_ExplicitValuesWin(t *testing.T) {
	req := PredictionRequest{
		CreditScore:         650,
		AnnualIncome:        48000,
		LoanAmount:          60000,
		DebtToIncomeRatio:   0.2,
		EmploymentStatus:    profile.EmploymentSelfEmployed,
		LoanPurpose:         profile.PurposeEducation,
		MonthlyDebtPayments: 500,
		Age:                 52,
	}
	p := req.BuildProfile()

	assert.Equal(t, 0.2, p.DebtToIncomeRatio)
	assert.Equal(t, profile.EmploymentSelfEmployed, p.EmploymentStatus)
	assert.Equal(t, profile.PurposeEducation, p.LoanPurpose)
	assert.Equal(t, 500.0, p.MonthlyDebtPayments)
	assert.Equal(t, 52, p.Age)
}

func TestPredict(t *testing.T) {
	svc := newTestService(t)

	strong, err := svc.Predict(PredictionRequest{CreditScore: 750, AnnualIncome: 90000, LoanAmount: 180000, DebtToIncomeRatio: 0.22})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", strong.Decision)
	assert.Greater(t, strong.Probability, 0.5)

	weak, err := svc.Predict(PredictionRequest{
		CreditScore: 560, AnnualIncome: 30000, LoanAmount: 180000,
		DebtToIncomeRatio: 0.55, EmploymentStatus: profile.EmploymentUnemployed,
		PreviousLoanDefaults: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "DENIED", weak.Decision)
	assert.Less(t, weak.Probability, 0.5)
}

func TestPredict_RejectsUnscorableRequests(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  PredictionRequest
	}{
		{"zero income", PredictionRequest{CreditScore: 700, LoanAmount: 50000}},
		{"negative income", PredictionRequest{CreditScore: 700, AnnualIncome: -1, LoanAmount: 50000}},
		{"negative loan", PredictionRequest{CreditScore: 700, AnnualIncome: 60000, LoanAmount: -1}},
		{"ratio above one", PredictionRequest{CreditScore: 700, AnnualIncome: 60000, LoanAmount: 50000, DebtToIncomeRatio: 1.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Predict(tc.req)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "expected a validation error, got %v", err)
		})
	}

	// The rejected requests must never reach the model: a zero-income
	// profile inside the core would permanently downgrade it to the
	// heuristic tier for every later caller.
	assert.Equal(t, model.TierStructured, svc.Model().Tier())
	good, err := svc.Predict(PredictionRequest{CreditScore: 750, AnnualIncome: 90000, LoanAmount: 180000, DebtToIncomeRatio: 0.22})
	require.NoError(t, err)
	assert.Equal(t, model.TierStructured.String(), good.Tier)
}

func TestAnalyze(t *testing.T) {
	svc := newTestService(t)
	result, err := svc.Analyze(PredictionRequest{CreditScore: 640, AnnualIncome: 45000, LoanAmount: 160000, DebtToIncomeRatio: 0.45})
	require.NoError(t, err)

	require.NotNil(t, result.Importance)
	assert.NotEmpty(t, result.Ranked)
	assert.NotEmpty(t, result.Importance.Recommendations)
	assert.Contains(t, result.Markdown, "Loan Approval Assessment")
	assert.Equal(t, result.Importance.BaseProbability, result.Assessment.Probability)
}

func TestAnalyzeBatch(t *testing.T) {
	svc := newTestService(t)
	profiles := make([]profile.BorrowerProfile, 8)
	for i := range profiles {
		profiles[i] = PredictionRequest{
			CreditScore:  600 + i*20,
			AnnualIncome: 50000,
			LoanAmount:   120000,
		}.BuildProfile()
	}

	results, err := svc.AnalyzeBatch(context.Background(), profiles)
	require.NoError(t, err)
	require.Len(t, results, len(profiles))
	for i, res := range results {
		assert.Equalf(t, profiles[i].CreditScore, res.Assessment.Profile.CreditScore,
			"result %d must line up with its input", i)
	}
}

func TestGenerateCorpusRoundTrip(t *testing.T) {
	svc := newTestService(t)
	synthetic, err := svc.GenerateCorpus(50)
	require.NoError(t, err)
	require.Len(t, synthetic, 50)

	// A generated corpus must be usable as training input.
	retrained, err := NewAdvisorService(synthetic, 2)
	require.NoError(t, err)
	assert.True(t, retrained.Model().Trained())
}

func TestFindSimilar_PassThroughValidation(t *testing.T) {
	svc := newTestService(t)

	matches, err := svc.FindSimilar(730, 82000, 160000, similarity.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, 730, matches[0].Profile.Profile.CreditScore)

	opts := similarity.DefaultOptions()
	opts.TopK = 0
	_, err = svc.FindSimilar(730, 82000, 160000, opts)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestShape(t *testing.T) {
	svc := newTestService(t)
	shape, err := svc.Shape(profile.FieldCreditScore)
	require.NoError(t, err)
	assert.Equal(t, profile.FieldCreditScore, shape.Field)

	_, err = svc.Shape(profile.FieldLoanPurpose)
	require.Error(t, err)
}
