package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"loansight/domain/profile"
	"loansight/domain/stats"
	"loansight/internal/errors"
	"loansight/internal/generator"
	"loansight/internal/importance"
	"loansight/internal/model"
	"loansight/internal/report"
	"loansight/internal/similarity"
)

// AdvisorService is the agent-facing orchestration layer over the core
// engine. Callers supply profile attributes as individual named fields
// with documented defaults; the service derives the dependent financial
// fields that were left at zero before invoking the core, using the same
// formulas the synthetic generator applies.
//
// The service holds the model, statistics, and corpus as read-only after
// construction; all its methods are safe for concurrent use.
type AdvisorService struct {
	model     *model.ApprovalModel
	analyzer  *importance.Analyzer
	generator *generator.Generator
	stats     *stats.FeatureStatistics
	corpus    []profile.LabeledProfile
}

// NewAdvisorService builds statistics and trains the model over the
// corpus, then publishes everything read-only.
func NewAdvisorService(corpus []profile.LabeledProfile, seed int64) (*AdvisorService, error) {
	fs, err := stats.Build(corpus)
	if err != nil {
		return nil, err
	}
	m := model.NewApprovalModel()
	if err := m.Train(corpus); err != nil {
		return nil, err
	}
	return &AdvisorService{
		model:     m,
		analyzer:  importance.NewAnalyzer(m),
		generator: generator.New(seed),
		stats:     fs,
		corpus:    corpus,
	}, nil
}

// PredictionRequest carries applicant attributes as named arguments.
// Zero values take documented defaults; dependent financial fields left
// at zero are derived from income before prediction.
type PredictionRequest struct {
	CreditScore         int     `json:"credit_score"`
	AnnualIncome        float64 `json:"annual_income"`
	LoanAmount          float64 `json:"loan_amount"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`  // default 0.36
	LoanDurationYears   int     `json:"loan_duration_years"`   // default 30
	EmploymentStatus    string  `json:"employment_status"`     // default "Employed"
	LoanPurpose         string  `json:"loan_purpose"`          // default "Home"
	MaritalStatus       string  `json:"marital_status"`        // default "Single"
	EducationLevel      string  `json:"education_level"`       // default "Bachelor's"
	HomeOwnershipStatus string  `json:"home_ownership_status"` // default "Rent"
	Age                 int     `json:"age"`                   // default 35
	JobTenureYears      float64 `json:"job_tenure_years"`
	NumberOfDependents  int     `json:"number_of_dependents"`

	MonthlyDebtPayments  float64 `json:"monthly_debt_payments"` // derived when 0
	PreviousLoanDefaults int     `json:"previous_loan_defaults"`
	BankruptcyHistory    int     `json:"bankruptcy_history"`
	CreditHistoryMonths  int     `json:"credit_history_months"`
	SavingsBalance       float64 `json:"savings_balance"`
	CheckingBalance      float64 `json:"checking_balance"`
	InvestmentBalance    float64 `json:"investment_balance"`
	RetirementBalance    float64 `json:"retirement_balance"`
	EmergencyFundBalance float64 `json:"emergency_fund_balance"`
	TotalAssets          float64 `json:"total_assets"`     // derived when 0
	TotalLiabilities     float64 `json:"total_liabilities"` // derived when 0
}

// Validate rejects requests the core cannot score. A zero or negative
// income makes loan-to-income infinite, which would permanently burn the
// model's upper prediction tiers for every later caller, so the boundary
// refuses the request instead of passing it through.
func (r PredictionRequest) Validate() error {
	if r.AnnualIncome <= 0 {
		return errors.ValidationErrorf("annual_income must be positive, got %g", r.AnnualIncome)
	}
	if r.LoanAmount < 0 {
		return errors.ValidationErrorf("loan_amount must be non-negative, got %g", r.LoanAmount)
	}
	if r.DebtToIncomeRatio < 0 || r.DebtToIncomeRatio > 1 {
		return errors.ValidationErrorf("debt_to_income_ratio must be within [0,1], got %g", r.DebtToIncomeRatio)
	}
	return nil
}

// BuildProfile materializes the request into a full borrower profile,
// applying defaults and deriving dependent fields.
func (r PredictionRequest) BuildProfile() profile.BorrowerProfile {
	p := profile.BorrowerProfile{
		CreditScore:          r.CreditScore,
		AnnualIncome:         r.AnnualIncome,
		LoanAmount:           r.LoanAmount,
		DebtToIncomeRatio:    r.DebtToIncomeRatio,
		LoanDurationYears:    r.LoanDurationYears,
		EmploymentStatus:     r.EmploymentStatus,
		LoanPurpose:          r.LoanPurpose,
		MaritalStatus:        r.MaritalStatus,
		EducationLevel:       r.EducationLevel,
		HomeOwnershipStatus:  r.HomeOwnershipStatus,
		Age:                  r.Age,
		JobTenureYears:       r.JobTenureYears,
		NumberOfDependents:   r.NumberOfDependents,
		MonthlyDebtPayments:  r.MonthlyDebtPayments,
		PreviousLoanDefaults: r.PreviousLoanDefaults,
		BankruptcyHistory:    r.BankruptcyHistory,
		CreditHistoryMonths:  r.CreditHistoryMonths,
		SavingsBalance:       r.SavingsBalance,
		CheckingBalance:      r.CheckingBalance,
		InvestmentBalance:    r.InvestmentBalance,
		RetirementBalance:    r.RetirementBalance,
		EmergencyFundBalance: r.EmergencyFundBalance,
		TotalAssets:          r.TotalAssets,
		TotalLiabilities:     r.TotalLiabilities,

		HealthInsuranceStatus: profile.InsuranceInsured,
		LifeInsuranceStatus:   profile.InsuranceUninsured,
		AutoInsuranceStatus:   profile.InsuranceInsured,
		HomeInsuranceStatus:   profile.InsuranceUninsured,
	}

	if p.LoanDurationYears == 0 {
		p.LoanDurationYears = 30
	}
	if p.EmploymentStatus == "" {
		p.EmploymentStatus = profile.EmploymentEmployed
	}
	if p.DebtToIncomeRatio == 0 {
		p.DebtToIncomeRatio = 0.36
	}
	if p.LoanPurpose == "" {
		p.LoanPurpose = profile.PurposeHome
	}
	if p.MaritalStatus == "" {
		p.MaritalStatus = profile.MaritalSingle
	}
	if p.EducationLevel == "" {
		p.EducationLevel = "Bachelor's"
	}
	if p.HomeOwnershipStatus == "" {
		p.HomeOwnershipStatus = profile.OwnershipRent
	}
	if p.Age == 0 {
		p.Age = 35
	}

	deriveFinancials(&p)
	return p
}

// deriveFinancials fills dependent money fields left at zero, mirroring
// the generator's debt and expense stages so predicted and synthetic
// profiles share one financial arithmetic.
func deriveFinancials(p *profile.BorrowerProfile) {
	monthlyIncome := p.MonthlyIncome()

	if p.MonthlyDebtPayments == 0 {
		p.MonthlyDebtPayments = monthlyIncome * p.DebtToIncomeRatio
	}
	if p.MonthlyHousingPayment == 0 {
		if p.HomeOwnershipStatus == profile.OwnershipRent {
			p.MonthlyHousingPayment = monthlyIncome * 0.3
		} else {
			p.MonthlyHousingPayment = monthlyIncome * 0.05
		}
	}
	if p.UtilitiesExpense == 0 {
		p.UtilitiesExpense = monthlyIncome * 0.04
	}
	if p.GroceriesExpense == 0 {
		p.GroceriesExpense = 200 + 150*float64(p.NumberOfDependents)
	}
	if p.TransportationExpense == 0 {
		p.TransportationExpense = monthlyIncome * 0.05
	}
	if p.HealthcareExpense == 0 {
		p.HealthcareExpense = 100 + 80*float64(p.NumberOfDependents)
	}
	if p.EntertainmentExpense == 0 {
		p.EntertainmentExpense = monthlyIncome * 0.03
	}

	if p.TotalAssets == 0 {
		p.TotalAssets = p.SavingsBalance + p.CheckingBalance +
			p.InvestmentBalance + p.RetirementBalance + p.EmergencyFundBalance
	}
	if p.TotalLiabilities == 0 {
		p.TotalLiabilities = p.MortgageBalance + p.AutoLoanBalance +
			p.StudentLoanBalance + p.PersonalLoanBalance
	}
	p.NetWorth = p.TotalAssets - p.TotalLiabilities
}

// Assessment is the prediction result exposed to callers.
type Assessment struct {
	Probability float64                 `json:"probability"`
	Decision    string                  `json:"decision"`
	Tier        string                  `json:"tier"`
	Profile     profile.BorrowerProfile `json:"profile"`
}

// Predict validates and materializes the request, then scores it.
func (s *AdvisorService) Predict(req PredictionRequest) (Assessment, error) {
	if err := req.Validate(); err != nil {
		return Assessment{}, err
	}
	p := req.BuildProfile()
	prob := s.model.Predict(&p)
	return Assessment{
		Probability: prob,
		Decision:    report.Decision(prob),
		Tier:        s.model.Tier().String(),
		Profile:     p,
	}, nil
}

// AnalysisResult bundles the importance breakdown with its rendered
// markdown report.
type AnalysisResult struct {
	Assessment Assessment                    `json:"assessment"`
	Importance *importance.FeatureImportance `json:"importance"`
	Ranked     []importance.RankedFeature    `json:"ranked_features"`
	Markdown   string                        `json:"markdown"`
}

// Analyze runs counterfactual feature-importance analysis for a request.
func (s *AdvisorService) Analyze(req PredictionRequest) (AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return AnalysisResult{}, err
	}
	p := req.BuildProfile()
	return s.analyzeProfile(&p), nil
}

func (s *AdvisorService) analyzeProfile(p *profile.BorrowerProfile) AnalysisResult {
	fi := s.analyzer.Analyze(p)
	fi.GenerateRecommendations(p)
	return AnalysisResult{
		Assessment: Assessment{
			Probability: fi.BaseProbability,
			Decision:    report.Decision(fi.BaseProbability),
			Tier:        s.model.Tier().String(),
			Profile:     *p,
		},
		Importance: fi,
		Ranked:     fi.RankedFeatures(),
		Markdown:   report.Render(p, fi),
	}
}

// AnalyzeBatch analyzes many profiles concurrently. Analysis is read-only
// against the published model, so a bounded worker group is safe.
func (s *AdvisorService) AnalyzeBatch(ctx context.Context, profiles []profile.BorrowerProfile) ([]AnalysisResult, error) {
	results := make([]AnalysisResult, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range profiles {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyzeProfile(&profiles[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch analysis")
	}
	return results, nil
}

// GenerateCorpus produces n synthetic labeled profiles from the training
// statistics. Not safe to run concurrently with itself on one service;
// callers serialize batch generation.
func (s *AdvisorService) GenerateCorpus(n int) ([]profile.LabeledProfile, error) {
	return s.generator.Generate(n, s.stats)
}

// FindSimilar ranks training profiles closest to the target values.
func (s *AdvisorService) FindSimilar(targetCredit, targetIncome, targetLoan float64, opts similarity.Options) ([]similarity.Match, error) {
	return similarity.FindSimilar(s.corpus, targetCredit, targetIncome, targetLoan, opts)
}

// Stats exposes the read-only feature statistics.
func (s *AdvisorService) Stats() *stats.FeatureStatistics {
	return s.stats
}

// Shape profiles the distribution of one continuous field in the corpus.
func (s *AdvisorService) Shape(field profile.Field) (stats.Shape, error) {
	return stats.ShapeProfile(s.corpus, field)
}

// Corpus exposes the read-only training corpus.
func (s *AdvisorService) Corpus() []profile.LabeledProfile {
	return s.corpus
}

// Model exposes the trained model for collaborators that score directly.
func (s *AdvisorService) Model() *model.ApprovalModel {
	return s.model
}
