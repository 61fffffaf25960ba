package generator

import (
	"log"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"loansight/domain/profile"
	"loansight/domain/stats"
	"loansight/internal/errors"
	"loansight/internal/model"
)

// Generator produces plausible synthetic borrower profiles from corpus
// statistics. Each profile is built independently through a fixed causal
// stage order: every stage may read only fields set by earlier stages.
// Bounded quantities are clamped after the draw, never resampled, so the
// draw count per profile is stable for a given seed.
type Generator struct {
	rng      *rand.Rand
	spare    float64
	hasSpare bool
}

// New creates a seeded generator. The same seed and statistics reproduce
// the same corpus.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds n labeled synthetic profiles from fs. The label is a
// Bernoulli draw over the same risk score the approval model's structured
// tier uses, so synthetic corpora are learnable by the model they feed.
func (g *Generator) Generate(n int, fs *stats.FeatureStatistics) ([]profile.LabeledProfile, error) {
	if n <= 0 {
		return nil, errors.ValidationErrorf("profile count must be positive, got %d", n)
	}
	if fs == nil {
		return nil, errors.ValidationError("feature statistics are required for generation")
	}

	out := make([]profile.LabeledProfile, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.generateProfile(fs))
	}
	log.Printf("[Generator] generated %d synthetic profiles", n)
	return out, nil
}

// generateProfile runs the full stage order for one profile.
func (g *Generator) generateProfile(fs *stats.FeatureStatistics) profile.LabeledProfile {
	p := profile.BorrowerProfile{ProfileID: uuid.NewString()}

	g.stageDemographics(&p, fs)
	g.stageDependents(&p, fs)
	g.stageCreditHistoryLength(&p, fs)
	g.stageCreditEvents(&p)
	g.stageCreditAccounts(&p, fs)
	g.stageCreditScore(&p)
	g.stageDebt(&p)
	g.stageLoanTerms(&p)
	g.stageInterestRate(&p)
	g.stageBalances(&p, fs)
	g.stageLiabilities(&p)
	g.stageAssetsAndExpenses(&p, fs)
	label := g.stageApprovalLabel(&p)

	return profile.LabeledProfile{Profile: p, LoanApproved: label}
}

// stageDemographics samples age, income, and the categorical identity
// fields from the empirical corpus distributions.
func (g *Generator) stageDemographics(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	ageStats := fs.ContinuousOrDefault(profile.FieldAge, stats.Summary{Mean: 43, StdDev: 15})
	if ageStats.StdDev <= 0 {
		ageStats.StdDev = 15
	}
	p.Age = clampInt(int(math.Round(g.normal(ageStats.Mean, ageStats.StdDev))), 18, 85)

	p.EmploymentStatus = g.sampleCategory(fs, profile.FieldEmploymentStatus, fallbackEmployment)
	p.MaritalStatus = g.sampleCategory(fs, profile.FieldMaritalStatus, fallbackMarital)
	p.EducationLevel = g.sampleCategory(fs, profile.FieldEducationLevel, fallbackEducation)
	p.HomeOwnershipStatus = g.sampleCategory(fs, profile.FieldHomeOwnershipStatus, fallbackOwnership)
	p.LoanPurpose = g.sampleCategory(fs, profile.FieldLoanPurpose, fallbackPurpose)

	incomeStats := fs.ContinuousOrDefault(profile.FieldAnnualIncome, stats.Summary{Mean: 60000, StdDev: 25000})
	income := g.normal(incomeStats.Mean, incomeStats.StdDev)
	switch p.EmploymentStatus {
	case profile.EmploymentUnemployed:
		income *= 0.3
	case profile.EmploymentRetired:
		income *= 0.6
	case profile.EmploymentSelfEmployed:
		income *= 1.1
	}
	p.AnnualIncome = maxFloat(income, 8000)

	if p.EmploymentStatus == profile.EmploymentUnemployed {
		p.JobTenureYears = 0
	} else {
		tenureStats := fs.ContinuousOrDefault(profile.FieldJobTenureYears, stats.Summary{Mean: 5, StdDev: 4})
		p.JobTenureYears = clampFloat(g.normal(tenureStats.Mean, tenureStats.StdDev), 0, float64(p.Age-18))
	}
}

// stageDependents shifts the dependent-count mean by marital status.
func (g *Generator) stageDependents(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	depStats := fs.ContinuousOrDefault(profile.FieldNumberOfDependents, stats.Summary{Mean: 1.5, StdDev: 1.2})
	mean := depStats.Mean - 0.5
	if p.MaritalStatus == profile.MaritalMarried {
		mean = depStats.Mean + 0.5
	}
	p.NumberOfDependents = maxInt(int(math.Round(g.normal(mean, depStats.StdDev))), 0)
}

// stageCreditHistoryLength caps history at the years since adulthood.
func (g *Generator) stageCreditHistoryLength(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	histStats := fs.ContinuousOrDefault(profile.FieldCreditHistoryMonths, stats.Summary{Mean: 110, StdDev: 60})
	maxMonths := (p.Age - 18) * 12
	p.CreditHistoryMonths = clampInt(int(math.Round(g.normal(histStats.Mean, histStats.StdDev))), 0, maxMonths)
}

// stageCreditEvents draws defaults and bankruptcies from a risk
// multiplier over unemployment, youth, and education.
func (g *Generator) stageCreditEvents(p *profile.BorrowerProfile) {
	multiplier := 1.0
	if p.IsUnemployed() {
		multiplier *= 2
	}
	if p.Age < 30 {
		multiplier *= 1.5
	}
	if p.EducationLevel == profile.EducationHighSchool {
		multiplier *= 1.3
	}

	if g.rng.Float64() < 0.1*multiplier {
		p.PreviousLoanDefaults = 1
	}
	if g.rng.Float64() < 0.05*multiplier*float64(p.Age)/60 {
		p.BankruptcyHistory = 1
	}
}

// stageCreditAccounts samples open lines, utilization, inquiries, and the
// payment history score. Inquiry baseline doubles after a default.
func (g *Generator) stageCreditAccounts(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	lineStats := fs.ContinuousOrDefault(profile.FieldOpenCreditLines, stats.Summary{Mean: 6, StdDev: 3})
	p.OpenCreditLines = maxInt(int(math.Round(g.normal(lineStats.Mean, lineStats.StdDev))), 0)

	utilStats := fs.ContinuousOrDefault(profile.FieldCardUtilization, stats.Summary{Mean: 0.35, StdDev: 0.2})
	p.CreditCardUtilizationRate = clampFloat(g.normal(utilStats.Mean, utilStats.StdDev), 0, 1)

	baseline := 3.0
	if p.PreviousLoanDefaults > 0 {
		baseline = 6.0
	}
	p.CreditInquiries = maxInt(int(math.Round(g.normal(baseline, 2))), 0)

	payStats := fs.ContinuousOrDefault(profile.FieldPaymentHistoryScore, stats.Summary{Mean: 75, StdDev: 15})
	score := g.normal(payStats.Mean, payStats.StdDev) - 10*float64(p.PreviousLoanDefaults)
	p.PaymentHistoryScore = clampFloat(score, 0, 100)
}

// stageCreditScore composes the score from history, utilization, and
// credit events, clamped to the bureau range.
func (g *Generator) stageCreditScore(p *profile.BorrowerProfile) {
	score := 650 + g.normFloat()*60
	score += math.Min(100, float64(p.CreditHistoryMonths)*3)

	switch {
	case p.CreditCardUtilizationRate > 0.7:
		score -= 150
	case p.CreditCardUtilizationRate > 0.5:
		score -= 100
	case p.CreditCardUtilizationRate > 0.3:
		score -= 50
	}

	score -= float64(p.PreviousLoanDefaults) * 50 * (1 + g.rng.Float64())
	score -= float64(p.BankruptcyHistory) * 150 * (1 + g.rng.Float64()/2)

	inquiryExcess := p.CreditInquiries - 3
	if inquiryExcess > 0 {
		score -= float64(inquiryExcess) * 5 * (1 + g.rng.Float64())
	}

	p.CreditScore = clampInt(int(math.Round(score)), 300, 850)
}

// stageDebt sets monthly payments relative to income; a weaker score
// carries a heavier debt load.
func (g *Generator) stageDebt(p *profile.BorrowerProfile) {
	debtRatio := 0.3
	if p.CreditScore < 600 {
		debtRatio = 0.4
	}
	monthlyIncome := p.MonthlyIncome()
	p.MonthlyDebtPayments = maxFloat(monthlyIncome*debtRatio*(0.5+g.rng.Float64()), 0)
	p.DebtToIncomeRatio = clampFloat(p.MonthlyDebtPayments/monthlyIncome, 0, 1)
}

// Loan sizing relative to annual income, by purpose.
var purposeLoanMultiplier = map[string]float64{
	profile.PurposeHome:              3.0,
	profile.PurposeAuto:              0.5,
	profile.PurposeEducation:         1.0,
	profile.PurposeDebtConsolidation: 0.7,
}

// Duration bands in years, by purpose.
var purposeDuration = map[string][2]int{
	profile.PurposeHome:      {15, 30},
	profile.PurposeAuto:      {3, 7},
	profile.PurposeEducation: {5, 15},
}

// stageLoanTerms derives loan amount and duration from purpose and score
// tier.
func (g *Generator) stageLoanTerms(p *profile.BorrowerProfile) {
	multiplier, ok := purposeLoanMultiplier[p.LoanPurpose]
	if !ok {
		multiplier = 0.3
	}

	switch {
	case p.CreditScore >= 740:
		multiplier *= 1.3
	case p.CreditScore >= 680:
		multiplier *= 1.15
	case p.CreditScore < 620:
		multiplier *= 0.7
	}

	// Randomize within +/-20%.
	multiplier *= 0.8 + 0.4*g.rng.Float64()
	p.LoanAmount = maxFloat(p.AnnualIncome*multiplier, 1000)

	band, ok := purposeDuration[p.LoanPurpose]
	if !ok {
		band = [2]int{1, 5}
	}
	p.LoanDurationYears = band[0] + g.rng.Intn(band[1]-band[0]+1)
}

// Purpose-specific base-rate adjustments.
var purposeRateAdjustment = map[string]float64{
	profile.PurposeHome:              -0.005,
	profile.PurposeAuto:              0.005,
	profile.PurposeEducation:         -0.0025,
	profile.PurposeDebtConsolidation: 0.01,
}

// stageInterestRate prices the loan convexly in the credit score.
func (g *Generator) stageInterestRate(p *profile.BorrowerProfile) {
	shortfall := math.Max(0, (750-float64(p.CreditScore))/150)
	rate := 0.03 + math.Pow(shortfall, 1.5)*0.15

	adjustment, ok := purposeRateAdjustment[p.LoanPurpose]
	if !ok {
		adjustment = 0.015
	}
	rate += adjustment

	// +/- 0.5% noise.
	rate += (g.rng.Float64() - 0.5) * 0.01
	p.InterestRate = clampFloat(rate, 0.01, 0.3)
}

// Balance fallbacks for corpora missing account columns.
var balanceFallbacks = map[profile.Field]stats.Summary{
	profile.FieldSavingsBalance:       {Mean: 15000, StdDev: 10000},
	profile.FieldCheckingBalance:      {Mean: 5000, StdDev: 4000},
	profile.FieldInvestmentBalance:    {Mean: 20000, StdDev: 20000},
	profile.FieldRetirementBalance:    {Mean: 40000, StdDev: 40000},
	profile.FieldEmergencyFundBalance: {Mean: 8000, StdDev: 6000},
}

// stageBalances scales account balances by income and age factors on the
// corpus means. Retirement and investment accounts grow with age; the
// transactional accounts track income only.
func (g *Generator) stageBalances(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	incomeFactor := p.AnnualIncome / 60000
	ageFactor := float64(p.Age) / 40

	draw := func(field profile.Field, useAge bool) float64 {
		s := fs.ContinuousOrDefault(field, balanceFallbacks[field])
		factor := incomeFactor
		if useAge {
			factor *= ageFactor
		}
		return maxFloat((s.Mean+g.normFloat()*s.StdDev)*factor, 0)
	}

	p.SavingsBalance = draw(profile.FieldSavingsBalance, false)
	p.CheckingBalance = draw(profile.FieldCheckingBalance, false)
	p.InvestmentBalance = draw(profile.FieldInvestmentBalance, true)
	p.RetirementBalance = draw(profile.FieldRetirementBalance, true)
	p.EmergencyFundBalance = draw(profile.FieldEmergencyFundBalance, false)
}

// Education multiplier for student debt exposure.
var educationDebtTier = map[string]float64{
	profile.EducationHighSchool: 0.2,
	"Associate":                 0.5,
	"Bachelor's":                1.0,
	"Master's":                  1.5,
	"Doctorate":                 2.0,
}

// stageLiabilities builds the liability balances. Mortgage debt exists
// only for mortgage holders, rent only for renters.
func (g *Generator) stageLiabilities(p *profile.BorrowerProfile) {
	monthlyIncome := p.MonthlyIncome()

	if p.HomeOwnershipStatus == profile.OwnershipMortgage {
		p.MortgageBalance = (3 + 2*g.rng.Float64()) * p.AnnualIncome
		p.MonthlyHousingPayment = p.MortgageBalance * 0.006
	} else if p.HomeOwnershipStatus == profile.OwnershipRent {
		p.MonthlyHousingPayment = monthlyIncome * (0.25 + 0.15*g.rng.Float64())
	} else {
		// Owned outright: taxes and upkeep only.
		p.MonthlyHousingPayment = monthlyIncome * 0.05
	}

	if g.rng.Float64() < 0.5 {
		p.AutoLoanBalance = p.AnnualIncome * (0.15 + 0.25*g.rng.Float64())
	}

	tier, ok := educationDebtTier[p.EducationLevel]
	if !ok {
		tier = 0.5
	}
	if tier > 0.2 && g.rng.Float64() < 0.4 {
		p.StudentLoanBalance = p.AnnualIncome * (0.3 + 0.5*g.rng.Float64()) * tier
	}

	if g.rng.Float64() < 0.3 {
		p.PersonalLoanBalance = p.AnnualIncome * (0.05 + 0.15*g.rng.Float64())
	}
}

// stageAssetsAndExpenses derives expenses, savings flows, insurance,
// employer type, and the asset/liability totals. NetWorth is assigned as
// exactly assets minus liabilities.
func (g *Generator) stageAssetsAndExpenses(p *profile.BorrowerProfile, fs *stats.FeatureStatistics) {
	p.HealthInsuranceStatus = g.sampleCategory(fs, profile.FieldHealthInsuranceStatus, fallbackInsurance)
	p.LifeInsuranceStatus = g.sampleCategory(fs, profile.FieldLifeInsuranceStatus, fallbackInsurance)
	p.AutoInsuranceStatus = g.sampleCategory(fs, profile.FieldAutoInsuranceStatus, fallbackInsurance)
	p.HomeInsuranceStatus = g.sampleCategory(fs, profile.FieldHomeInsuranceStatus, fallbackInsurance)
	p.OtherInsurancePolicies = maxInt(int(math.Round(g.normal(1, 1))), 0)

	if p.IsUnemployed() {
		p.EmployerType = "None"
	} else {
		p.EmployerType = g.sampleCategory(fs, profile.FieldEmployerType, fallbackEmployer)
	}

	monthlyIncome := p.MonthlyIncome()
	jitter := func() float64 { return 0.8 + 0.4*g.rng.Float64() }

	p.UtilitiesExpense = monthlyIncome * 0.04 * jitter()
	p.GroceriesExpense = (200 + 150*float64(p.NumberOfDependents)) * jitter()
	p.TransportationExpense = monthlyIncome * 0.05 * jitter()
	p.HealthcareExpense = (100 + 80*float64(p.NumberOfDependents)) * jitter()
	if p.HealthInsuranceStatus == profile.InsuranceUninsured {
		p.HealthcareExpense *= 1.5
	}
	p.EntertainmentExpense = monthlyIncome * 0.03 * jitter()
	p.AnnualTravelExpense = p.AnnualIncome * 0.02 * 2 * g.rng.Float64()

	disposable := monthlyIncome - p.MonthlyDebtPayments - p.MonthlyHousingPayment -
		p.UtilitiesExpense - p.GroceriesExpense - p.TransportationExpense -
		p.HealthcareExpense - p.EntertainmentExpense
	p.MonthlySavings = maxFloat(disposable, 0) * (0.2 + 0.4*g.rng.Float64())

	if !p.IsUnemployed() && p.EmploymentStatus != profile.EmploymentRetired {
		p.AnnualBonuses = p.AnnualIncome * 0.05 * 2 * g.rng.Float64()
	}

	assets := p.SavingsBalance + p.CheckingBalance + p.InvestmentBalance +
		p.RetirementBalance + p.EmergencyFundBalance
	switch p.HomeOwnershipStatus {
	case profile.OwnershipMortgage:
		assets += p.MortgageBalance * (1.1 + 0.3*g.rng.Float64())
	case profile.OwnershipOwn:
		assets += p.AnnualIncome * (2 + 2*g.rng.Float64())
	}
	p.TotalAssets = assets
	p.TotalLiabilities = p.MortgageBalance + p.AutoLoanBalance +
		p.StudentLoanBalance + p.PersonalLoanBalance
	p.NetWorth = p.TotalAssets - p.TotalLiabilities
}

// stageApprovalLabel converts the shared additive risk score into a
// Bernoulli approval draw.
func (g *Generator) stageApprovalLabel(p *profile.BorrowerProfile) int {
	prob := model.Logistic(model.RawRiskScore(p))
	if g.rng.Float64() < prob {
		return 1
	}
	return 0
}
