package profile

import "math"

var inf = math.Inf(1)

// BorrowerProfile is the full structured record of one loan applicant.
// All fields are required; there are no null/optional semantics. Profiles
// are plain values, owned by their caller, and are never shared mutably.
type BorrowerProfile struct {
	ProfileID string `json:"profile_id,omitempty"`

	// Financial
	CreditScore               int     `json:"credit_score"` // 300-850
	AnnualIncome              float64 `json:"annual_income"`
	LoanAmount                float64 `json:"loan_amount"`
	DebtToIncomeRatio         float64 `json:"debt_to_income_ratio"` // 0-1
	MonthlyDebtPayments       float64 `json:"monthly_debt_payments"`
	CreditCardUtilizationRate float64 `json:"credit_card_utilization_rate"` // 0-1
	SavingsBalance            float64 `json:"savings_balance"`
	CheckingBalance           float64 `json:"checking_balance"`
	InvestmentBalance         float64 `json:"investment_balance"`
	RetirementBalance         float64 `json:"retirement_balance"`
	EmergencyFundBalance      float64 `json:"emergency_fund_balance"`
	TotalAssets               float64 `json:"total_assets"`
	TotalLiabilities          float64 `json:"total_liabilities"`
	NetWorth                  float64 `json:"net_worth"` // invariant: TotalAssets - TotalLiabilities

	// Demographic
	Age                 int     `json:"age"`
	EmploymentStatus    string  `json:"employment_status"`
	MaritalStatus       string  `json:"marital_status"`
	EducationLevel      string  `json:"education_level"`
	NumberOfDependents  int     `json:"number_of_dependents"`
	EmployerType        string  `json:"employer_type"`
	JobTenureYears      float64 `json:"job_tenure_years"`
	HomeOwnershipStatus string  `json:"home_ownership_status"`

	// Credit history
	OpenCreditLines      int     `json:"open_credit_lines"`
	CreditInquiries      int     `json:"credit_inquiries"`
	BankruptcyHistory    int     `json:"bankruptcy_history"`
	PreviousLoanDefaults int     `json:"previous_loan_defaults"`
	PaymentHistoryScore  float64 `json:"payment_history_score"`
	CreditHistoryMonths  int     `json:"credit_history_months"`

	// Insurance
	HealthInsuranceStatus  string `json:"health_insurance_status"` // "Insured" / "Uninsured"
	LifeInsuranceStatus    string `json:"life_insurance_status"`
	AutoInsuranceStatus    string `json:"auto_insurance_status"`
	HomeInsuranceStatus    string `json:"home_insurance_status"`
	OtherInsurancePolicies int    `json:"other_insurance_policies"`

	// Loan terms
	LoanPurpose       string  `json:"loan_purpose"`
	LoanDurationYears int     `json:"loan_duration_years"`
	InterestRate      float64 `json:"interest_rate"`

	// Monthly/annual expenses and savings
	MonthlyHousingPayment float64 `json:"monthly_housing_payment"`
	UtilitiesExpense      float64 `json:"utilities_expense"`
	GroceriesExpense      float64 `json:"groceries_expense"`
	TransportationExpense float64 `json:"transportation_expense"`
	HealthcareExpense     float64 `json:"healthcare_expense"`
	EntertainmentExpense  float64 `json:"entertainment_expense"`
	AnnualTravelExpense   float64 `json:"annual_travel_expense"`
	MonthlySavings        float64 `json:"monthly_savings"`
	AnnualBonuses         float64 `json:"annual_bonuses"`

	// Liability balances
	MortgageBalance     float64 `json:"mortgage_balance"`
	AutoLoanBalance     float64 `json:"auto_loan_balance"`
	StudentLoanBalance  float64 `json:"student_loan_balance"`
	PersonalLoanBalance float64 `json:"personal_loan_balance"`
}

// LabeledProfile is a borrower profile with a known approval outcome.
// The label exists only on training and synthetic records; profiles
// submitted for prediction carry no label.
type LabeledProfile struct {
	Profile      BorrowerProfile `json:"profile"`
	LoanApproved int             `json:"loan_approved"` // 0 or 1
}

// LoanToIncome returns the loan amount as a multiple of annual income.
// Returns +Inf for a zero income, which callers treat as a degenerate input.
func (p *BorrowerProfile) LoanToIncome() float64 {
	if p.AnnualIncome == 0 {
		if p.LoanAmount == 0 {
			return 0
		}
		if p.LoanAmount > 0 {
			return inf
		}
		return -inf
	}
	return p.LoanAmount / p.AnnualIncome
}

// IsUnemployed reports whether the employment status counts as unemployed
// for risk scoring.
func (p *BorrowerProfile) IsUnemployed() bool {
	return p.EmploymentStatus == EmploymentUnemployed
}

// MonthlyIncome returns annual income divided over twelve months.
func (p *BorrowerProfile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}

// Well-known categorical values. Corpora may contain more; these are the
// ones the engine attaches behavior to.
const (
	EmploymentEmployed     = "Employed"
	EmploymentSelfEmployed = "Self-Employed"
	EmploymentUnemployed   = "Unemployed"
	EmploymentRetired      = "Retired"

	MaritalMarried = "Married"
	MaritalSingle  = "Single"

	EducationHighSchool = "High School"

	OwnershipOwn      = "Own"
	OwnershipMortgage = "Mortgage"
	OwnershipRent     = "Rent"

	PurposeHome              = "Home"
	PurposeAuto              = "Auto"
	PurposeEducation         = "Education"
	PurposeDebtConsolidation = "Debt Consolidation"
	PurposeOther             = "Other"

	InsuranceInsured   = "Insured"
	InsuranceUninsured = "Uninsured"
)
