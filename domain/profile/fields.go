package profile

// Field identifies a single borrower-profile attribute for statistics
// collection and sampling. Dispatch is decided here at definition time,
// keyed by field identity, instead of runtime name lookup.
type Field string

// Continuous fields.
const (
	FieldCreditScore           Field = "CreditScore"
	FieldAnnualIncome          Field = "AnnualIncome"
	FieldLoanAmount            Field = "LoanAmount"
	FieldDebtToIncomeRatio     Field = "DebtToIncomeRatio"
	FieldMonthlyDebtPayments   Field = "MonthlyDebtPayments"
	FieldCardUtilization       Field = "CreditCardUtilizationRate"
	FieldSavingsBalance        Field = "SavingsBalance"
	FieldCheckingBalance       Field = "CheckingBalance"
	FieldInvestmentBalance     Field = "InvestmentBalance"
	FieldRetirementBalance     Field = "RetirementBalance"
	FieldEmergencyFundBalance  Field = "EmergencyFundBalance"
	FieldTotalAssets           Field = "TotalAssets"
	FieldTotalLiabilities      Field = "TotalLiabilities"
	FieldNetWorth              Field = "NetWorth"
	FieldAge                   Field = "Age"
	FieldNumberOfDependents    Field = "NumberOfDependents"
	FieldJobTenureYears        Field = "JobTenureYears"
	FieldOpenCreditLines       Field = "OpenCreditLines"
	FieldCreditInquiries       Field = "CreditInquiries"
	FieldBankruptcyHistory     Field = "BankruptcyHistory"
	FieldPreviousLoanDefaults  Field = "PreviousLoanDefaults"
	FieldPaymentHistoryScore   Field = "PaymentHistoryScore"
	FieldCreditHistoryMonths   Field = "CreditHistoryMonths"
	FieldOtherPolicies         Field = "OtherInsurancePolicies"
	FieldLoanDurationYears     Field = "LoanDurationYears"
	FieldInterestRate          Field = "InterestRate"
	FieldMonthlyHousingPayment Field = "MonthlyHousingPayment"
	FieldUtilitiesExpense      Field = "UtilitiesExpense"
	FieldGroceriesExpense      Field = "GroceriesExpense"
	FieldTransportationExpense Field = "TransportationExpense"
	FieldHealthcareExpense     Field = "HealthcareExpense"
	FieldEntertainmentExpense  Field = "EntertainmentExpense"
	FieldAnnualTravelExpense   Field = "AnnualTravelExpense"
	FieldMonthlySavings        Field = "MonthlySavings"
	FieldAnnualBonuses         Field = "AnnualBonuses"
	FieldMortgageBalance       Field = "MortgageBalance"
	FieldAutoLoanBalance       Field = "AutoLoanBalance"
	FieldStudentLoanBalance    Field = "StudentLoanBalance"
	FieldPersonalLoanBalance   Field = "PersonalLoanBalance"
)

// Categorical fields.
const (
	FieldEmploymentStatus      Field = "EmploymentStatus"
	FieldMaritalStatus         Field = "MaritalStatus"
	FieldEducationLevel        Field = "EducationLevel"
	FieldEmployerType          Field = "EmployerType"
	FieldHomeOwnershipStatus   Field = "HomeOwnershipStatus"
	FieldLoanPurpose           Field = "LoanPurpose"
	FieldHealthInsuranceStatus Field = "HealthInsuranceStatus"
	FieldLifeInsuranceStatus   Field = "LifeInsuranceStatus"
	FieldAutoInsuranceStatus   Field = "AutoInsuranceStatus"
	FieldHomeInsuranceStatus   Field = "HomeInsuranceStatus"
)

// ContinuousFields maps each continuous field to its accessor.
var ContinuousFields = map[Field]func(*BorrowerProfile) float64{
	FieldCreditScore:           func(p *BorrowerProfile) float64 { return float64(p.CreditScore) },
	FieldAnnualIncome:          func(p *BorrowerProfile) float64 { return p.AnnualIncome },
	FieldLoanAmount:            func(p *BorrowerProfile) float64 { return p.LoanAmount },
	FieldDebtToIncomeRatio:     func(p *BorrowerProfile) float64 { return p.DebtToIncomeRatio },
	FieldMonthlyDebtPayments:   func(p *BorrowerProfile) float64 { return p.MonthlyDebtPayments },
	FieldCardUtilization:       func(p *BorrowerProfile) float64 { return p.CreditCardUtilizationRate },
	FieldSavingsBalance:        func(p *BorrowerProfile) float64 { return p.SavingsBalance },
	FieldCheckingBalance:       func(p *BorrowerProfile) float64 { return p.CheckingBalance },
	FieldInvestmentBalance:     func(p *BorrowerProfile) float64 { return p.InvestmentBalance },
	FieldRetirementBalance:     func(p *BorrowerProfile) float64 { return p.RetirementBalance },
	FieldEmergencyFundBalance:  func(p *BorrowerProfile) float64 { return p.EmergencyFundBalance },
	FieldTotalAssets:           func(p *BorrowerProfile) float64 { return p.TotalAssets },
	FieldTotalLiabilities:      func(p *BorrowerProfile) float64 { return p.TotalLiabilities },
	FieldNetWorth:              func(p *BorrowerProfile) float64 { return p.NetWorth },
	FieldAge:                   func(p *BorrowerProfile) float64 { return float64(p.Age) },
	FieldNumberOfDependents:    func(p *BorrowerProfile) float64 { return float64(p.NumberOfDependents) },
	FieldJobTenureYears:        func(p *BorrowerProfile) float64 { return p.JobTenureYears },
	FieldOpenCreditLines:       func(p *BorrowerProfile) float64 { return float64(p.OpenCreditLines) },
	FieldCreditInquiries:       func(p *BorrowerProfile) float64 { return float64(p.CreditInquiries) },
	FieldBankruptcyHistory:     func(p *BorrowerProfile) float64 { return float64(p.BankruptcyHistory) },
	FieldPreviousLoanDefaults:  func(p *BorrowerProfile) float64 { return float64(p.PreviousLoanDefaults) },
	FieldPaymentHistoryScore:   func(p *BorrowerProfile) float64 { return p.PaymentHistoryScore },
	FieldCreditHistoryMonths:   func(p *BorrowerProfile) float64 { return float64(p.CreditHistoryMonths) },
	FieldOtherPolicies:         func(p *BorrowerProfile) float64 { return float64(p.OtherInsurancePolicies) },
	FieldLoanDurationYears:     func(p *BorrowerProfile) float64 { return float64(p.LoanDurationYears) },
	FieldInterestRate:          func(p *BorrowerProfile) float64 { return p.InterestRate },
	FieldMonthlyHousingPayment: func(p *BorrowerProfile) float64 { return p.MonthlyHousingPayment },
	FieldUtilitiesExpense:      func(p *BorrowerProfile) float64 { return p.UtilitiesExpense },
	FieldGroceriesExpense:      func(p *BorrowerProfile) float64 { return p.GroceriesExpense },
	FieldTransportationExpense: func(p *BorrowerProfile) float64 { return p.TransportationExpense },
	FieldHealthcareExpense:     func(p *BorrowerProfile) float64 { return p.HealthcareExpense },
	FieldEntertainmentExpense:  func(p *BorrowerProfile) float64 { return p.EntertainmentExpense },
	FieldAnnualTravelExpense:   func(p *BorrowerProfile) float64 { return p.AnnualTravelExpense },
	FieldMonthlySavings:        func(p *BorrowerProfile) float64 { return p.MonthlySavings },
	FieldAnnualBonuses:         func(p *BorrowerProfile) float64 { return p.AnnualBonuses },
	FieldMortgageBalance:       func(p *BorrowerProfile) float64 { return p.MortgageBalance },
	FieldAutoLoanBalance:       func(p *BorrowerProfile) float64 { return p.AutoLoanBalance },
	FieldStudentLoanBalance:    func(p *BorrowerProfile) float64 { return p.StudentLoanBalance },
	FieldPersonalLoanBalance:   func(p *BorrowerProfile) float64 { return p.PersonalLoanBalance },
}

// CategoricalFields maps each categorical field to its accessor.
var CategoricalFields = map[Field]func(*BorrowerProfile) string{
	FieldEmploymentStatus:      func(p *BorrowerProfile) string { return p.EmploymentStatus },
	FieldMaritalStatus:         func(p *BorrowerProfile) string { return p.MaritalStatus },
	FieldEducationLevel:        func(p *BorrowerProfile) string { return p.EducationLevel },
	FieldEmployerType:          func(p *BorrowerProfile) string { return p.EmployerType },
	FieldHomeOwnershipStatus:   func(p *BorrowerProfile) string { return p.HomeOwnershipStatus },
	FieldLoanPurpose:           func(p *BorrowerProfile) string { return p.LoanPurpose },
	FieldHealthInsuranceStatus: func(p *BorrowerProfile) string { return p.HealthInsuranceStatus },
	FieldLifeInsuranceStatus:   func(p *BorrowerProfile) string { return p.LifeInsuranceStatus },
	FieldAutoInsuranceStatus:   func(p *BorrowerProfile) string { return p.AutoInsuranceStatus },
	FieldHomeInsuranceStatus:   func(p *BorrowerProfile) string { return p.HomeInsuranceStatus },
}

// ContinuousFieldOrder fixes iteration order for deterministic statistics
// output. Map iteration order is not stable in Go.
var ContinuousFieldOrder = []Field{
	FieldCreditScore, FieldAnnualIncome, FieldLoanAmount,
	FieldDebtToIncomeRatio, FieldMonthlyDebtPayments, FieldCardUtilization,
	FieldSavingsBalance, FieldCheckingBalance, FieldInvestmentBalance,
	FieldRetirementBalance, FieldEmergencyFundBalance, FieldTotalAssets,
	FieldTotalLiabilities, FieldNetWorth, FieldAge, FieldNumberOfDependents,
	FieldJobTenureYears, FieldOpenCreditLines, FieldCreditInquiries,
	FieldBankruptcyHistory, FieldPreviousLoanDefaults,
	FieldPaymentHistoryScore, FieldCreditHistoryMonths, FieldOtherPolicies,
	FieldLoanDurationYears, FieldInterestRate, FieldMonthlyHousingPayment,
	FieldUtilitiesExpense, FieldGroceriesExpense, FieldTransportationExpense,
	FieldHealthcareExpense, FieldEntertainmentExpense,
	FieldAnnualTravelExpense, FieldMonthlySavings, FieldAnnualBonuses,
	FieldMortgageBalance, FieldAutoLoanBalance, FieldStudentLoanBalance,
	FieldPersonalLoanBalance,
}

// CategoricalFieldOrder fixes iteration order for categorical fields.
var CategoricalFieldOrder = []Field{
	FieldEmploymentStatus, FieldMaritalStatus, FieldEducationLevel,
	FieldEmployerType, FieldHomeOwnershipStatus, FieldLoanPurpose,
	FieldHealthInsuranceStatus, FieldLifeInsuranceStatus,
	FieldAutoInsuranceStatus, FieldHomeInsuranceStatus,
}
