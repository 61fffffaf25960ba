package corpus

import (
	"loansight/domain/profile"
)

// Column names match the profile field identifiers. The reader maps file
// headers to setters through these tables; the writer emits columns in
// the fixed order below.

const labelColumn = "LoanApproved"

var numericSetters = map[string]func(*profile.BorrowerProfile, float64){
	"CreditScore":               func(p *profile.BorrowerProfile, v float64) { p.CreditScore = int(v) },
	"AnnualIncome":              func(p *profile.BorrowerProfile, v float64) { p.AnnualIncome = v },
	"LoanAmount":                func(p *profile.BorrowerProfile, v float64) { p.LoanAmount = v },
	"DebtToIncomeRatio":         func(p *profile.BorrowerProfile, v float64) { p.DebtToIncomeRatio = v },
	"MonthlyDebtPayments":       func(p *profile.BorrowerProfile, v float64) { p.MonthlyDebtPayments = v },
	"CreditCardUtilizationRate": func(p *profile.BorrowerProfile, v float64) { p.CreditCardUtilizationRate = v },
	"SavingsBalance":            func(p *profile.BorrowerProfile, v float64) { p.SavingsBalance = v },
	"CheckingBalance":           func(p *profile.BorrowerProfile, v float64) { p.CheckingBalance = v },
	"InvestmentBalance":         func(p *profile.BorrowerProfile, v float64) { p.InvestmentBalance = v },
	"RetirementBalance":         func(p *profile.BorrowerProfile, v float64) { p.RetirementBalance = v },
	"EmergencyFundBalance":      func(p *profile.BorrowerProfile, v float64) { p.EmergencyFundBalance = v },
	"TotalAssets":               func(p *profile.BorrowerProfile, v float64) { p.TotalAssets = v },
	"TotalLiabilities":          func(p *profile.BorrowerProfile, v float64) { p.TotalLiabilities = v },
	"NetWorth":                  func(p *profile.BorrowerProfile, v float64) { p.NetWorth = v },
	"Age":                       func(p *profile.BorrowerProfile, v float64) { p.Age = int(v) },
	"NumberOfDependents":        func(p *profile.BorrowerProfile, v float64) { p.NumberOfDependents = int(v) },
	"JobTenureYears":            func(p *profile.BorrowerProfile, v float64) { p.JobTenureYears = v },
	"OpenCreditLines":           func(p *profile.BorrowerProfile, v float64) { p.OpenCreditLines = int(v) },
	"CreditInquiries":           func(p *profile.BorrowerProfile, v float64) { p.CreditInquiries = int(v) },
	"BankruptcyHistory":         func(p *profile.BorrowerProfile, v float64) { p.BankruptcyHistory = int(v) },
	"PreviousLoanDefaults":      func(p *profile.BorrowerProfile, v float64) { p.PreviousLoanDefaults = int(v) },
	"PaymentHistoryScore":       func(p *profile.BorrowerProfile, v float64) { p.PaymentHistoryScore = v },
	"CreditHistoryMonths":       func(p *profile.BorrowerProfile, v float64) { p.CreditHistoryMonths = int(v) },
	"OtherInsurancePolicies":    func(p *profile.BorrowerProfile, v float64) { p.OtherInsurancePolicies = int(v) },
	"LoanDurationYears":         func(p *profile.BorrowerProfile, v float64) { p.LoanDurationYears = int(v) },
	"InterestRate":              func(p *profile.BorrowerProfile, v float64) { p.InterestRate = v },
	"MonthlyHousingPayment":     func(p *profile.BorrowerProfile, v float64) { p.MonthlyHousingPayment = v },
	"UtilitiesExpense":          func(p *profile.BorrowerProfile, v float64) { p.UtilitiesExpense = v },
	"GroceriesExpense":          func(p *profile.BorrowerProfile, v float64) { p.GroceriesExpense = v },
	"TransportationExpense":     func(p *profile.BorrowerProfile, v float64) { p.TransportationExpense = v },
	"HealthcareExpense":         func(p *profile.BorrowerProfile, v float64) { p.HealthcareExpense = v },
	"EntertainmentExpense":      func(p *profile.BorrowerProfile, v float64) { p.EntertainmentExpense = v },
	"AnnualTravelExpense":       func(p *profile.BorrowerProfile, v float64) { p.AnnualTravelExpense = v },
	"MonthlySavings":            func(p *profile.BorrowerProfile, v float64) { p.MonthlySavings = v },
	"AnnualBonuses":             func(p *profile.BorrowerProfile, v float64) { p.AnnualBonuses = v },
	"MortgageBalance":           func(p *profile.BorrowerProfile, v float64) { p.MortgageBalance = v },
	"AutoLoanBalance":           func(p *profile.BorrowerProfile, v float64) { p.AutoLoanBalance = v },
	"StudentLoanBalance":        func(p *profile.BorrowerProfile, v float64) { p.StudentLoanBalance = v },
	"PersonalLoanBalance":       func(p *profile.BorrowerProfile, v float64) { p.PersonalLoanBalance = v },
}

var stringSetters = map[string]func(*profile.BorrowerProfile, string){
	"ProfileID":             func(p *profile.BorrowerProfile, v string) { p.ProfileID = v },
	"EmploymentStatus":      func(p *profile.BorrowerProfile, v string) { p.EmploymentStatus = v },
	"MaritalStatus":         func(p *profile.BorrowerProfile, v string) { p.MaritalStatus = v },
	"EducationLevel":        func(p *profile.BorrowerProfile, v string) { p.EducationLevel = v },
	"EmployerType":          func(p *profile.BorrowerProfile, v string) { p.EmployerType = v },
	"HomeOwnershipStatus":   func(p *profile.BorrowerProfile, v string) { p.HomeOwnershipStatus = v },
	"LoanPurpose":           func(p *profile.BorrowerProfile, v string) { p.LoanPurpose = v },
	"HealthInsuranceStatus": func(p *profile.BorrowerProfile, v string) { p.HealthInsuranceStatus = v },
	"LifeInsuranceStatus":   func(p *profile.BorrowerProfile, v string) { p.LifeInsuranceStatus = v },
	"AutoInsuranceStatus":   func(p *profile.BorrowerProfile, v string) { p.AutoInsuranceStatus = v },
	"HomeInsuranceStatus":   func(p *profile.BorrowerProfile, v string) { p.HomeInsuranceStatus = v },
}

// writeColumns fixes the export column order: identifier, label, then the
// continuous and categorical fields in registry order.
func writeColumns() []string {
	cols := []string{"ProfileID", labelColumn}
	for _, f := range profile.ContinuousFieldOrder {
		cols = append(cols, string(f))
	}
	for _, f := range profile.CategoricalFieldOrder {
		cols = append(cols, string(f))
	}
	return cols
}
