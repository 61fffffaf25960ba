package profile

import (
	"math"
	"testing"
)

func TestOverrideApply_ReplacesOnlySetFields(t *testing.T) {
	base := BorrowerProfile{
		CreditScore:       700,
		DebtToIncomeRatio: 0.3,
		LoanAmount:        100000,
		AnnualIncome:      80000,
		EmploymentStatus:  EmploymentEmployed,
		LoanPurpose:       PurposeHome,
		SavingsBalance:    12000,
		NetWorth:          50000,
	}

	perturbed := Override{
		CreditScore:       IntPtr(750),
		DebtToIncomeRatio: FloatPtr(0.25),
	}.Apply(base)

	if perturbed.CreditScore != 750 {
		t.Errorf("expected overridden credit score 750, got %d", perturbed.CreditScore)
	}
	if perturbed.DebtToIncomeRatio != 0.25 {
		t.Errorf("expected overridden DTI 0.25, got %g", perturbed.DebtToIncomeRatio)
	}
	if perturbed.LoanAmount != base.LoanAmount {
		t.Errorf("loan amount should be untouched, got %g", perturbed.LoanAmount)
	}
	if perturbed.SavingsBalance != base.SavingsBalance || perturbed.NetWorth != base.NetWorth {
		t.Error("unrelated fields must carry over in the structural copy")
	}
	if base.CreditScore != 700 || base.DebtToIncomeRatio != 0.3 {
		t.Error("the source profile must never be mutated")
	}
}

func TestOverrideApply_EmptyOverrideIsIdentity(t *testing.T) {
	base := BorrowerProfile{CreditScore: 640, EmploymentStatus: EmploymentUnemployed}
	copied := Override{}.Apply(base)
	if copied != base {
		t.Error("empty override should produce an identical copy")
	}
}

func TestLoanToIncome(t *testing.T) {
	cases := []struct {
		name   string
		loan   float64
		income float64
		want   float64
	}{
		{"typical", 150000, 50000, 3.0},
		{"zero loan and income", 0, 0, 0},
		{"fractional", 25000, 100000, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BorrowerProfile{LoanAmount: tc.loan, AnnualIncome: tc.income}
			if got := p.LoanToIncome(); got != tc.want {
				t.Errorf("LoanToIncome() = %g, want %g", got, tc.want)
			}
		})
	}

	p := BorrowerProfile{LoanAmount: 50000, AnnualIncome: 0}
	if got := p.LoanToIncome(); !math.IsInf(got, 1) {
		t.Errorf("zero income with a loan should be infinite, got %g", got)
	}
}
