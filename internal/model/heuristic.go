package model

import (
	"loansight/domain/profile"
)

// heuristicProbability is the rule-based fallback tier. It depends on no
// trained parameters and cannot fail given valid numeric input: part of
// the contract that Predict never surfaces an error.
func heuristicProbability(p *profile.BorrowerProfile) float64 {
	prob := 0.5

	switch {
	case p.CreditScore >= 740:
		prob += 0.25
	case p.CreditScore >= 680:
		prob += 0.15
	case p.CreditScore >= 620:
		prob += 0.05
	case p.CreditScore < 580:
		prob -= 0.25
	}

	if p.DebtToIncomeRatio > 0.43 {
		prob -= 0.2
	} else if p.DebtToIncomeRatio > 0.36 {
		prob -= 0.1
	}

	prob -= 0.15 * float64(p.PreviousLoanDefaults)
	prob -= 0.25 * float64(p.BankruptcyHistory)

	if p.IsUnemployed() {
		prob -= 0.2
	}

	lti := p.LoanToIncome()
	if lti > 5 {
		prob -= 0.2
	} else if lti > 3 {
		prob -= 0.1
	}

	return clamp(prob, 0.01, 0.99)
}
