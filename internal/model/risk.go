package model

import (
	"math"

	"loansight/domain/profile"
)

// Weights of the latent risk graph. Which features matter, and with what
// sign, is fixed here rather than constructed at runtime.
const (
	weightCredit     = 1.8
	weightDTI        = -1.2
	weightDefaults   = -0.9
	weightBankruptcy = -1.3
	weightLTI        = -0.7
)

// Logistic maps any real score to (0,1).
func Logistic(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// RawRiskScore is the additive approval risk score on raw feature scales:
// a credit term, a hard DTI cliff at 0.43, and default / bankruptcy /
// employment / loan-to-income penalties. The synthetic generator assigns
// labels from this same score, so generated corpora and the model agree
// on what approval-shaped risk looks like.
func RawRiskScore(p *profile.BorrowerProfile) float64 {
	risk := (float64(p.CreditScore) - 650) / 100 * 1.5

	if p.DebtToIncomeRatio > 0.43 {
		risk -= 2.0
	} else {
		risk -= p.DebtToIncomeRatio * 1.5
	}

	risk -= 1.5 * float64(p.PreviousLoanDefaults)
	risk -= 2.0 * float64(p.BankruptcyHistory)

	if p.IsUnemployed() {
		risk -= 1.0
	}

	lti := p.LoanToIncome()
	if lti > 5 {
		risk -= 1.5
	} else if lti > 3 {
		risk -= 0.8
	}

	return risk
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
