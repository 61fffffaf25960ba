package model

import (
	"loansight/domain/profile"
	"loansight/internal/errors"
)

// predictStructured is tier 1: the latent risk graph evaluated in closed
// form over z-normalized terms, using the normalization pairs learned at
// training time. Any non-finite intermediate is a tier failure; the
// caller downgrades and never retries this tier.
func (m *ApprovalModel) predictStructured(p *profile.BorrowerProfile, params Parameters) (float64, error) {
	lti := p.LoanToIncome()
	if !isFinite(lti) {
		return 0, errors.InternalError("structured tier: loan-to-income is not finite")
	}

	terms := [5]float64{
		weightCredit * params.Norms[normCredit].z(float64(p.CreditScore)),
		weightDTI * params.Norms[normDTI].z(p.DebtToIncomeRatio),
		weightLTI * params.Norms[normLTI].z(lti),
		weightDefaults * params.Norms[normDefaults].z(float64(p.PreviousLoanDefaults)),
		weightBankruptcy * params.Norms[normBankruptcy].z(float64(p.BankruptcyHistory)),
	}

	risk := 0.0
	for _, term := range terms {
		if !isFinite(term) {
			return 0, errors.InternalError("structured tier: non-finite risk term")
		}
		risk += term
	}

	prob := Logistic(risk)
	if !isFinite(prob) || prob < 0 || prob > 1 {
		return 0, errors.InternalError("structured tier: probability out of range")
	}
	return prob, nil
}
