package profile

// Override describes a set of field replacements to apply to a profile
// copy. Nil fields are left untouched. Counterfactual analysis uses this
// instead of a hand-maintained clone routine, so a new schema field cannot
// be silently dropped from perturbed copies: the copy is structural, the
// override names only what changes.
type Override struct {
	CreditScore          *int
	DebtToIncomeRatio    *float64
	LoanAmount           *float64
	EmploymentStatus     *string
	PreviousLoanDefaults *int
	BankruptcyHistory    *int
	LoanPurpose          *string
}

// Apply returns a copy of p with the set overrides applied. The receiver
// is never mutated.
func (o Override) Apply(p BorrowerProfile) BorrowerProfile {
	out := p // structural copy carries every field, known and future
	if o.CreditScore != nil {
		out.CreditScore = *o.CreditScore
	}
	if o.DebtToIncomeRatio != nil {
		out.DebtToIncomeRatio = *o.DebtToIncomeRatio
	}
	if o.LoanAmount != nil {
		out.LoanAmount = *o.LoanAmount
	}
	if o.EmploymentStatus != nil {
		out.EmploymentStatus = *o.EmploymentStatus
	}
	if o.PreviousLoanDefaults != nil {
		out.PreviousLoanDefaults = *o.PreviousLoanDefaults
	}
	if o.BankruptcyHistory != nil {
		out.BankruptcyHistory = *o.BankruptcyHistory
	}
	if o.LoanPurpose != nil {
		out.LoanPurpose = *o.LoanPurpose
	}
	return out
}

// IntPtr returns a pointer to v, for building overrides inline.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }
