package report

import (
	"fmt"
	"strings"

	"loansight/domain/profile"
	"loansight/internal/importance"
)

// Decision maps an approval probability to the decision string exposed to
// report consumers.
func Decision(probability float64) string {
	if probability >= 0.5 {
		return "APPROVED"
	}
	return "DENIED"
}

// Render produces the markdown advisor report for one analyzed profile.
// The core stays numeric; all text formatting lives here.
func Render(p *profile.BorrowerProfile, fi *importance.FeatureImportance) string {
	var b strings.Builder

	b.WriteString("# Loan Approval Assessment\n\n")
	fmt.Fprintf(&b, "**Predicted decision:** %s\n\n", Decision(fi.BaseProbability))
	fmt.Fprintf(&b, "**Approval probability:** %.1f%%\n\n", fi.BaseProbability*100)

	b.WriteString("## Profile summary\n\n")
	fmt.Fprintf(&b, "- Credit score: %d\n", p.CreditScore)
	fmt.Fprintf(&b, "- Annual income: $%.0f\n", p.AnnualIncome)
	fmt.Fprintf(&b, "- Requested loan: $%.0f over %d years at %.2f%%\n",
		p.LoanAmount, p.LoanDurationYears, p.InterestRate*100)
	fmt.Fprintf(&b, "- Debt-to-income ratio: %.2f\n", p.DebtToIncomeRatio)
	fmt.Fprintf(&b, "- Employment: %s\n\n", p.EmploymentStatus)

	b.WriteString("## Key drivers\n\n")
	b.WriteString("| Feature | Impact on approval probability |\n")
	b.WriteString("|---|---|\n")
	for _, rf := range fi.RankedFeatures() {
		fmt.Fprintf(&b, "| %s | %+.3f |\n", rf.Name, rf.Impact)
	}
	b.WriteString("\n")

	if len(fi.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range fi.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}
