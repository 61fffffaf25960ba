package importance

import (
	"fmt"
	"sort"

	"loansight/domain/profile"
	"loansight/internal/model"
)

// Impact threshold below which a feature does not earn its own
// recommendation line.
const recommendationThreshold = 0.03

// Tracked features, fixed input order. Ties in ranking break toward this
// order.
const (
	FeatureCreditScore      = "CreditScore"
	FeatureDTI              = "DebtToIncomeRatio"
	FeatureLoanToIncome     = "LoanToIncome"
	FeatureDefaults         = "PreviousLoanDefaults"
	FeatureBankruptcy       = "BankruptcyHistory"
	FeatureEmploymentStatus = "EmploymentStatus"
	FeatureLoanPurpose      = "LoanPurpose"
)

var featureOrder = []string{
	FeatureCreditScore,
	FeatureDTI,
	FeatureLoanToIncome,
	FeatureDefaults,
	FeatureBankruptcy,
	FeatureEmploymentStatus,
	FeatureLoanPurpose,
}

// RankedFeature pairs a feature name with its counterfactual impact on
// approval probability.
type RankedFeature struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// FeatureImportance holds the base probability, one impact delta per
// tracked feature, and generated recommendations. Created fresh per
// analyzed profile, mutated only by GenerateRecommendations.
type FeatureImportance struct {
	BaseProbability float64            `json:"base_probability"`
	Impacts         map[string]float64 `json:"impacts"`
	Recommendations []string           `json:"recommendations"`
}

// Analyzer measures which profile attributes drive the approval
// probability, by perturbing one attribute at a time and re-predicting.
type Analyzer struct {
	model *model.ApprovalModel
}

// NewAnalyzer creates an analyzer over an already-trained model.
func NewAnalyzer(m *model.ApprovalModel) *Analyzer {
	return &Analyzer{model: m}
}

// Analyze computes the base probability and all seven impact deltas.
// Perturbations that would be no-ops for this profile (already employed,
// zero defaults, purpose already primary) record a zero impact.
func (a *Analyzer) Analyze(p *profile.BorrowerProfile) *FeatureImportance {
	base := a.model.Predict(p)
	fi := &FeatureImportance{
		BaseProbability: base,
		Impacts:         make(map[string]float64, len(featureOrder)),
	}

	for _, name := range featureOrder {
		override, applies := a.perturbation(name, p)
		if !applies {
			fi.Impacts[name] = 0
			continue
		}
		perturbed := override.Apply(*p)
		fi.Impacts[name] = a.model.Predict(&perturbed) - base
	}

	return fi
}

// perturbation returns the counterfactual override for one feature, and
// whether it changes anything for this profile.
func (a *Analyzer) perturbation(name string, p *profile.BorrowerProfile) (profile.Override, bool) {
	switch name {
	case FeatureCreditScore:
		boosted := p.CreditScore + 50
		if boosted > 850 {
			boosted = 850
		}
		return profile.Override{CreditScore: profile.IntPtr(boosted)}, boosted != p.CreditScore
	case FeatureDTI:
		reduced := p.DebtToIncomeRatio - 0.05
		if reduced < 0 {
			reduced = 0
		}
		return profile.Override{DebtToIncomeRatio: profile.FloatPtr(reduced)}, reduced != p.DebtToIncomeRatio
	case FeatureLoanToIncome:
		return profile.Override{LoanAmount: profile.FloatPtr(p.LoanAmount * 0.9)}, p.LoanAmount != 0
	case FeatureDefaults:
		if p.PreviousLoanDefaults == 0 {
			return profile.Override{}, false
		}
		return profile.Override{PreviousLoanDefaults: profile.IntPtr(p.PreviousLoanDefaults - 1)}, true
	case FeatureBankruptcy:
		if p.BankruptcyHistory == 0 {
			return profile.Override{}, false
		}
		return profile.Override{BankruptcyHistory: profile.IntPtr(p.BankruptcyHistory - 1)}, true
	case FeatureEmploymentStatus:
		if !p.IsUnemployed() {
			return profile.Override{}, false
		}
		return profile.Override{EmploymentStatus: profile.StringPtr(profile.EmploymentEmployed)}, true
	case FeatureLoanPurpose:
		primary := a.model.Parameters().PrimaryPurpose
		if primary == "" || p.LoanPurpose == primary {
			return profile.Override{}, false
		}
		return profile.Override{LoanPurpose: profile.StringPtr(primary)}, true
	default:
		return profile.Override{}, false
	}
}

// RankedFeatures returns the impacts sorted by descending absolute value.
// Ties keep input order; the sort is stable and deterministic.
func (fi *FeatureImportance) RankedFeatures() []RankedFeature {
	ranked := make([]RankedFeature, 0, len(featureOrder))
	for _, name := range featureOrder {
		ranked = append(ranked, RankedFeature{Name: name, Impact: fi.Impacts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Impact) > abs(ranked[j].Impact)
	})
	return ranked
}

// GenerateRecommendations fills the recommendation list: one line per
// ranked feature clearing the impact threshold, keyed by feature identity
// and the profile's own thresholds. If nothing qualifies, exactly one
// fallback line is emitted.
func (fi *FeatureImportance) GenerateRecommendations(p *profile.BorrowerProfile) {
	var recs []string
	for _, rf := range fi.RankedFeatures() {
		if abs(rf.Impact) < recommendationThreshold {
			continue
		}
		if rec := recommendFor(rf.Name, p); rec != "" {
			recs = append(recs, rec)
		}
	}

	if len(recs) == 0 {
		if fi.BaseProbability >= 0.5 {
			recs = append(recs, "Your profile is in good shape; maintaining current credit behavior should keep approval odds favorable.")
		} else {
			recs = append(recs, "Consider reducing the requested loan amount or increasing your down payment to improve approval odds.")
		}
	}

	fi.Recommendations = recs
}

// recommendFor maps one feature to its profile-conditional advice line.
func recommendFor(name string, p *profile.BorrowerProfile) string {
	switch name {
	case FeatureCreditScore:
		if p.CreditScore < 680 {
			return fmt.Sprintf("Raising your credit score from %d by about 50 points would materially improve approval odds.", p.CreditScore)
		}
	case FeatureDTI:
		if p.DebtToIncomeRatio > 0.36 {
			return fmt.Sprintf("Reducing your debt-to-income ratio from %.2f to below 0.36 would strengthen your application.", p.DebtToIncomeRatio)
		}
	case FeatureLoanToIncome:
		if lti := p.LoanToIncome(); lti > 3.0 {
			return fmt.Sprintf("Your loan request is %.1fx your annual income; reducing it to at most 3.0x would help.", lti)
		}
	case FeatureEmploymentStatus:
		if p.IsUnemployed() {
			return "Securing stable employment before applying would significantly improve your approval odds."
		}
	case FeatureDefaults, FeatureBankruptcy:
		if p.JobTenureYears < 2 {
			return "A longer job tenure (two or more years) would offset past credit events in the assessment."
		}
	}
	return ""
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
