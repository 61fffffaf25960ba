package generator

import (
	"loansight/domain/profile"
	"loansight/domain/stats"
)

// Fallback category sets for corpora that omit a categorical column.
// Sampling falls back to a uniform draw over these.
var (
	fallbackEmployment = []string{
		profile.EmploymentEmployed, profile.EmploymentSelfEmployed,
		profile.EmploymentUnemployed, profile.EmploymentRetired,
	}
	fallbackMarital   = []string{profile.MaritalSingle, profile.MaritalMarried, "Divorced", "Widowed"}
	fallbackEducation = []string{profile.EducationHighSchool, "Associate", "Bachelor's", "Master's", "Doctorate"}
	fallbackOwnership = []string{profile.OwnershipRent, profile.OwnershipMortgage, profile.OwnershipOwn}
	fallbackPurpose   = []string{
		profile.PurposeHome, profile.PurposeAuto, profile.PurposeEducation,
		profile.PurposeDebtConsolidation, profile.PurposeOther,
	}
	fallbackEmployer  = []string{"Private", "Public", "Non-Profit", "Government"}
	fallbackInsurance = []string{profile.InsuranceInsured, profile.InsuranceUninsured}
)

// sampleCategory draws one categorical value by empirical frequency from
// the corpus statistics, falling back to a uniform draw over the known
// values when the corpus never observed the field.
func (g *Generator) sampleCategory(fs *stats.FeatureStatistics, field profile.Field, fallback []string) string {
	counts := fs.CategoricalOrDefault(field, fallback)

	r := g.rng.Float64()
	cumulative := 0.0
	for _, value := range counts.Values {
		cumulative += counts.Frequency(value)
		if r <= cumulative {
			return value
		}
	}
	return counts.Values[0]
}
