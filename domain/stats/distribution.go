package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Shape describes the distribution shape of one continuous field across
// the corpus. Read-only companion view to the Summary statistics, used by
// the stats endpoint to flag skewed or heavy-tailed features.
type Shape struct {
	Field    profile.Field `json:"field"`
	Skewness float64       `json:"skewness"`
	Kurtosis float64       `json:"kurtosis"`
	Median   float64       `json:"median"`
	Q25      float64       `json:"q25"`
	Q75      float64       `json:"q75"`
	IsNormal bool          `json:"is_normal"`
	NormalP  float64       `json:"normal_p"`
}

// ShapeProfile computes the distribution shape of a continuous field.
func ShapeProfile(corpus []profile.LabeledProfile, field profile.Field) (Shape, error) {
	if len(corpus) == 0 {
		return Shape{}, errors.EmptyCorpus("shape profiling")
	}
	accessor, ok := profile.ContinuousFields[field]
	if !ok {
		return Shape{}, errors.ValidationErrorf("field %s is not continuous", field)
	}

	column := make([]float64, len(corpus))
	for i := range corpus {
		column[i] = accessor(&corpus[i].Profile)
	}

	mean, err := mstats.Mean(column)
	if err != nil {
		return Shape{}, err
	}
	stdDev, err := mstats.StandardDeviationPopulation(column)
	if err != nil {
		return Shape{}, err
	}
	median, err := mstats.Median(column)
	if err != nil {
		return Shape{}, err
	}
	q25, err := mstats.Percentile(column, 25)
	if err != nil {
		return Shape{}, err
	}
	q75, err := mstats.Percentile(column, 75)
	if err != nil {
		return Shape{}, err
	}

	shape := Shape{
		Field:  field,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}
	if stdDev > 0 {
		shape.Skewness = skewness(column, mean, stdDev)
		shape.Kurtosis = kurtosis(column, mean, stdDev)
		shape.IsNormal, shape.NormalP = testNormality(shape.Skewness, shape.Kurtosis)
	} else {
		// Constant column: shape is degenerate, not normal.
		shape.NormalP = 0
	}
	return shape, nil
}

// skewness computes sample skewness with the adjusted Fisher-Pearson
// correction.
func skewness(column []float64, mean, stdDev float64) float64 {
	n := float64(len(column))
	if n < 3 {
		return 0
	}
	sum := 0.0
	for _, x := range column {
		d := (x - mean) / stdDev
		sum += d * d * d
	}
	return (sum / n) * math.Sqrt(n*(n-1)) / (n - 2)
}

// kurtosis computes sample kurtosis (not excess).
func kurtosis(column []float64, mean, stdDev float64) float64 {
	n := float64(len(column))
	if n < 4 {
		return 3
	}
	sum := 0.0
	for _, x := range column {
		d := (x - mean) / stdDev
		sum += d * d * d * d
	}
	return sum / n
}

// testNormality approximates a normality test from skewness and kurtosis,
// with a chi-squared tail for the p-value. The result flags obviously
// non-normal features, it is not a formal test.
func testNormality(skew, kurt float64) (bool, float64) {
	testStat := math.Abs(skew) + math.Abs(kurt-3)/2
	chi := distuv.ChiSquared{K: 2}
	p := 1 - chi.CDF(testStat*testStat)
	return p > 0.05, p
}
