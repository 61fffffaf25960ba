package model

import (
	"log"

	mstats "github.com/montanaflynn/stats"

	"loansight/domain/profile"
	"loansight/internal/errors"
)

// Fixed fit schedule. Gradient descent runs the full iteration count;
// there is no convergence check or cancellation contract.
const (
	gdIterations   = 1000
	gdLearningRate = 0.01
)

var errTierNumeric = errors.InternalError("prediction tier produced a non-finite value")

// Train fits the direct-estimation tier by batch gradient descent over
// z-score-normalized features and restores the model to the top of the
// tier chain. Required before tiers 1 or 2 can answer. Fails with an
// EMPTY_CORPUS error on empty input; on failure the model keeps its
// previous state.
func (m *ApprovalModel) Train(corpus []profile.LabeledProfile) error {
	if len(corpus) == 0 {
		return errors.EmptyCorpus("model training")
	}

	params, err := fitParameters(corpus)
	if err != nil {
		return err
	}

	// Training accuracy on the direct tier, for observability only.
	correct := 0
	for i := range corpus {
		prob, err := predictWithParameters(&corpus[i].Profile, params)
		if err != nil {
			continue
		}
		predicted := 0
		if prob >= 0.5 {
			predicted = 1
		}
		if predicted == corpus[i].LoanApproved {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(corpus))

	m.mu.Lock()
	m.params = params
	m.trained = true
	m.tier = TierStructured
	m.trainAccuracy = accuracy
	m.mu.Unlock()

	log.Printf("[ApprovalModel] trained on %d profiles, accuracy %.3f, primary employment %q, primary purpose %q",
		len(corpus), accuracy, params.PrimaryEmployment, params.PrimaryPurpose)
	return nil
}

// fitParameters computes normalization pairs, primary categories, and the
// gradient-descent coefficient fit.
func fitParameters(corpus []profile.LabeledProfile) (Parameters, error) {
	n := len(corpus)
	params := Parameters{}

	// Normalization stats over the five continuous risk features, using
	// the same population moments as the feature statistics build.
	columns := [normCount][]float64{}
	for i := range columns {
		columns[i] = make([]float64, n)
	}
	for i := range corpus {
		p := &corpus[i].Profile
		columns[normCredit][i] = float64(p.CreditScore)
		columns[normDTI][i] = p.DebtToIncomeRatio
		columns[normLTI][i] = safeLTI(p)
		columns[normDefaults][i] = float64(p.PreviousLoanDefaults)
		columns[normBankruptcy][i] = float64(p.BankruptcyHistory)
	}
	for i := range columns {
		mean, err := mstats.Mean(columns[i])
		if err != nil {
			return params, errors.Wrap(err, "normalization mean")
		}
		stdDev, err := mstats.StandardDeviationPopulation(columns[i])
		if err != nil {
			return params, errors.Wrap(err, "normalization stddev")
		}
		if stdDev == 0 {
			// Zero variance: fall back to identity scaling so z-scores
			// stay finite.
			mean, stdDev = 0, 1
		}
		params.Norms[i] = NormPair{Mean: mean, StdDev: stdDev}
	}

	params.PrimaryEmployment = modalCategory(corpus, profile.FieldEmploymentStatus)
	params.PrimaryPurpose = modalCategory(corpus, profile.FieldLoanPurpose)

	// Design matrix in the fixed feature order.
	design := make([][featureCount]float64, 0, n)
	labels := make([]float64, 0, n)
	for i := range corpus {
		x, err := params.featureVector(&corpus[i].Profile)
		if err != nil {
			// Degenerate rows (e.g. zero income) are excluded from the
			// fit rather than poisoning the gradient.
			continue
		}
		design = append(design, x)
		labels = append(labels, float64(corpus[i].LoanApproved))
	}
	if len(design) == 0 {
		return params, errors.InvalidInput("no trainable rows in corpus")
	}

	// Batch gradient descent: coef -= lr * mean(error * feature).
	rows := float64(len(design))
	for iter := 0; iter < gdIterations; iter++ {
		gradIntercept := 0.0
		var grad [featureCount]float64
		for r := range design {
			z := params.Intercept
			for j := 0; j < featureCount; j++ {
				z += params.Coefficients[j] * design[r][j]
			}
			err := Logistic(z) - labels[r]
			gradIntercept += err
			for j := 0; j < featureCount; j++ {
				grad[j] += err * design[r][j]
			}
		}
		params.Intercept -= gdLearningRate * gradIntercept / rows
		for j := 0; j < featureCount; j++ {
			params.Coefficients[j] -= gdLearningRate * grad[j] / rows
		}
	}

	return params, nil
}

// predictWithParameters evaluates the direct tier against candidate
// parameters without touching model state.
func predictWithParameters(p *profile.BorrowerProfile, params Parameters) (float64, error) {
	x, err := params.featureVector(p)
	if err != nil {
		return 0, err
	}
	z := params.Intercept
	for i := 0; i < featureCount; i++ {
		z += params.Coefficients[i] * x[i]
	}
	return Logistic(z), nil
}

// modalCategory returns the most frequent value of a categorical field,
// ties broken by first appearance.
func modalCategory(corpus []profile.LabeledProfile, field profile.Field) string {
	accessor := profile.CategoricalFields[field]
	counts := map[string]int{}
	var order []string
	for i := range corpus {
		v := accessor(&corpus[i].Profile)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	best, bestCount := "", -1
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// safeLTI returns loan-to-income with zero-income rows mapped to zero so
// the normalization moments stay finite. Feature vectors for such rows
// still fail and are excluded from the fit.
func safeLTI(p *profile.BorrowerProfile) float64 {
	lti := p.LoanToIncome()
	if !isFinite(lti) {
		return 0
	}
	return lti
}
