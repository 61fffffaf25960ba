package model

import (
	"log"
	"sync"

	"loansight/domain/profile"
)

// Feature vector layout, fixed order.
const (
	featCredit = iota
	featDTI
	featLTI
	featDefaults
	featBankruptcy
	featEmployedDummy
	featPurposeDummy
	featureCount
)

// Normalization pair indices. Only the five continuous risk features are
// z-scored; the two dummies pass through.
const (
	normCredit = iota
	normDTI
	normLTI
	normDefaults
	normBankruptcy
	normCount
)

// NormPair holds the mean/stddev used to standardize one input feature.
// Pairs are fixed at training time and reused identically at inference.
type NormPair struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

func (n NormPair) z(v float64) float64 {
	return (v - n.Mean) / n.StdDev
}

// Parameters is the trained state of the approval model: an intercept, a
// fixed-order coefficient vector, the normalization pairs, and the
// primary categories backing the two indicator dummies. Mutated only by
// Train; read-only during prediction.
type Parameters struct {
	Intercept         float64               `json:"intercept"`
	Coefficients      [featureCount]float64 `json:"coefficients"`
	Norms             [normCount]NormPair   `json:"norms"`
	PrimaryEmployment string                `json:"primary_employment"`
	PrimaryPurpose    string                `json:"primary_purpose"`
}

// ApprovalModel predicts loan approval probability through a three-tier
// degrading chain: structured inference, direct estimation, then the
// rule-based heuristic. Predict never returns an error; tier failures
// degrade silently and permanently.
//
// The mutex guards the tier marker and the parameter swap performed by
// Train. Concurrent Predict calls against a trained model are safe;
// callers serialize Train against reads.
type ApprovalModel struct {
	mu            sync.RWMutex
	tier          PredictionTier
	trained       bool
	params        Parameters
	trainAccuracy float64
}

// NewApprovalModel returns an untrained model. Until Train succeeds,
// Predict answers from the heuristic tier without consuming the upper
// tiers.
func NewApprovalModel() *ApprovalModel {
	return &ApprovalModel{tier: TierStructured}
}

// Predict returns the approval probability for p, always in [0,1].
// Failures in the upper tiers downgrade the model for its lifetime rather
// than surfacing; the heuristic floor cannot fail.
func (m *ApprovalModel) Predict(p *profile.BorrowerProfile) float64 {
	m.mu.RLock()
	tier, trained, params := m.tier, m.trained, m.params
	m.mu.RUnlock()

	if !trained {
		// Not a tier failure: the upper tiers are simply unavailable
		// until Train runs, so no permanent downgrade happens here.
		return heuristicProbability(p)
	}

	for {
		switch tier {
		case TierStructured:
			prob, err := m.predictStructured(p, params)
			if err == nil {
				return prob
			}
			tier = m.downgrade(tier, err)
		case TierDirect:
			prob, err := m.predictDirect(p, params)
			if err == nil {
				return prob
			}
			tier = m.downgrade(tier, err)
		default:
			return heuristicProbability(p)
		}
	}
}

// predictDirect is tier 2: the trained logistic regression.
func (m *ApprovalModel) predictDirect(p *profile.BorrowerProfile, params Parameters) (float64, error) {
	x, err := params.featureVector(p)
	if err != nil {
		return 0, err
	}
	z := params.Intercept
	for i := 0; i < featureCount; i++ {
		z += params.Coefficients[i] * x[i]
	}
	prob := Logistic(z)
	if !isFinite(prob) {
		return 0, errTierNumeric
	}
	return prob, nil
}

// downgrade permanently disables the failed tier and returns the next
// one. Downgrades only move forward: a concurrent predict that already
// fell further wins.
func (m *ApprovalModel) downgrade(failed PredictionTier, cause error) PredictionTier {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := failed.next()
	if next > m.tier {
		log.Printf("[ApprovalModel] %s tier failed (%v), degrading to %s", failed, cause, next)
		m.tier = next
	}
	return m.tier
}

// Tier reports the tier the model currently answers from.
func (m *ApprovalModel) Tier() PredictionTier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.trained {
		return TierHeuristic
	}
	return m.tier
}

// Trained reports whether Train has completed successfully.
func (m *ApprovalModel) Trained() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trained
}

// TrainingAccuracy returns the label-match fraction recorded by the last
// Train call, 0 for an untrained model.
func (m *ApprovalModel) TrainingAccuracy() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trainAccuracy
}

// Parameters returns a copy of the trained parameters.
func (m *ApprovalModel) Parameters() Parameters {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.params
}

// featureVector builds the fixed-order normalized feature vector for p.
func (params *Parameters) featureVector(p *profile.BorrowerProfile) ([featureCount]float64, error) {
	var x [featureCount]float64

	lti := p.LoanToIncome()
	if !isFinite(lti) {
		return x, errTierNumeric
	}

	x[featCredit] = params.Norms[normCredit].z(float64(p.CreditScore))
	x[featDTI] = params.Norms[normDTI].z(p.DebtToIncomeRatio)
	x[featLTI] = params.Norms[normLTI].z(lti)
	x[featDefaults] = params.Norms[normDefaults].z(float64(p.PreviousLoanDefaults))
	x[featBankruptcy] = params.Norms[normBankruptcy].z(float64(p.BankruptcyHistory))
	if p.EmploymentStatus == params.PrimaryEmployment {
		x[featEmployedDummy] = 1
	}
	if p.LoanPurpose == params.PrimaryPurpose {
		x[featPurposeDummy] = 1
	}

	for _, v := range x {
		if !isFinite(v) {
			return x, errTierNumeric
		}
	}
	return x, nil
}
