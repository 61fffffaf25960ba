package model

// PredictionTier identifies which rung of the degrading fallback chain a
// model is answering from. Tiers are attempted in order; a tier that
// fails is disabled for the lifetime of the model instance, so the cost
// of a known-bad tier is paid at most once.
type PredictionTier int

const (
	// TierStructured treats the profile as one example in a latent
	// risk-score graph and computes a closed-form logistic probability.
	TierStructured PredictionTier = iota
	// TierDirect is the trained logistic regression, the primary path
	// once training has succeeded.
	TierDirect
	// TierHeuristic is the deterministic rule table. It cannot fail on
	// valid numeric input.
	TierHeuristic
)

func (t PredictionTier) String() string {
	switch t {
	case TierStructured:
		return "structured"
	case TierDirect:
		return "direct"
	case TierHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// next returns the fallback tier below t.
func (t PredictionTier) next() PredictionTier {
	if t >= TierHeuristic {
		return TierHeuristic
	}
	return t + 1
}
