package generator

import (
	"math"
)

// normFloat draws a standard-normal value (mean 0, stddev 1) using the
// two-uniform Box-Muller transform. The first uniform is flipped to 1-U
// so the log argument can never be zero. Pairs come out of the transform
// two at a time; the spare is cached for the next call.
func (g *Generator) normFloat() float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}

	u1 := 1 - g.rng.Float64() // (0,1], keeps log finite
	u2 := g.rng.Float64()

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	g.spare = r * math.Sin(theta)
	g.hasSpare = true
	return r * math.Cos(theta)
}

// normal draws from N(mean, stdDev).
func (g *Generator) normal(mean, stdDev float64) float64 {
	return mean + g.normFloat()*stdDev
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}

func maxInt(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
