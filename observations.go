package hookean

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Observations is a set of observed spring extensions. Every element
// must be strictly positive; the set is immutable once generated.
// Order carries no meaning.
type Observations []float64

// Validate checks that the set is non-empty and every element is
// strictly positive and finite.
func (o Observations) Validate() error {
	if len(o) == 0 {
		return ErrNoObservations
	}
	for i, z := range o {
		if !(z > 0) || math.IsInf(z, 1) || math.IsNaN(z) {
			return fmt.Errorf("%w: z[%d] = %v", ErrNonPositiveObservation, i, z)
		}
	}
	return nil
}

// SumSquares returns Σ zᵢ², the sufficient statistic of the
// half-Gaussian likelihood.
func (o Observations) SumSquares() float64 {
	if len(o) == 0 {
		return 0
	}
	return floats.Dot(o, o)
}

// MeanSquare returns the mean of zᵢ². For a true stiffness a this
// converges to R·T/a as the set grows.
func (o Observations) MeanSquare() float64 {
	if len(o) == 0 {
		return 0
	}
	return o.SumSquares() / float64(len(o))
}
