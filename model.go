package hookean

import "math"

// DefaultGasConstant is the molar gas constant R in J/(mol·K) (CODATA exact).
const DefaultGasConstant = 8.31446261815324

// DefaultTemperature is the bath temperature T in kelvin.
const DefaultTemperature = 300.0

// Stiffness bounds accepted by the estimator's clamped methods.
var (
	MinStiffness = 1e-3
	MaxStiffness = 1e6
)

// Model holds the physical constants of the thermal spring model.
// The extension z of a spring with stiffness a is distributed as the
// positive half of a zero-mean Gaussian with variance R·T/a.
type Model struct {
	GasConstant float64 `json:"gas_constant"` // R, J/(mol·K)
	Temperature float64 `json:"temperature"`  // T, kelvin
}

// DefaultModel returns a Model with the default gas constant and a
// 300 K bath.
func DefaultModel() Model {
	return Model{
		GasConstant: DefaultGasConstant,
		Temperature: DefaultTemperature,
	}
}

// Validate checks that both constants are strictly positive and finite.
func (m Model) Validate() error {
	if !(m.GasConstant > 0) || math.IsInf(m.GasConstant, 1) {
		return ErrInvalidModel
	}
	if !(m.Temperature > 0) || math.IsInf(m.Temperature, 1) {
		return ErrInvalidModel
	}
	return nil
}

// LogProb computes the unnormalized log-density of observing extension z
// under stiffness a:
//
//	log p(a, z) = -(a·z²) / (2·R·T) + 0.5·ln(a)
//
// The 0.5·ln(a) term approximates the a-dependent part of the log
// normalizer; the a-independent remainder (-0.5·ln(2πRT) + ln 2 for the
// exact half-Gaussian) is dropped since it does not move the optimum.
// For a ≤ 0 the density is undefined and LogProb returns -Inf.
func (m Model) LogProb(a, z float64) float64 {
	if a <= 0 {
		return math.Inf(-1)
	}
	return -(a*z*z)/(2*m.GasConstant*m.Temperature) + 0.5*math.Log(a)
}

// Variance returns the variance R·T/a of the underlying full Gaussian.
func (m Model) Variance(a float64) float64 {
	return m.GasConstant * m.Temperature / a
}

// Sigma returns the standard deviation sqrt(R·T/a) of the underlying
// full Gaussian.
func (m Model) Sigma(a float64) float64 {
	return math.Sqrt(m.Variance(a))
}
