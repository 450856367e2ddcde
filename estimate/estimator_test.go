package estimate

import (
	"errors"
	"math"
	"testing"

	"github.com/hookean/hookean"
)

// springObservations draws the positive half of 100000 Gaussian samples
// from a spring with the given true stiffness.
func springObservations(t testing.TB, stiffness float64, seed uint64) hookean.Observations {
	t.Helper()
	sampler, err := hookean.NewSampler(hookean.SamplerConfig{
		Stiffness: stiffness,
		Seed:      seed,
	})
	if err != nil {
		t.Fatal(err)
	}
	return sampler.Sample(100000)
}

// --- NewEstimator ---

func TestNewEstimatorDefaults(t *testing.T) {
	e, err := NewEstimator(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if e.initialGuess != 1.0 {
		t.Errorf("initialGuess = %f, want 1.0", e.initialGuess)
	}
	if e.gradTol != 1e-8 {
		t.Errorf("gradTol = %g, want 1e-8", e.gradTol)
	}
	if e.method != LBFGS {
		t.Errorf("method = %q, want LBFGS", e.method)
	}
}

func TestNewEstimatorCustom(t *testing.T) {
	e, err := NewEstimator(Config{
		InitialGuess:      4,
		GradientTolerance: 1e-10,
		MaxEvaluations:    500,
		Method:            Adam,
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.initialGuess != 4 {
		t.Errorf("initialGuess = %f, want 4", e.initialGuess)
	}
	if e.gradTol != 1e-10 {
		t.Errorf("gradTol = %g, want 1e-10", e.gradTol)
	}
	if e.maxEvals != 500 {
		t.Errorf("maxEvals = %d, want 500", e.maxEvals)
	}
	if e.method != Adam {
		t.Errorf("method = %q, want Adam", e.method)
	}
}

func TestNewEstimatorNegativeGuess(t *testing.T) {
	_, err := NewEstimator(Config{InitialGuess: -4})
	if !errors.Is(err, hookean.ErrNonPositiveStiffness) {
		t.Errorf("err = %v, want ErrNonPositiveStiffness", err)
	}
}

func TestNewEstimatorUnknownMethod(t *testing.T) {
	_, err := NewEstimator(Config{Method: "newton"})
	if err == nil {
		t.Error("expected error for unknown method")
	}
}

// --- Fit ---

func TestFitRecoversStiffnessFromBelow(t *testing.T) {
	obs := springObservations(t, 60, 42)
	e, err := NewEstimator(Config{InitialGuess: 4})
	if err != nil {
		t.Fatal(err)
	}

	result, err := e.Fit(hookean.DefaultModel(), obs)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(result.Stiffness-60) > 2 {
		t.Errorf("Stiffness = %.4f, want 60 ± 2", result.Stiffness)
	}
	if result.Evaluations <= 0 {
		t.Errorf("Evaluations = %d, want > 0", result.Evaluations)
	}
}

func TestFitRecoversStiffnessFromAbove(t *testing.T) {
	obs := springObservations(t, 60, 42)
	e, err := NewEstimator(Config{InitialGuess: 100})
	if err != nil {
		t.Fatal(err)
	}

	result, err := e.Fit(hookean.DefaultModel(), obs)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(result.Stiffness-60) > 2 {
		t.Errorf("Stiffness = %.4f, want 60 ± 2", result.Stiffness)
	}
}

func TestFitGuessIndependent(t *testing.T) {
	// Convex objective: both starting points land on the same minimizer.
	obs := springObservations(t, 60, 42)
	model := hookean.DefaultModel()

	fit := func(guess float64) float64 {
		e, err := NewEstimator(Config{InitialGuess: guess})
		if err != nil {
			t.Fatal(err)
		}
		result, err := e.Fit(model, obs)
		if err != nil {
			t.Fatal(err)
		}
		return result.Stiffness
	}

	low, high := fit(4), fit(100)
	if math.Abs(low-high) > 1e-4 {
		t.Errorf("fits diverge: %.8f from guess 4, %.8f from guess 100", low, high)
	}
}

func TestFitMatchesClosedForm(t *testing.T) {
	obs := springObservations(t, 60, 42)
	model := hookean.DefaultModel()

	obj, err := NewObjective(model, obs)
	if err != nil {
		t.Fatal(err)
	}
	want := obj.ClosedFormMLE()

	e, err := NewEstimator(Config{InitialGuess: 4})
	if err != nil {
		t.Fatal(err)
	}
	result, err := e.Fit(model, obs)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(result.Stiffness-want)/want > 1e-6 {
		t.Errorf("Stiffness = %.10f, closed form %.10f", result.Stiffness, want)
	}
	assertFloat(t, "NegLogLikelihood", result.NegLogLikelihood, obj.Value(result.Stiffness))
}

func TestFitConsistency(t *testing.T) {
	// MLE consistency: the recovered stiffness tracks the generating one
	// across different true values.
	model := hookean.DefaultModel()
	for _, trueStiffness := range []float64{20, 60, 150} {
		obs := springObservations(t, trueStiffness, 11)
		e, err := NewEstimator(Config{InitialGuess: 1})
		if err != nil {
			t.Fatal(err)
		}
		result, err := e.Fit(model, obs)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(result.Stiffness-trueStiffness)/trueStiffness > 0.05 {
			t.Errorf("true %v: Stiffness = %.4f, want within 5%%", trueStiffness, result.Stiffness)
		}
	}
}

func TestFitEmptyObservations(t *testing.T) {
	e, err := NewEstimator(Config{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.Fit(hookean.DefaultModel(), nil)
	if !errors.Is(err, hookean.ErrNoObservations) {
		t.Errorf("err = %v, want ErrNoObservations", err)
	}
}

func TestFitBadObservations(t *testing.T) {
	e, err := NewEstimator(Config{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.Fit(hookean.DefaultModel(), hookean.Observations{1, 0})
	if !errors.Is(err, hookean.ErrNonPositiveObservation) {
		t.Errorf("err = %v, want ErrNonPositiveObservation", err)
	}
}

// --- Adam method ---

func TestFitAdamAgreesWithClosedForm(t *testing.T) {
	obs := springObservations(t, 60, 42)
	model := hookean.DefaultModel()

	obj, err := NewObjective(model, obs)
	if err != nil {
		t.Fatal(err)
	}
	want := obj.ClosedFormMLE()

	e, err := NewEstimator(Config{InitialGuess: 4, Method: Adam})
	if err != nil {
		t.Fatal(err)
	}
	result, err := e.Fit(model, obs)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(result.Stiffness-want) > 0.5 {
		t.Errorf("Adam Stiffness = %.4f, closed form %.4f", result.Stiffness, want)
	}
	if result.Evaluations <= 0 {
		t.Errorf("Evaluations = %d, want > 0", result.Evaluations)
	}
}

func TestAdamUpdateMovesAgainstGradient(t *testing.T) {
	opt := newAdam(0.1)
	x := 1.0
	got := opt.update(x, 2.5)
	if got >= x {
		t.Errorf("update(1.0, +grad) = %v, want < 1.0", got)
	}
	got2 := newAdam(0.1).update(x, -2.5)
	if got2 <= x {
		t.Errorf("update(1.0, -grad) = %v, want > 1.0", got2)
	}
}

func TestCosineAnnealingDecays(t *testing.T) {
	ca := &cosineAnnealing{lrMax: 0.1, tMax: 10}
	assertFloat(t, "lr(0)", ca.lr(), 0.1)
	for i := 0; i < 10; i++ {
		ca.advance()
	}
	assertFloat(t, "lr(tMax)", ca.lr(), 0)
}

func TestClampStiffness(t *testing.T) {
	if got := clampStiffness(hookean.MinStiffness / 10); got != hookean.MinStiffness {
		t.Errorf("clamp below = %v, want %v", got, hookean.MinStiffness)
	}
	if got := clampStiffness(hookean.MaxStiffness * 10); got != hookean.MaxStiffness {
		t.Errorf("clamp above = %v, want %v", got, hookean.MaxStiffness)
	}
	if got := clampStiffness(60); got != 60 {
		t.Errorf("clamp(60) = %v, want 60", got)
	}
}
