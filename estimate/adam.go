package estimate

import (
	"math"

	"github.com/hookean/hookean"
)

// adamSteps bounds the fallback method's iteration count. The scalar
// problem is convex, so this is generous.
const adamSteps = 2000

// adam implements the scalar Adam optimizer with bias correction.
//
// Update rule:
//
//	m = β1·m + (1-β1)·g
//	v = β2·v + (1-β2)·g²
//	m̂ = m / (1 - β1^t)
//	v̂ = v / (1 - β2^t)
//	x = x - lr · m̂ / (√v̂ + ε)
type adam struct {
	lr           float64
	beta1, beta2 float64
	eps          float64
	m, v         float64
	step         int
}

// newAdam creates an Adam optimizer with the given learning rate.
// Uses standard defaults: β1=0.9, β2=0.999, ε=1e-8.
func newAdam(lr float64) *adam {
	return &adam{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
	}
}

// update applies one Adam step to x given gradient g.
func (a *adam) update(x, g float64) float64 {
	a.step++

	a.m = a.beta1*a.m + (1-a.beta1)*g
	a.v = a.beta2*a.v + (1-a.beta2)*g*g

	mHat := a.m / (1 - math.Pow(a.beta1, float64(a.step)))
	vHat := a.v / (1 - math.Pow(a.beta2, float64(a.step)))

	return x - a.lr*mHat/(math.Sqrt(vHat)+a.eps)
}

// setLR updates the learning rate (used by cosineAnnealing).
func (a *adam) setLR(lr float64) {
	a.lr = lr
}

// cosineAnnealing implements the cosine annealing learning rate schedule.
//
//	lr_t = 0.5 * lr_max * (1 + cos(π * t / T_max))
type cosineAnnealing struct {
	lrMax float64
	tMax  int
	t     int
}

// lr returns the current learning rate.
func (ca *cosineAnnealing) lr() float64 {
	return 0.5 * ca.lrMax * (1 + math.Cos(math.Pi*float64(ca.t)/float64(ca.tMax)))
}

// advance steps the schedule forward once.
func (ca *cosineAnnealing) advance() {
	ca.t++
}

// fitAdam minimizes the objective in log-stiffness space with Adam and
// cosine annealing. It stops early once the gradient falls below the
// configured tolerance, and clamps the result to the stiffness bounds.
func (e *Estimator) fitAdam(obj *Objective) Result {
	x := math.Log(e.initialGuess)
	opt := newAdam(0.1)
	ca := &cosineAnnealing{lrMax: 0.1, tMax: adamSteps}

	steps := adamSteps
	if e.maxEvals > 0 && e.maxEvals < steps {
		steps = e.maxEvals
	}

	evals := 0
	for i := 0; i < steps; i++ {
		a := math.Exp(x)
		g := obj.Grad(a) * a
		evals++
		if math.Abs(g) < e.gradTol {
			break
		}
		opt.setLR(ca.lr())
		x = opt.update(x, g)
		ca.advance()
	}

	a := clampStiffness(math.Exp(x))
	return Result{
		Stiffness:        a,
		NegLogLikelihood: obj.Value(a),
		Evaluations:      evals,
	}
}

// clampStiffness constrains a to [hookean.MinStiffness, hookean.MaxStiffness].
func clampStiffness(a float64) float64 {
	if a < hookean.MinStiffness {
		return hookean.MinStiffness
	}
	if a > hookean.MaxStiffness {
		return hookean.MaxStiffness
	}
	return a
}
