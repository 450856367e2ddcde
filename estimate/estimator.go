package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/hookean/hookean"
)

// Method selects the minimization algorithm used by Fit.
type Method string

const (
	// LBFGS minimizes with gonum's limited-memory quasi-Newton method.
	LBFGS Method = "lbfgs"
	// Adam minimizes with scalar Adam plus cosine annealing. Slower to
	// converge than LBFGS but free of line searches.
	Adam Method = "adam"
)

// Config configures an Estimator.
// Zero values are replaced with sensible defaults.
type Config struct {
	InitialGuess      float64 `json:"initial_guess"`      // default 1.0
	GradientTolerance float64 `json:"gradient_tolerance"` // default 1e-8
	MaxEvaluations    int     `json:"max_evaluations"`    // default: no limit
	Method            Method  `json:"method"`             // default LBFGS
}

// Estimator fits the spring stiffness to an observation set by
// minimizing the negative log-likelihood. The search runs in x = ln(a),
// which keeps every candidate inside the positive domain and leaves the
// objective convex (exp plus linear in x).
type Estimator struct {
	initialGuess float64
	gradTol      float64
	maxEvals     int
	method       Method
}

// Result describes a completed fit.
type Result struct {
	Stiffness        float64 // estimated stiffness a
	NegLogLikelihood float64 // objective value at the estimate
	Evaluations      int     // objective evaluations consumed
}

// NewEstimator creates an Estimator with the given config.
// Zero-valued fields receive defaults: InitialGuess=1.0,
// GradientTolerance=1e-8, Method=LBFGS. A negative initial guess is
// rejected with hookean.ErrNonPositiveStiffness.
func NewEstimator(cfg Config) (*Estimator, error) {
	e := &Estimator{
		initialGuess: cfg.InitialGuess,
		gradTol:      cfg.GradientTolerance,
		maxEvals:     cfg.MaxEvaluations,
		method:       cfg.Method,
	}
	if e.initialGuess == 0 {
		e.initialGuess = 1.0
	}
	if e.initialGuess < 0 {
		return nil, hookean.ErrNonPositiveStiffness
	}
	if e.gradTol == 0 {
		e.gradTol = 1e-8
	}
	if e.method == "" {
		e.method = LBFGS
	}
	if e.method != LBFGS && e.method != Adam {
		return nil, fmt.Errorf("estimate: unknown method %q", e.method)
	}
	return e, nil
}

// Fit recovers the stiffness that minimizes the negative log-likelihood
// of the observations under the model. A single optimization attempt is
// made; non-convergence is surfaced as the optimizer's own error.
func (e *Estimator) Fit(m hookean.Model, obs hookean.Observations) (Result, error) {
	obj, err := NewObjective(m, obs)
	if err != nil {
		return Result{}, err
	}
	if e.method == Adam {
		return e.fitAdam(obj), nil
	}
	return e.fitLBFGS(obj)
}

// fitLBFGS delegates the minimization to gonum's L-BFGS in log-stiffness
// space. The chain rule maps the analytic gradient: d/dx f(eˣ) = f'(a)·a.
func (e *Estimator) fitLBFGS(obj *Objective) (Result, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return obj.Value(math.Exp(x[0]))
		},
		Grad: func(grad, x []float64) {
			a := math.Exp(x[0])
			grad[0] = obj.Grad(a) * a
		},
	}

	settings := &optimize.Settings{
		GradientThreshold: e.gradTol,
		FuncEvaluations:   e.maxEvals,
	}

	res, err := optimize.Minimize(problem, []float64{math.Log(e.initialGuess)}, settings, &optimize.LBFGS{})
	if err != nil {
		return Result{}, fmt.Errorf("estimate: minimize: %w", err)
	}
	if err := res.Status.Err(); err != nil {
		return Result{}, fmt.Errorf("estimate: minimize: %w", err)
	}

	return Result{
		Stiffness:        math.Exp(res.X[0]),
		NegLogLikelihood: res.F,
		Evaluations:      res.Stats.FuncEvaluations,
	}, nil
}
