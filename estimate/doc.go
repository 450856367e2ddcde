// Package estimate recovers a spring stiffness from observed extensions
// by maximum likelihood.
//
// It provides two main capabilities:
//
//   - [Objective] turns a model plus an observation set into the negative
//     log-likelihood (and its analytic gradient) that the fit minimizes.
//
//   - [Estimator.Fit] minimizes the objective with gonum's L-BFGS
//     quasi-Newton method (or a scalar [Adam] fallback), searching in
//     ln(a) so the positive stiffness domain is structural.
//
// # Usage
//
//	est, err := estimate.NewEstimator(estimate.Config{InitialGuess: 4})
//	result, err := est.Fit(hookean.DefaultModel(), obs)
//	fmt.Println(result.Stiffness)
//
// # Data Requirements
//
// The fit requires a non-empty observation set of strictly positive
// extensions; with no data the objective degenerates to a constant and
// Fit returns [hookean.ErrNoObservations].
package estimate
