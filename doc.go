// Package hookean estimates the stiffness of a Hookean spring from the
// positive half of thermally distributed extension samples.
//
// At temperature T a spring with stiffness a has extension z distributed
// with Boltzmann weight exp(-a·z²/(2·R·T)), the positive half of a
// zero-mean Gaussian with variance R·T/a. hookean provides the sampling
// model (in this package) and a maximum-likelihood Estimator (in the
// hookean/estimate subpackage) that recovers a from observed extensions.
//
// Basic usage:
//
//	sampler, err := hookean.NewSampler(hookean.SamplerConfig{Stiffness: 60})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	obs := sampler.Sample(100000)
//
//	est, _ := estimate.NewEstimator(estimate.Config{InitialGuess: 4})
//	result, err := est.Fit(hookean.DefaultModel(), obs)
package hookean
