package hookean

import "errors"

// Sentinel errors for the hookean package.
// Use errors.Is to check: errors.Is(err, hookean.ErrNoObservations)
var (
	ErrInvalidModel           = errors.New("hookean: model constants must be positive")
	ErrNonPositiveStiffness   = errors.New("hookean: stiffness must be positive")
	ErrNoObservations         = errors.New("hookean: no observations provided")
	ErrNonPositiveObservation = errors.New("hookean: observation outside positive domain")
)
