package hookean

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SamplerConfig configures a Sampler.
// Zero values produce sensible defaults; see field comments.
type SamplerConfig struct {
	Model     Model   `json:"model"`     // zero → DefaultModel()
	Stiffness float64 `json:"stiffness"` // required, > 0
	Seed      uint64  `json:"seed"`      // zero → time-derived seed
}

// Sampler draws spring extensions from the thermal distribution of a
// spring with known stiffness. It is the synthetic-data source used to
// exercise the estimator.
type Sampler struct {
	model     Model
	stiffness float64
	dist      distuv.Normal
}

// NewSampler creates a Sampler from the given config.
// A zero Model is replaced with DefaultModel(); Stiffness must be
// strictly positive.
func NewSampler(cfg SamplerConfig) (*Sampler, error) {
	model := cfg.Model
	if model == (Model{}) {
		model = DefaultModel()
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if cfg.Stiffness <= 0 {
		return nil, ErrNonPositiveStiffness
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Sampler{
		model:     model,
		stiffness: cfg.Stiffness,
		dist: distuv.Normal{
			Mu:    0,
			Sigma: model.Sigma(cfg.Stiffness),
			Src:   rand.NewSource(seed),
		},
	}, nil
}

// Model returns the physical constants the sampler draws under.
func (s *Sampler) Model() Model {
	return s.model
}

// Sample draws n independent values from the zero-mean Gaussian with
// variance R·T/a and keeps only the strictly positive ones. The returned
// set therefore has non-deterministic length, close to n/2.
func (s *Sampler) Sample(n int) Observations {
	obs := make(Observations, 0, n/2+1)
	for i := 0; i < n; i++ {
		if z := s.dist.Rand(); z > 0 {
			obs = append(obs, z)
		}
	}
	return obs
}
