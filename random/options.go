package random

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Option describes a function used to configure a *Rand.
type Option func(*config)

type config struct {
	source    Source
	algorithm Algorithm
	seed      uint64
	seeded    bool
}

// WithSource draws from the given source. The source is wrapped in a mutex so
// the resulting *Rand is safe for concurrent use. Cannot be combined with
// WithSeed or WithAlgorithm.
func WithSource(src Source) Option {
	return func(cfg *config) {
		cfg.source = src
	}
}

// WithSeed seeds the generator, making the stream reproducible for a given
// algorithm. Without WithAlgorithm, PCG is used.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
		cfg.seeded = true
	}
}

// WithAlgorithm selects the generator. Seeded algorithms without WithSeed are
// seeded from the current time.
func WithAlgorithm(alg Algorithm) Option {
	return func(cfg *config) {
		cfg.algorithm = alg
	}
}

func (cfg *config) validate() error {
	var result *multierror.Error
	if cfg.source != nil {
		if cfg.seeded {
			result = multierror.Append(result, errors.New("a seed cannot be combined with a custom source"))
		}
		if cfg.algorithm != "" {
			result = multierror.Append(result, errors.New("an algorithm cannot be combined with a custom source"))
		}
	}
	if cfg.algorithm != "" {
		alg, err := ParseAlgorithm(string(cfg.algorithm))
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			cfg.algorithm = alg
			if alg == Runtime && cfg.seeded {
				result = multierror.Append(result, fmt.Errorf("the %s algorithm cannot be seeded", Runtime))
			}
		}
	}
	return result.ErrorOrNil()
}

func (cfg *config) newSource() Source {
	if cfg.source != nil {
		return &lockedSource{src: cfg.source}
	}
	alg := cfg.algorithm
	if alg == "" {
		if !cfg.seeded {
			return runtimeSource{}
		}
		alg = PCG
	}
	if alg == Runtime {
		return runtimeSource{}
	}
	seed := cfg.seed
	if !cfg.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{src: newSource(alg, seed)}
}
