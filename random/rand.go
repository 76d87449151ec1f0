package random

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Rand is a source of random values. A *Rand is safe for concurrent use.
type Rand struct {
	src Source
	rng *rand.Rand
}

var defaultRand = sync.OnceValue(func() *Rand {
	return newRand(runtimeSource{})
})

// Default returns the process-wide *Rand. It is created on first use and is
// backed by the runtime generator, so concurrent callers never contend on a
// lock.
func Default() *Rand {
	return defaultRand()
}

// New returns a *Rand configured by the given options. With no options it
// behaves like Default.
func New(opts ...Option) (*Rand, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newRand(cfg.newSource()), nil
}

func newRand(src Source) *Rand {
	return &Rand{src: src, rng: rand.New(src)}
}

func orDefault(r *Rand) *Rand {
	if r == nil {
		return Default()
	}
	return r
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	return r.rng.IntN(n)
}

// Read fills p with random bytes. It always returns len(p) and a nil error.
func (r *Rand) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(buf[:], r.src.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
