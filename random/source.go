package random

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source is a generator of uniformly distributed 64-bit values. It has the
// same method set as math/rand/v2.Source, so any of those sources may be used.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Algorithm names a generator that can back a *Rand.
type Algorithm string

const (
	// Runtime uses the Go runtime's per-thread generator. It cannot be seeded.
	Runtime Algorithm = "runtime"
	// PCG is math/rand/v2's permuted congruential generator.
	PCG Algorithm = "pcg"
	// ChaCha8 is math/rand/v2's ChaCha8-based generator.
	ChaCha8 Algorithm = "chacha8"
	// MT19937 is the 64-bit Mersenne Twister.
	MT19937 Algorithm = "mt19937"
)

// Algorithms lists the supported generator names.
var Algorithms = []Algorithm{Runtime, PCG, ChaCha8, MT19937}

// ParseAlgorithm converts a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q", name)
}

// runtimeSource draws from the runtime generator, which keeps its state per
// thread, so it needs no lock.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 {
	return rand.Uint64()
}

// lockedSource serializes access to a stateful source.
type lockedSource struct {
	lock sync.Mutex
	src  Source
}

func (s *lockedSource) Uint64() uint64 {
	s.lock.Lock()
	n := s.src.Uint64()
	s.lock.Unlock()
	return n
}

func newSource(alg Algorithm, seed uint64) Source {
	switch alg {
	case ChaCha8:
		var key [32]byte
		state := seed
		for i := 0; i < len(key); i += 8 {
			binary.LittleEndian.PutUint64(key[i:], splitmix64(&state))
		}
		return rand.NewChaCha8(key)
	case MT19937:
		mt := prng.NewMT19937()
		mt.Seed(seed)
		return mt
	default:
		state := seed
		return rand.NewPCG(splitmix64(&state), splitmix64(&state))
	}
}

// splitmix64 expands a single seed into well-mixed words.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
