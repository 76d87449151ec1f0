package random

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"runtime", "PCG", " chacha8 ", "MT19937"} {
		_, err := ParseAlgorithm(name)
		require.Nil(t, err)
	}
	alg, err := ParseAlgorithm("Pcg")
	require.Nil(t, err)
	require.Equal(t, PCG, alg)

	_, err = ParseAlgorithm("xorshift")
	require.EqualError(t, err, `unknown algorithm "xorshift"`)
}

func TestSeededStreamsRepeat(t *testing.T) {
	for _, alg := range []Algorithm{PCG, ChaCha8, MT19937} {
		t.Run(string(alg), func(t *testing.T) {
			a, err := New(WithSeed(99), WithAlgorithm(alg))
			require.Nil(t, err)
			b, err := New(WithSeed(99), WithAlgorithm(alg))
			require.Nil(t, err)
			c, err := New(WithSeed(100), WithAlgorithm(alg))
			require.Nil(t, err)

			var sameAsB, sameAsC int
			for range 10 {
				v := a.Uint64()
				if v == b.Uint64() {
					sameAsB++
				}
				if v == c.Uint64() {
					sameAsC++
				}
			}
			require.Equal(t, 10, sameAsB)
			require.Zero(t, sameAsC)
		})
	}
}

func TestSeededShuffleRepeats(t *testing.T) {
	a := seeded(t, 7)
	b := seeded(t, 7)
	x := []int{1, 2, 3, 4, 5, 6, 7, 8}
	y := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(a, x)
	Shuffle(b, y)
	require.Equal(t, x, y)
}

func TestWithAlgorithmUnseeded(t *testing.T) {
	for _, alg := range Algorithms {
		r, err := New(WithAlgorithm(alg))
		require.Nil(t, err)
		v, err := r.IntRange(0, 10, false)
		require.Nil(t, err)
		require.Less(t, v, int64(10))
	}
}

func TestWithSource(t *testing.T) {
	r, err := New(WithSource(rand.NewPCG(1, 2)))
	require.Nil(t, err)
	expected := rand.New(rand.NewPCG(1, 2))
	require.Equal(t, expected.Uint64(), r.Uint64())
}

func TestInvalidOptions(t *testing.T) {
	_, err := New(WithSource(rand.NewPCG(1, 2)), WithSeed(1), WithAlgorithm(PCG))
	require.NotNil(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	_, err = New(WithAlgorithm(Runtime), WithSeed(3))
	require.EqualError(t, errors.Unwrap(err), "the runtime algorithm cannot be seeded")

	_, err = New(WithAlgorithm("lcg"))
	require.ErrorContains(t, err, `unknown algorithm "lcg"`)
}

func TestDefaultIsShared(t *testing.T) {
	require.Same(t, Default(), Default())
	r, err := New()
	require.Nil(t, err)
	require.IsType(t, runtimeSource{}, r.src)
}

func TestRead(t *testing.T) {
	r := seeded(t, 30)
	for _, n := range []int{0, 1, 7, 8, 9, 33} {
		buf := make([]byte, n)
		got, err := r.Read(buf)
		require.Nil(t, err)
		require.Equal(t, n, got)
	}
}

func TestConcurrentUse(t *testing.T) {
	shared := seeded(t, 31)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items := []int{1, 2, 3, 4, 5}
			for range 500 {
				Shuffle(shared, items)
				Shuffle(nil, items)
				_, _ = shared.IntRange(0, 100, true)
				_ = SampleMany(nil, items, 2)
			}
		}()
	}
	wg.Wait()
}
