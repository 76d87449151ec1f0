package random

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// DecimalPlaces is the number of fractional digits produced by Decimal. It is
// also the most DecimalRange accepts.
const DecimalPlaces = 28

var decimalOne = decimal.NewFromInt(1)

// Decimal returns a decimal drawn uniformly from [0, 1) with DecimalPlaces
// fractional digits.
func (r *Rand) Decimal() decimal.Decimal {
	d, _ := r.DecimalRange(decimal.Zero, decimalOne, DecimalPlaces)
	return d
}

// DecimalRange returns a decimal drawn uniformly from the multiples of
// 10^-places that lie in [start, end). It returns ErrEmptyRange when no such
// multiple exists and ErrOutOfDomain when places is outside [0, DecimalPlaces].
func (r *Rand) DecimalRange(start, end decimal.Decimal, places int32) (decimal.Decimal, error) {
	if places < 0 || places > DecimalPlaces {
		return decimal.Zero, placesError(places)
	}
	lo := start.RoundCeil(places)
	if lo.GreaterThanOrEqual(end) {
		return decimal.Zero, &RangeError{Start: start, End: end}
	}
	steps := end.Sub(lo).Shift(places).Ceil().BigInt()
	k := r.bigIntN(steps)
	return lo.Add(decimal.NewFromBigInt(k, -places)), nil
}

// bigIntN returns a uniformly distributed value in [0, n). n must be positive.
func (r *Rand) bigIntN(n *big.Int) *big.Int {
	if n.IsUint64() {
		return new(big.Int).SetUint64(r.rng.Uint64N(n.Uint64()))
	}
	bitLen := n.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> uint(len(buf)*8-bitLen))
	v := new(big.Int)
	for {
		_, _ = r.Read(buf)
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(n) < 0 {
			return v
		}
	}
}

func placesError(places any) error {
	return &DomainError{Name: "places", Value: places, Want: fmt.Sprintf("[0, %d]", DecimalPlaces)}
}
