package rand

import (
	"context"
	"fmt"
	"math"

	"github.com/deepnoodle-ai/risor-rand/object"
	"github.com/deepnoodle-ai/risor-rand/random"
	"github.com/shopspring/decimal"
)

// Builtins implements the rand module functions on top of a *random.Rand.
type Builtins struct {
	rng *random.Rand
}

// New returns the module functions backed by r. A nil r uses random.Default().
func New(r *random.Rand) *Builtins {
	if r == nil {
		r = random.Default()
	}
	return &Builtins{rng: r}
}

func valueError(name string, err error) *object.Error {
	return object.ValueErrorf("rand.%s: %w", name, err)
}

// Bool returns a random bool. With one argument p it returns true with
// probability p.
func (b *Builtins) Bool(ctx context.Context, args ...object.Object) (object.Object, error) {
	switch len(args) {
	case 0:
		return object.NewBool(b.rng.Bool()), nil
	case 1:
		p, err := object.AsFloat(args[0])
		if err != nil {
			return nil, err
		}
		v, err := b.rng.BoolWeighted(p)
		if err != nil {
			return nil, valueError("bool", err)
		}
		return object.NewBool(v), nil
	default:
		return nil, object.ArgsErrorf("rand.bool: expected 0 or 1 arguments, got %d", len(args))
	}
}

// Int returns a random integer.
// With no arguments: any int64.
// With start, end: an int in [start, end).
// With start, end, inclusive: an int in [start, end] when inclusive is true.
func (b *Builtins) Int(ctx context.Context, args ...object.Object) (object.Object, error) {
	switch len(args) {
	case 0:
		return object.NewInt(b.rng.Int()), nil
	case 2, 3:
		start, err := object.AsInt(args[0])
		if err != nil {
			return nil, err
		}
		end, err := object.AsInt(args[1])
		if err != nil {
			return nil, err
		}
		var inclusive bool
		if len(args) == 3 {
			if inclusive, err = object.AsBool(args[2]); err != nil {
				return nil, err
			}
		}
		v, err := b.rng.IntRange(start, end, inclusive)
		if err != nil {
			return nil, valueError("int", err)
		}
		return object.NewInt(v), nil
	default:
		return nil, object.ArgsErrorf("rand.int: expected 0, 2 or 3 arguments, got %d", len(args))
	}
}

// Randint returns a random integer in [a, b] inclusive.
func (b *Builtins) Randint(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("rand.randint", 2, args); err != nil {
		return nil, err
	}
	lo, err := object.AsInt(args[0])
	if err != nil {
		return nil, err
	}
	hi, err := object.AsInt(args[1])
	if err != nil {
		return nil, err
	}
	v, err := b.rng.IntRange(lo, hi, true)
	if err != nil {
		return nil, valueError("randint", err)
	}
	return object.NewInt(v), nil
}

// Float returns a random float in [0.0, 1.0), or in [start, end) when given
// two arguments.
func (b *Builtins) Float(ctx context.Context, args ...object.Object) (object.Object, error) {
	switch len(args) {
	case 0:
		return object.NewFloat(b.rng.Float()), nil
	case 2:
		start, err := object.AsFloat(args[0])
		if err != nil {
			return nil, err
		}
		end, err := object.AsFloat(args[1])
		if err != nil {
			return nil, err
		}
		v, err := b.rng.FloatRange(start, end)
		if err != nil {
			return nil, valueError("float", err)
		}
		return object.NewFloat(v), nil
	default:
		return nil, object.ArgsErrorf("rand.float: expected 0 or 2 arguments, got %d", len(args))
	}
}

// Uniform returns a random float between a and b inclusive, in either order.
func (b *Builtins) Uniform(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("rand.uniform", 2, args); err != nil {
		return nil, err
	}
	lo, err := object.AsFloat(args[0])
	if err != nil {
		return nil, err
	}
	hi, err := object.AsFloat(args[1])
	if err != nil {
		return nil, err
	}
	v, err := b.rng.Uniform(lo, hi)
	if err != nil {
		return nil, valueError("uniform", err)
	}
	return object.NewFloat(v), nil
}

// Normal returns a float from a normal distribution, standard normal by
// default or with the given mu and sigma.
func (b *Builtins) Normal(ctx context.Context, args ...object.Object) (object.Object, error) {
	mu, sigma := 0.0, 1.0
	switch len(args) {
	case 0:
	case 2:
		var err error
		if mu, err = object.AsFloat(args[0]); err != nil {
			return nil, err
		}
		if sigma, err = object.AsFloat(args[1]); err != nil {
			return nil, err
		}
	default:
		return nil, object.ArgsErrorf("rand.normal: expected 0 or 2 arguments, got %d", len(args))
	}
	v, err := b.rng.Normal(mu, sigma)
	if err != nil {
		return nil, valueError("normal", err)
	}
	return object.NewFloat(v), nil
}

// Exponential returns a float from an exponential distribution with rate
// lambda, 1 by default.
func (b *Builtins) Exponential(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("rand.exponential", 0, 1, args); err != nil {
		return nil, err
	}
	lambda := 1.0
	if len(args) == 1 {
		var err error
		if lambda, err = object.AsFloat(args[0]); err != nil {
			return nil, err
		}
	}
	v, err := b.rng.Exponential(lambda)
	if err != nil {
		return nil, valueError("exponential", err)
	}
	return object.NewFloat(v), nil
}

func asDecimal(obj object.Object) (decimal.Decimal, error) {
	switch obj := obj.(type) {
	case *object.Int:
		return decimal.NewFromInt(obj.Value()), nil
	case *object.Float:
		return decimal.NewFromFloat(obj.Value()), nil
	case *object.String:
		d, err := decimal.NewFromString(obj.Value())
		if err != nil {
			return decimal.Zero, object.TypeErrorf("type error: invalid decimal %q", obj.Value())
		}
		return d, nil
	default:
		return decimal.Zero, object.TypeErrorf("type error: expected a decimal (%s given)", obj.Type())
	}
}

// Decimal returns a random decimal as a string. With no arguments the value
// lies in [0, 1); with start, end it lies in [start, end). The optional third
// argument sets the number of fractional digits.
func (b *Builtins) Decimal(ctx context.Context, args ...object.Object) (object.Object, error) {
	switch len(args) {
	case 0:
		return object.NewString(b.rng.Decimal().String()), nil
	case 2, 3:
		start, err := asDecimal(args[0])
		if err != nil {
			return nil, err
		}
		end, err := asDecimal(args[1])
		if err != nil {
			return nil, err
		}
		places := int64(random.DecimalPlaces)
		if len(args) == 3 {
			if places, err = object.AsInt(args[2]); err != nil {
				return nil, err
			}
			if places < 0 || places > random.DecimalPlaces {
				return nil, valueError("decimal", &random.DomainError{
					Name:  "places",
					Value: places,
					Want:  fmt.Sprintf("[0, %d]", random.DecimalPlaces),
				})
			}
		}
		v, err := b.rng.DecimalRange(start, end, int32(places))
		if err != nil {
			return nil, valueError("decimal", err)
		}
		return object.NewString(v.String()), nil
	default:
		return nil, object.ArgsErrorf("rand.decimal: expected 0, 2 or 3 arguments, got %d", len(args))
	}
}

// Sample returns a random element of a list, or nil if the list is empty.
// With a second argument k it returns a list of k elements sampled without
// replacement, in random order.
func (b *Builtins) Sample(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("rand.sample", 1, 2, args); err != nil {
		return nil, err
	}
	ls, err := object.AsList(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		item, ok := random.SampleOne(b.rng, ls.Value())
		if !ok {
			return object.Nil, nil
		}
		return item, nil
	}
	k, err := object.AsInt(args[1])
	if err != nil {
		return nil, err
	}
	if n := int64(ls.Len()); k > n {
		k = n
	}
	return object.NewList(random.SampleMany(b.rng, ls.Value(), int(k))), nil
}

// Shuffle randomly reorders the elements of a list in place.
func (b *Builtins) Shuffle(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("rand.shuffle", 1, args); err != nil {
		return nil, err
	}
	ls, err := object.AsList(args[0])
	if err != nil {
		return nil, err
	}
	random.Shuffle(b.rng, ls.Value())
	return ls, nil
}

// Bytes returns a list of n random bytes (0-255).
func (b *Builtins) Bytes(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("rand.bytes", 1, args); err != nil {
		return nil, err
	}
	n, err := object.AsInt(args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, object.ValueErrorf("rand.bytes: n must be non-negative, got %d", n)
	}
	if n > math.MaxInt32 {
		return nil, object.ValueErrorf("rand.bytes: n too large, got %d", n)
	}
	buf := make([]byte, n)
	_, _ = b.rng.Read(buf)
	result := make([]object.Object, n)
	for i, v := range buf {
		result[i] = object.NewInt(int64(v))
	}
	return object.NewList(result), nil
}

// UUID returns a random version 4 UUID string.
func (b *Builtins) UUID(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("rand.uuid", 0, args); err != nil {
		return nil, err
	}
	return object.NewString(b.rng.UUID().String()), nil
}

// Module returns the rand module backed by random.Default().
func Module() *object.Module {
	return NewModule(nil)
}

// NewModule returns the rand module backed by r. A nil r uses
// random.Default().
func NewModule(r *random.Rand) *object.Module {
	b := New(r)
	return object.NewBuiltinsModule("rand", map[string]object.Object{
		"bool":        object.NewBuiltin("bool", b.Bool),
		"int":         object.NewBuiltin("int", b.Int),
		"randint":     object.NewBuiltin("randint", b.Randint),
		"float":       object.NewBuiltin("float", b.Float),
		"uniform":     object.NewBuiltin("uniform", b.Uniform),
		"normal":      object.NewBuiltin("normal", b.Normal),
		"exponential": object.NewBuiltin("exponential", b.Exponential),
		"decimal":     object.NewBuiltin("decimal", b.Decimal),
		"sample":      object.NewBuiltin("sample", b.Sample),
		"shuffle":     object.NewBuiltin("shuffle", b.Shuffle),
		"bytes":       object.NewBuiltin("bytes", b.Bytes),
		"uuid":        object.NewBuiltin("uuid", b.UUID),
	})
}
