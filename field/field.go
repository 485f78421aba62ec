package field

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is the ring of integers modulo a prime, with uint64 elements.
// Elements are kept reduced; inputs that are not are reduced on the way in.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	ErrNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

/*
NewPrimeField returns the field Z/pZ. The order is checked for primality
and a primitive root is precomputed.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// ProbablyPrime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, prime)
	}

	f := &PrimeField{prime: prime}

	// ring.PrimitiveRoot does not handle the two smallest primes.
	switch prime {
	case 2:
		f.generator = 1
	case 3:
		f.generator, f.factors = 2, []uint64{2}
	default:
		g, factors, err := ring.PrimitiveRoot(prime, nil)
		if err != nil {
			return nil, err
		}

		f.generator, f.factors = f.Reduce(g), factors
	}

	if !f.isGenerator(f.generator) {
		return nil, fmt.Errorf("%w: %d mod %d", errNoGenerator, f.generator, prime)
	}

	return f, nil
}

var errNoGenerator = errors.New("primitive root search returned a non-generator")

// isGenerator reports whether g has order p-1, i.e. g^((p-1)/q) != 1 for
// every prime q dividing p-1.
func (f *PrimeField) isGenerator(g uint64) bool {
	if f.IsZero(g) {
		return false
	}

	for _, q := range f.factors {
		if f.Pow(g, (f.prime-1)/q) == 1 {
			return false
		}
	}

	return true
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns a primitive root of the multiplicative group.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	out := make([]uint64, len(f.factors))
	copy(out, f.factors)

	return out
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 % f.prime }

// FromInt maps n to its residue, negative values included.
func (f *PrimeField) FromInt(n int) uint64 {
	if n >= 0 {
		return uint64(n) % f.prime
	}

	return f.Neg(uint64(-(n+1))%f.prime + 1)
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(f.Reduce(a), f.Reduce(b), f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime
	base = f.Reduce(base)

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) uint64 {
	// Fermat's little theorem: a^(p-1) = 1 (mod p), so a^(p-2) is the inverse of a.
	e = f.Reduce(e)
	if e == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e = f.Reduce(e)
	if e == 0 {
		return 0
	}

	return f.prime - e
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}

func (f *PrimeField) IsZero(a uint64) bool {
	return a%f.prime == 0
}

// Parse reads a decimal integer, negative values included, and reduces it.
func (f *PrimeField) Parse(s string) (uint64, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return f.Reduce(u), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	// n < 0 here, ParseUint took every non-negative value.
	return f.Neg(uint64(-(n+1))%f.prime + 1), nil
}
