package field

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
Ring is the set of operations a polynomial needs from its coefficients:
additive and multiplicative identities, +, -, *, comparison and a way to
embed small integers (used for the power multiplier of a derivative).

Implementations are stateless or immutable, and safe to share.
*/
type Ring[T any] interface {
	Zero() T
	One() T
	FromInt(n int) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	Equals(a, b T) bool
	IsZero(a T) bool

	// Reduce maps a value to its canonical representative.
	Reduce(a T) T
}

// ErrParse is returned when a token cannot be read as a ring element.
var ErrParse = errors.New("malformed coefficient")

// Real is the set of native types whose built-in operators form the ring.
type Real interface {
	constraints.Integer | constraints.Float
}

// Numbers is the ring given by Go's own arithmetic on integer and floating
// point types. Integer overflow wraps and floats round, as the language does.
type Numbers[T Real] struct{}

func (Numbers[T]) Zero() T         { return 0 }
func (Numbers[T]) One() T          { return 1 }
func (Numbers[T]) FromInt(n int) T { return T(n) }
func (Numbers[T]) Add(a, b T) T    { return a + b }
func (Numbers[T]) Sub(a, b T) T    { return a - b }
func (Numbers[T]) Mul(a, b T) T    { return a * b }

func (Numbers[T]) Equals(a, b T) bool { return a == b }
func (Numbers[T]) IsZero(a T) bool    { return a == 0 }
func (Numbers[T]) Reduce(a T) T       { return a }

// Parse reads a single token in Go's fmt scanning syntax for T.
func (Numbers[T]) Parse(s string) (T, error) {
	return scanToken[T](s)
}

// Complexes is the ring of native complex numbers.
type Complexes[T constraints.Complex] struct{}

func (Complexes[T]) Zero() T { return 0 }
func (Complexes[T]) One() T  { return 1 }

func (Complexes[T]) FromInt(n int) T {
	return T(complex(float64(n), 0))
}

func (Complexes[T]) Add(a, b T) T { return a + b }
func (Complexes[T]) Sub(a, b T) T { return a - b }
func (Complexes[T]) Mul(a, b T) T { return a * b }

func (Complexes[T]) Equals(a, b T) bool { return a == b }
func (Complexes[T]) IsZero(a T) bool    { return a == 0 }
func (Complexes[T]) Reduce(a T) T       { return a }

// Parse accepts the fmt complex syntax, e.g. "(1+2i)", as well as a plain real.
func (Complexes[T]) Parse(s string) (T, error) {
	if v, err := scanToken[T](s); err == nil {
		return v, nil
	}

	re, err := scanToken[float64](s)
	if err != nil {
		return 0, err
	}

	return T(complex(re, 0)), nil
}

// scanToken reads exactly one value; anything left after it is an error.
func scanToken[T any](s string) (T, error) {
	var v T

	rd := strings.NewReader(strings.TrimSpace(s))
	if _, err := fmt.Fscan(rd, &v); err != nil || rd.Len() != 0 {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}
