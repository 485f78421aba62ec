// Package poly implements dense univariate polynomials over a generic
// coefficient ring.
package poly

import (
	"github.com/jonathanmweiss/go-poly/field"
	"golang.org/x/exp/constraints"
)

/*
Polynomial holds its coefficients ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2).

The slice never ends with a zero coefficient; the zero polynomial is the
empty slice. Every operation other than Set returns a fresh value and leaves
its operands untouched.
*/
type Polynomial[T any] struct {
	r     field.Ring[T]
	inner []T
}

// New copies coeffs into a new polynomial over r, reducing each one.
func New[T any](r field.Ring[T], coeffs []T) *Polynomial[T] {
	inner := make([]T, len(coeffs))
	for i, c := range coeffs {
		inner[i] = r.Reduce(c)
	}

	p := &Polynomial[T]{r: r, inner: inner}
	p.removeTrailingZeros()

	return p
}

// NewOfDegree returns a polynomial sized for degree n with all coefficients
// zero. Normalized, n+1 zeros are the empty slice, so this is the zero
// polynomial for every n; a negative n (degree -1) gives the same result.
// Set grows the storage on demand.
func NewOfDegree[T any](r field.Ring[T], n int) *Polynomial[T] {
	return Zero(r)
}

// Zero returns the zero polynomial over r.
func Zero[T any](r field.Ring[T]) *Polynomial[T] {
	return &Polynomial[T]{r: r}
}

// NewNumeric builds a polynomial over Go's native integer or float arithmetic.
func NewNumeric[T field.Real](coeffs ...T) *Polynomial[T] {
	return New[T](field.Numbers[T]{}, coeffs)
}

// NewComplex builds a polynomial with native complex coefficients.
func NewComplex[T constraints.Complex](coeffs ...T) *Polynomial[T] {
	return New[T](field.Complexes[T]{}, coeffs)
}

// Ring returns the coefficient ring p was built over.
func (p *Polynomial[T]) Ring() field.Ring[T] {
	return p.r
}

// Len is the number of stored coefficients, Degree()+1.
func (p *Polynomial[T]) Len() int {
	return len(p.inner)
}

// Degree returns -1 for the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	return len(p.inner) - 1
}

func (p *Polynomial[T]) IsZero() bool {
	return len(p.inner) == 0
}

func (p *Polynomial[T]) LeadCoeff() T {
	if len(p.inner) == 0 {
		return p.r.Zero()
	}

	return p.inner[len(p.inner)-1]
}

// Get returns the coefficient of x^i. Indices outside the stored range read as zero.
func (p *Polynomial[T]) Get(i int) T {
	if i < 0 || i >= len(p.inner) {
		return p.r.Zero()
	}

	return p.inner[i]
}

// Set writes the coefficient of x^i, growing or shrinking the storage as
// needed. Negative indices are ignored.
func (p *Polynomial[T]) Set(i int, v T) {
	if i < 0 {
		return
	}

	p.expand(i)
	p.inner[i] = p.r.Reduce(v)
	p.removeTrailingZeros()
}

// Equals compares coefficients with the ring's equality. A nil q is
// treated as the zero polynomial.
func (p *Polynomial[T]) Equals(q *Polynomial[T]) bool {
	if q == nil {
		return len(p.inner) == 0
	}

	if len(p.inner) != len(q.inner) {
		return false
	}

	for i := range p.inner {
		if !p.r.Equals(p.inner[i], q.inner[i]) {
			return false
		}
	}

	return true
}

// Copy returns a deep copy of p.
func (p *Polynomial[T]) Copy() *Polynomial[T] {
	innercopy := make([]T, len(p.inner))
	copy(innercopy, p.inner)

	return &Polynomial[T]{r: p.r, inner: innercopy}
}

// Coeffs returns a copy of the stored coefficients.
func (p *Polynomial[T]) Coeffs() []T {
	list := make([]T, len(p.inner))
	copy(list, p.inner)

	return list
}

// expand grows the storage with zeros so that index i is addressable.
// It does not normalize.
func (p *Polynomial[T]) expand(i int) {
	if i < len(p.inner) {
		return
	}

	zero := p.r.Zero()
	for len(p.inner) <= i {
		p.inner = append(p.inner, zero)
	}
}

func (p *Polynomial[T]) removeTrailingZeros() {
	i := len(p.inner) - 1
	for i >= 0 && p.r.IsZero(p.inner[i]) {
		i--
	}

	p.inner = p.inner[:i+1]
}
