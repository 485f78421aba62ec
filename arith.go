package poly

// Add returns p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	return p.combine(q, p.r.Add)
}

// Sub returns p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	return p.combine(q, p.r.Sub)
}

func (p *Polynomial[T]) combine(q *Polynomial[T], op func(a, b T) T) *Polynomial[T] {
	n := max(len(p.inner), len(q.inner))
	if n == 0 {
		return Zero(p.r)
	}

	c := NewOfDegree(p.r, n-1)
	for i := 0; i < n; i++ {
		c.Set(i, op(p.Get(i), q.Get(i)))
	}

	return c
}

// Scale returns p * s.
func (p *Polynomial[T]) Scale(s T) *Polynomial[T] {
	if len(p.inner) == 0 {
		return Zero(p.r)
	}

	c := NewOfDegree(p.r, len(p.inner)-1)
	for i, ci := range p.inner {
		c.Set(i, p.r.Mul(ci, s))
	}

	return c
}

// Eval returns p(x), accumulating c_i * x^i with a running power of x.
func (p *Polynomial[T]) Eval(x T) T {
	fld := p.r

	result := fld.Zero()
	power := fld.One()

	for _, ci := range p.inner {
		result = fld.Add(result, fld.Mul(ci, power))
		power = fld.Mul(power, x)
	}

	return result
}

// Derivative returns dp/dx. Constants and the zero polynomial map to zero.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.inner) <= 1 {
		return Zero(p.r)
	}

	c := NewOfDegree(p.r, len(p.inner)-2)
	for i := 1; i < len(p.inner); i++ {
		c.Set(i-1, p.r.Mul(p.inner[i], p.r.FromInt(i)))
	}

	return c
}
