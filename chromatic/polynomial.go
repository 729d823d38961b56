package chromatic

// Polynomial is a dense coefficient vector: Coef[i] multiplies x^i.
// Every arithmetic operation returns a normalized result with no
// trailing zero beyond the constant term.
type Polynomial struct {
	Coef []int64
}

// NewPolynomial builds a polynomial from low-to-high coefficients.
func NewPolynomial(coef ...int64) Polynomial {
	p := Polynomial{Coef: append([]int64(nil), coef...)}

	return p.normalize()
}

// monomial returns x^n.
func monomial(n int) Polynomial {
	coef := make([]int64, n+1)
	coef[n] = 1

	return Polynomial{Coef: coef}
}

// fallingFactorial returns x(x-1)...(x-n+1), the chromatic polynomial
// of the complete graph on n nodes.
func fallingFactorial(n int) Polynomial {
	p := Polynomial{Coef: []int64{1}}
	for i := 0; i < n; i++ {
		p = p.Mul(Polynomial{Coef: []int64{int64(-i), 1}})
	}

	return p
}

func (p Polynomial) normalize() Polynomial {
	n := len(p.Coef)
	for n > 1 && p.Coef[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{Coef: []int64{0}}
	}

	return Polynomial{Coef: p.Coef[:n]}
}

// Degree reports the highest power with a nonzero coefficient; the zero
// polynomial reports 0.
func (p Polynomial) Degree() int { return len(p.Coef) - 1 }

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	size := len(p.Coef)
	if len(q.Coef) > size {
		size = len(q.Coef)
	}
	coef := make([]int64, size)
	for i := range p.Coef {
		coef[i] += p.Coef[i]
	}
	for i := range q.Coef {
		coef[i] += q.Coef[i]
	}

	return Polynomial{Coef: coef}.normalize()
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	size := len(p.Coef)
	if len(q.Coef) > size {
		size = len(q.Coef)
	}
	coef := make([]int64, size)
	for i := range p.Coef {
		coef[i] += p.Coef[i]
	}
	for i := range q.Coef {
		coef[i] -= q.Coef[i]
	}

	return Polynomial{Coef: coef}.normalize()
}

// Mul returns the convolution p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	coef := make([]int64, len(p.Coef)+len(q.Coef)-1)
	for i, a := range p.Coef {
		if a == 0 {
			continue
		}
		for j, b := range q.Coef {
			coef[i+j] += a * b
		}
	}

	return Polynomial{Coef: coef}.normalize()
}

// Eval computes p(x) by Horner accumulation.
func (p Polynomial) Eval(x int64) int64 {
	var acc int64
	for i := len(p.Coef) - 1; i >= 0; i-- {
		acc = acc*x + p.Coef[i]
	}

	return acc
}

// Equal reports coefficient-wise equality of the normalized forms.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.normalize(), q.normalize()
	if len(a.Coef) != len(b.Coef) {
		return false
	}
	for i := range a.Coef {
		if a.Coef[i] != b.Coef[i] {
			return false
		}
	}

	return true
}
