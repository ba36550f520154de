// Package poly provides polynomials with field.FieldElement coefficients.
package poly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/izouxv/goEcc/field"
)

var (
	// ErrNoCoefficients is returned when a polynomial is built from nothing.
	ErrNoCoefficients = errors.New("poly: no coefficients")
	// ErrNoPoints is returned when interpolating an empty point set.
	ErrNoPoints = errors.New("poly: no points provided")
	// ErrDuplicateX is returned when two interpolation points share an abscissa.
	ErrDuplicateX = errors.New("poly: duplicate x coordinate")
)

// Polynomial is c[0] + c[1]·x + ... + c[n]·xⁿ over a prime field.
type Polynomial struct {
	coeffs []field.FieldElement
}

// Point is an evaluation (x, f(x)).
type Point struct {
	X field.FieldElement
	Y field.FieldElement
}

// New builds a polynomial from its coefficients, constant term first. All
// coefficients must belong to the same field.
func New(coeffs ...field.FieldElement) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	prime := coeffs[0].Prime()
	for i, c := range coeffs {
		if c.Prime().Cmp(prime) != 0 {
			return nil, fmt.Errorf("coefficient %d: %w", i, field.ErrPrimeMismatch)
		}
	}
	return &Polynomial{coeffs: append([]field.FieldElement(nil), coeffs...)}, nil
}

// Random creates a polynomial of the given degree whose constant term is
// constant and whose other coefficients are drawn uniformly.
func Random(constant field.FieldElement, degree int) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("invalid parameters: degree must be >= 0, got %d", degree)
	}
	coeffs := make([]field.FieldElement, degree+1)
	coeffs[0] = constant
	for i := 1; i <= degree; i++ {
		c, err := field.Random(constant.Prime())
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return New(coeffs...)
}

func (p *Polynomial) empty() bool {
	return p == nil || len(p.coeffs) == 0
}

// Degree returns the index of the highest coefficient, or -1 for a
// polynomial not built with New.
func (p *Polynomial) Degree() int {
	if p.empty() {
		return -1
	}
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *Polynomial) Coefficients() []field.FieldElement {
	if p.empty() {
		return nil
	}
	return append([]field.FieldElement(nil), p.coeffs...)
}

// Prime returns the order of the coefficient field, or zero for a
// polynomial not built with New.
func (p *Polynomial) Prime() *big.Int {
	if p.empty() {
		return new(big.Int)
	}
	return p.coeffs[0].Prime()
}

// Evaluate returns f(x) by Horner's rule. x must belong to the
// coefficient field.
func (p *Polynomial) Evaluate(x field.FieldElement) (field.FieldElement, error) {
	if p.empty() {
		return field.FieldElement{}, ErrNoCoefficients
	}
	if x.Prime().Cmp(p.Prime()) != 0 {
		return field.FieldElement{}, fmt.Errorf("evaluate at %s: %w", x, field.ErrPrimeMismatch)
	}
	y := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		var err error
		if y, err = y.Mul(x); err != nil {
			return field.FieldElement{}, err
		}
		if y, err = y.Add(p.coeffs[i]); err != nil {
			return field.FieldElement{}, err
		}
	}
	return y, nil
}

// EvaluateInt evaluates f at the integer k, reduced into the field.
func (p *Polynomial) EvaluateInt(k int64) (Point, error) {
	if p.empty() {
		return Point{}, ErrNoCoefficients
	}
	x, err := field.FromInt(k, p.Prime())
	if err != nil {
		return Point{}, err
	}
	y, err := p.Evaluate(x)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (p *Polynomial) String() string {
	if p.empty() {
		return ""
	}
	terms := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		terms[i] = fmt.Sprintf("%s·x^%d", c.Num(), i)
	}
	return strings.Join(terms, " + ")
}

// Interpolate evaluates at x the unique polynomial of degree < len(points)
// passing through points, using Lagrange's formula.
func Interpolate(points []Point, x field.FieldElement) (field.FieldElement, error) {
	if len(points) == 0 {
		return field.FieldElement{}, ErrNoPoints
	}

	result, err := field.Zero(x.Prime())
	if err != nil {
		return field.FieldElement{}, err
	}

	for i, pi := range points {
		// Lagrange basis l_i(x) = Π (x - x_j) / (x_i - x_j)
		num, err := field.One(x.Prime())
		if err != nil {
			return field.FieldElement{}, err
		}
		den := num

		for j, pj := range points {
			if i == j {
				continue
			}
			if pi.X.Equal(pj.X) {
				return field.FieldElement{}, fmt.Errorf("%w: %s", ErrDuplicateX, pi.X)
			}
			t, err := x.Sub(pj.X)
			if err != nil {
				return field.FieldElement{}, err
			}
			if num, err = num.Mul(t); err != nil {
				return field.FieldElement{}, err
			}
			if t, err = pi.X.Sub(pj.X); err != nil {
				return field.FieldElement{}, err
			}
			if den, err = den.Mul(t); err != nil {
				return field.FieldElement{}, err
			}
		}

		l, err := num.Div(den)
		if err != nil {
			return field.FieldElement{}, err
		}
		term, err := pi.Y.Mul(l)
		if err != nil {
			return field.FieldElement{}, err
		}
		if result, err = result.Add(term); err != nil {
			return field.FieldElement{}, err
		}
	}

	return result, nil
}
