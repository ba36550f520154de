// Package curve implements points of short Weierstrass curves
// y² = x³ + ax + b and the elliptic-curve group law.
//
// The law is written once against the Element interface, so the same code
// adds points with plain Int coordinates and with field.FieldElement
// coordinates. A Point is either Finite or Infinity; both are immutable.
package curve

import "fmt"

// Point is a curve point: exactly one of Finite[T] or Infinity[T].
type Point[T Element[T]] interface {
	// A returns the linear coefficient of the curve.
	A() T
	// B returns the constant coefficient of the curve.
	B() T
	Equal(Point[T]) bool
	String() string

	point()
}

// Finite is an affine point (x, y) on the curve (a, b).
type Finite[T Element[T]] struct {
	x, y, a, b T
}

// Infinity is the identity of the group on the curve (a, b).
type Infinity[T Element[T]] struct {
	a, b T
}

// New returns the point (x, y) after checking that it lies on y² = x³ + ax + b.
func New[T Element[T]](x, y, a, b T) (Point[T], error) {
	ok, err := onCurve(x, y, a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: (%s, %s) on a=%s b=%s", ErrNotOnCurve, x, y, a, b)
	}
	return Finite[T]{x: x, y: y, a: a, b: b}, nil
}

// Inf returns the point at infinity of the curve (a, b).
func Inf[T Element[T]](a, b T) Point[T] {
	return Infinity[T]{a: a, b: b}
}

// IsInfinity reports whether p is the point at infinity.
func IsInfinity[T Element[T]](p Point[T]) bool {
	_, ok := p.(Infinity[T])
	return ok
}

// onCurve evaluates y² == x³ + ax + b using T's own arithmetic.
func onCurve[T Element[T]](x, y, a, b T) (bool, error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	rhs, err := x.Mul(x)
	if err != nil {
		return false, err
	}
	rhs, err = rhs.Add(a) // x² + a
	if err != nil {
		return false, err
	}
	rhs, err = rhs.Mul(x) // x³ + ax
	if err != nil {
		return false, err
	}
	rhs, err = rhs.Add(b) // x³ + ax + b
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

func (p Finite[T]) X() T { return p.x }
func (p Finite[T]) Y() T { return p.y }
func (p Finite[T]) A() T { return p.a }
func (p Finite[T]) B() T { return p.b }

func (p Finite[T]) Equal(o Point[T]) bool {
	q, ok := o.(Finite[T])
	return ok && p.x.Equal(q.x) && p.y.Equal(q.y) && p.a.Equal(q.a) && p.b.Equal(q.b)
}

func (p Finite[T]) String() string {
	return fmt.Sprintf("Point(%s, %s)_%s_%s", p.x, p.y, p.a, p.b)
}

func (Finite[T]) point() {}

func (p Infinity[T]) A() T { return p.a }
func (p Infinity[T]) B() T { return p.b }

func (p Infinity[T]) Equal(o Point[T]) bool {
	q, ok := o.(Infinity[T])
	return ok && p.a.Equal(q.a) && p.b.Equal(q.b)
}

func (Infinity[T]) String() string { return "Point(infinity)" }

func (Infinity[T]) point() {}

// sameCurve reports whether p and q share a and b.
func sameCurve[T Element[T]](p, q Point[T]) bool {
	return p.A().Equal(q.A()) && p.B().Equal(q.B())
}
