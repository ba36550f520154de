package curve

import "fmt"

// Curve holds the coefficients of y² = x³ + ax + b.
type Curve[T Element[T]] struct {
	a, b T
}

// NewCurve returns the curve with coefficients a and b.
func NewCurve[T Element[T]](a, b T) Curve[T] {
	return Curve[T]{a: a, b: b}
}

func (c Curve[T]) A() T { return c.a }
func (c Curve[T]) B() T { return c.b }

// Point returns the point (x, y) of c, see New.
func (c Curve[T]) Point(x, y T) (Point[T], error) {
	return New(x, y, c.a, c.b)
}

// Infinity returns the identity of c.
func (c Curve[T]) Infinity() Point[T] {
	return Inf(c.a, c.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c Curve[T]) Contains(x, y T) (bool, error) {
	return onCurve(x, y, c.a, c.b)
}

// Owns reports whether p was built on c.
func (c Curve[T]) Owns(p Point[T]) bool {
	return known(p) == nil && p.A().Equal(c.a) && p.B().Equal(c.b)
}

// Singular reports whether the discriminant term 4a³ + 27b² is zero, in
// which case the curve has a cusp or node and the group law does not hold.
func (c Curve[T]) Singular() (bool, error) {
	a3, err := c.a.Mul(c.a)
	if err != nil {
		return false, err
	}
	if a3, err = a3.Mul(c.a); err != nil {
		return false, err
	}
	if a3, err = a3.MulInt(4); err != nil {
		return false, err
	}
	b2, err := c.b.Mul(c.b)
	if err != nil {
		return false, err
	}
	if b2, err = b2.MulInt(27); err != nil {
		return false, err
	}
	d, err := a3.Add(b2)
	if err != nil {
		return false, err
	}
	return d.IsZero(), nil
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("Curve(y^2 = x^3 + %s*x + %s)", c.a, c.b)
}
