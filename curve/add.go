package curve

import "fmt"

// Add returns p + q under the elliptic-curve group law.
//
// The cases are checked in order: an infinity operand is absorbed, a
// vertical line through P and -P gives infinity, distinct x coordinates use
// the chord slope, and P + P uses the tangent slope (infinity when y = 0).
// Adding two points at infinity is rejected with ErrInfinitySum.
func Add[T Element[T]](p, q Point[T]) (Point[T], error) {
	if err := known(p); err != nil {
		return nil, err
	}
	if err := known(q); err != nil {
		return nil, err
	}
	if !sameCurve(p, q) {
		return nil, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p, q)
	}

	switch p := p.(type) {
	case Infinity[T]:
		if _, ok := q.(Infinity[T]); ok {
			return nil, ErrInfinitySum
		}
		return q, nil
	case Finite[T]:
		switch q := q.(type) {
		case Infinity[T]:
			return p, nil
		case Finite[T]:
			return addFinite(p, q)
		}
	}
	return nil, ErrUnknownPoint
}

func known[T Element[T]](p Point[T]) error {
	switch p.(type) {
	case Finite[T], Infinity[T]:
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnknownPoint, p)
}

func addFinite[T Element[T]](p, q Finite[T]) (Point[T], error) {
	switch {
	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		return Inf(p.a, p.b), nil
	case !p.x.Equal(q.x):
		s, err := chordSlope(p, q)
		if err != nil {
			return nil, err
		}
		return third(p, q, s)
	default:
		if p.y.IsZero() {
			return Inf(p.a, p.b), nil
		}
		s, err := tangentSlope(p)
		if err != nil {
			return nil, err
		}
		return third(p, p, s)
	}
}

// chordSlope returns (y2 - y1) / (x2 - x1).
func chordSlope[T Element[T]](p, q Finite[T]) (s T, err error) {
	dy, err := q.y.Sub(p.y)
	if err != nil {
		return
	}
	dx, err := q.x.Sub(p.x)
	if err != nil {
		return
	}
	return dy.Div(dx)
}

// tangentSlope returns (3·x² + a) / (2·y).
func tangentSlope[T Element[T]](p Finite[T]) (s T, err error) {
	num, err := p.x.Mul(p.x)
	if err != nil {
		return
	}
	if num, err = num.MulInt(3); err != nil {
		return
	}
	if num, err = num.Add(p.a); err != nil {
		return
	}
	den, err := p.y.MulInt(2)
	if err != nil {
		return
	}
	return num.Div(den)
}

// third computes x3 = s² - x1 - x2 and y3 = s·(x1 - x3) - y1. The result
// is rebuilt through New so it is checked against the curve.
func third[T Element[T]](p, q Finite[T], s T) (Point[T], error) {
	x3, err := s.Mul(s)
	if err != nil {
		return nil, err
	}
	if x3, err = x3.Sub(p.x); err != nil {
		return nil, err
	}
	if x3, err = x3.Sub(q.x); err != nil {
		return nil, err
	}
	y3, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	if y3, err = s.Mul(y3); err != nil {
		return nil, err
	}
	if y3, err = y3.Sub(p.y); err != nil {
		return nil, err
	}
	return New(x3, y3, p.a, p.b)
}
