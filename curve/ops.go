package curve

import (
	"fmt"
	"math/big"
)

// Neg returns the reflection of p in the x axis. Infinity is its own negation.
func Neg[T Element[T]](p Point[T]) (Point[T], error) {
	switch p := p.(type) {
	case Infinity[T]:
		return p, nil
	case Finite[T]:
		y, err := p.y.Neg()
		if err != nil {
			return nil, err
		}
		return New(p.x, y, p.a, p.b)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownPoint, p)
}

// Double returns p + p. Unlike Add, doubling the identity yields the identity.
func Double[T Element[T]](p Point[T]) (Point[T], error) {
	return sum(p, p)
}

// ScalarMul returns k·p by binary double-and-add. A negative k multiplies
// the negation of p; k = 0 yields the identity.
func ScalarMul[T Element[T]](p Point[T], k *big.Int) (Point[T], error) {
	if err := known(p); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, ErrInvalidScalar
	}
	current := p
	if k.Sign() < 0 {
		var err error
		if current, err = Neg(p); err != nil {
			return nil, err
		}
	}
	coef := new(big.Int).Abs(k)

	var result Point[T] = Inf(p.A(), p.B())
	for i := 0; i < coef.BitLen(); i++ {
		var err error
		if coef.Bit(i) == 1 {
			if result, err = sum(result, current); err != nil {
				return nil, err
			}
		}
		if i+1 < coef.BitLen() {
			if current, err = sum(current, current); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// sum is Add with the identity absorbed on both sides, so that repeated
// doubling may pass through infinity.
func sum[T Element[T]](p, q Point[T]) (Point[T], error) {
	if IsInfinity(p) && IsInfinity(q) {
		if !sameCurve(p, q) {
			return nil, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p, q)
		}
		return p, nil
	}
	return Add(p, q)
}
