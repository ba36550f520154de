package curve

import (
	"fmt"
	"math"
	"strconv"

	"github.com/izouxv/goEcc/field"
)

// Element is the arithmetic a coordinate type must provide for the
// addition law. Every operation returns a new value.
type Element[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	// MulInt returns k times the element.
	MulInt(k int64) (T, error)
	Neg() (T, error)
	Equal(T) bool
	IsZero() bool
	fmt.Stringer
}

var (
	_ Element[Int]                = Int(0)
	_ Element[field.FieldElement] = field.FieldElement{}
)

// Int is a plain signed integer coordinate, for curves over the rationals
// with small integer points. Division must be exact: a remainder fails with
// ErrInexact, so a rational slope never reaches the group law as a truncated
// integer.
type Int int64

func (i Int) Add(o Int) (Int, error) {
	s := i + o
	if (o > 0 && s < i) || (o < 0 && s > i) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, i, o)
	}
	return s, nil
}

func (i Int) Sub(o Int) (Int, error) {
	d := i - o
	if (o > 0 && d > i) || (o < 0 && d < i) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, i, o)
	}
	return d, nil
}

func (i Int) Mul(o Int) (Int, error) {
	if i == 0 || o == 0 {
		return 0, nil
	}
	p := i * o
	if (i == -1 && o == math.MinInt64) || (o == -1 && i == math.MinInt64) || p/o != i {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, i, o)
	}
	return p, nil
}

func (i Int) Div(o Int) (Int, error) {
	if o == 0 {
		return 0, ErrDivisionByZero
	}
	if i == math.MinInt64 && o == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, i, o)
	}
	if i%o != 0 {
		return 0, fmt.Errorf("%w: %d / %d", ErrInexact, i, o)
	}
	return i / o, nil
}

func (i Int) MulInt(k int64) (Int, error) {
	return i.Mul(Int(k))
}

func (i Int) Neg() (Int, error) {
	if i == math.MinInt64 {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, i)
	}
	return -i, nil
}

func (i Int) Equal(o Int) bool { return i == o }

func (i Int) IsZero() bool { return i == 0 }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
