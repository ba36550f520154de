package curve

import (
	"errors"

	"github.com/izouxv/goEcc/field"
)

var (
	// ErrNotOnCurve is returned when coordinates do not satisfy y² = x³ + ax + b.
	ErrNotOnCurve = errors.New("curve: point is not on curve")
	// ErrCurveMismatch is returned when adding points of different curves.
	ErrCurveMismatch = errors.New("curve: points are on different curves")
	// ErrInfinitySum is returned when both addends are the point at infinity.
	ErrInfinitySum = errors.New("curve: cannot add two points at infinity")
	// ErrUnknownPoint is returned for a nil point or a variant this package did not create.
	ErrUnknownPoint = errors.New("curve: unknown point variant")
	// ErrInvalidScalar is returned for a nil scalar multiplier.
	ErrInvalidScalar = errors.New("curve: invalid scalar")
	// ErrInexact is returned when an Int division leaves a remainder.
	ErrInexact = errors.New("curve: inexact integer division")
	// ErrOverflow is returned when Int arithmetic leaves the int64 range.
	ErrOverflow = errors.New("curve: integer overflow")
	// ErrDivisionByZero is shared with the field package so errors.Is works
	// for either coordinate type.
	ErrDivisionByZero = field.ErrDivisionByZero
)
