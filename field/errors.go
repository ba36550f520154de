package field

import "errors"

var (
	// ErrRange is returned when a residue or exponent falls outside its permitted range.
	ErrRange = errors.New("field: value out of range")
	// ErrModulus is returned when the modulus is not greater than one.
	ErrModulus = errors.New("field: modulus must be greater than 1")
	// ErrPrimeMismatch is returned when operands belong to different fields.
	ErrPrimeMismatch = errors.New("field: operands have different primes")
	// ErrDivisionByZero is returned when dividing by or inverting zero.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrInvalidLiteral is returned when a numeric literal cannot be parsed.
	ErrInvalidLiteral = errors.New("field: invalid numeric literal")
)
