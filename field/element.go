// Package field implements arithmetic on residues modulo a prime.
//
// A FieldElement is an immutable value: every operation returns a new
// element and never touches its operands. Operations between elements of
// different fields fail with ErrPrimeMismatch instead of producing a value.
package field

import (
	"fmt"
	"math/big"
)

// FieldElement is an integer residue num in [0, prime).
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// New creates the element num of the field of order prime. The residue must
// already be reduced: 0 <= num < prime.
func New(num, prime *big.Int) (FieldElement, error) {
	if num == nil || prime == nil {
		return FieldElement{}, fmt.Errorf("%w: nil operand", ErrRange)
	}
	if prime.Cmp(big.NewInt(1)) <= 0 {
		return FieldElement{}, fmt.Errorf("%w: got %s", ErrModulus, prime)
	}
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return FieldElement{}, fmt.Errorf("%w: num %s not in field range 0 to %s",
			ErrRange, num, new(big.Int).Sub(prime, big.NewInt(1)))
	}
	return FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewInt64 is New for small literals.
func NewInt64(num, prime int64) (FieldElement, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// FromBig reduces an arbitrary integer into the field.
func FromBig(k, prime *big.Int) (FieldElement, error) {
	if k == nil || prime == nil {
		return FieldElement{}, fmt.Errorf("%w: nil operand", ErrRange)
	}
	if prime.Cmp(big.NewInt(1)) <= 0 {
		return FieldElement{}, fmt.Errorf("%w: got %s", ErrModulus, prime)
	}
	return New(new(big.Int).Mod(k, prime), prime)
}

// FromInt reduces a native integer into the field.
func FromInt(k int64, prime *big.Int) (FieldElement, error) {
	return FromBig(big.NewInt(k), prime)
}

// Zero returns the additive identity of the field.
func Zero(prime *big.Int) (FieldElement, error) {
	return New(new(big.Int), prime)
}

// One returns the multiplicative identity of the field.
func One(prime *big.Int) (FieldElement, error) {
	return New(big.NewInt(1), prime)
}

// Num returns a copy of the residue.
func (e FieldElement) Num() *big.Int {
	if e.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the modulus.
func (e FieldElement) Prime() *big.Int {
	if e.prime == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether the residue is zero.
func (e FieldElement) IsZero() bool {
	return e.num == nil || e.num.Sign() == 0
}

// Equal reports whether both residue and prime match.
func (e FieldElement) Equal(o FieldElement) bool {
	return e.Num().Cmp(o.Num()) == 0 && e.Prime().Cmp(o.Prime()) == 0
}

// EqualInt compares only the residue with k; the prime is ignored.
func (e FieldElement) EqualInt(k int64) bool {
	return e.Num().Cmp(big.NewInt(k)) == 0
}

func (e FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.Prime(), e.Num())
}

func (e FieldElement) compatible(o FieldElement) error {
	if e.prime == nil || o.prime == nil {
		return fmt.Errorf("%w: uninitialized element", ErrPrimeMismatch)
	}
	if e.prime.Cmp(o.prime) != 0 {
		return fmt.Errorf("%w: %s and %s", ErrPrimeMismatch, e.prime, o.prime)
	}
	return nil
}

// Add returns e + o.
func (e FieldElement) Add(o FieldElement) (FieldElement, error) {
	if err := e.compatible(o); err != nil {
		return FieldElement{}, err
	}
	return New(bigIntAdd(e.prime, e.num, o.num), e.prime)
}

// Sub returns e - o.
func (e FieldElement) Sub(o FieldElement) (FieldElement, error) {
	if err := e.compatible(o); err != nil {
		return FieldElement{}, err
	}
	return New(bigIntSub(e.prime, e.num, o.num), e.prime)
}

// Mul returns e * o.
func (e FieldElement) Mul(o FieldElement) (FieldElement, error) {
	if err := e.compatible(o); err != nil {
		return FieldElement{}, err
	}
	return New(bigIntMul(e.prime, e.num, o.num), e.prime)
}

// Square returns e * e.
func (e FieldElement) Square() (FieldElement, error) {
	return e.Mul(e)
}

// Neg returns the additive inverse of e.
func (e FieldElement) Neg() (FieldElement, error) {
	if e.prime == nil {
		return FieldElement{}, fmt.Errorf("%w: uninitialized element", ErrPrimeMismatch)
	}
	return New(bigIntNeg(e.prime, e.num), e.prime)
}

// Inverse returns e^(prime-2), the multiplicative inverse when prime is prime.
func (e FieldElement) Inverse() (FieldElement, error) {
	if e.prime == nil {
		return FieldElement{}, fmt.Errorf("%w: uninitialized element", ErrPrimeMismatch)
	}
	if e.IsZero() {
		return FieldElement{}, ErrDivisionByZero
	}
	return New(getInvert(e.prime, e.num), e.prime)
}

// Div returns e * o^(prime-2).
func (e FieldElement) Div(o FieldElement) (FieldElement, error) {
	if err := e.compatible(o); err != nil {
		return FieldElement{}, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return FieldElement{}, err
	}
	return e.Mul(inv)
}

// Pow returns e^exponent. The exponent is not reduced.
func (e FieldElement) Pow(exponent uint64) (FieldElement, error) {
	return e.PowBig(new(big.Int).SetUint64(exponent))
}

// PowBig returns e^exponent for a non-negative exponent of any size.
func (e FieldElement) PowBig(exponent *big.Int) (FieldElement, error) {
	if e.prime == nil {
		return FieldElement{}, fmt.Errorf("%w: uninitialized element", ErrPrimeMismatch)
	}
	if exponent == nil || exponent.Sign() < 0 {
		return FieldElement{}, fmt.Errorf("%w: exponent must be non-negative", ErrRange)
	}
	return New(bigIntExp(e.prime, e.num, exponent), e.prime)
}
