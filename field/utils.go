package field

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"golang.org/x/crypto/sha3"
)

// Parse builds an element from decimal or 0x-prefixed hex literals. Both
// literals are limited to 256 bits; use New for wider moduli.
func Parse(num, prime string) (FieldElement, error) {
	n, ok := math.ParseBig256(num)
	if !ok {
		return FieldElement{}, fmt.Errorf("%w: num %q", ErrInvalidLiteral, num)
	}
	p, ok := math.ParseBig256(prime)
	if !ok {
		return FieldElement{}, fmt.Errorf("%w: prime %q", ErrInvalidLiteral, prime)
	}
	return New(n, p)
}

// MustParse is Parse for package-level constants; it panics on error.
func MustParse(num, prime string) FieldElement {
	e, err := Parse(num, prime)
	if err != nil {
		panic(err)
	}
	return e
}

// Random returns a uniformly distributed element of the field.
func Random(prime *big.Int) (FieldElement, error) {
	if prime == nil || prime.Cmp(big.NewInt(1)) <= 0 {
		return FieldElement{}, ErrModulus
	}
	n, err := rand.Int(rand.Reader, prime)
	if err != nil {
		return FieldElement{}, fmt.Errorf("failed to draw field element: %w", err)
	}
	return New(n, prime)
}

// Hash maps a message to a field element: SHA3-256(message) mod prime.
func Hash(prime *big.Int, message []byte) (FieldElement, error) {
	sha := sha3.New256()
	if _, err := sha.Write(message); err != nil {
		return FieldElement{}, err
	}
	return FromBig(new(big.Int).SetBytes(sha.Sum(nil)), prime)
}
