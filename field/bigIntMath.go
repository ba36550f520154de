package field

import "math/big"

// Residue helpers. big.Int.Mod is Euclidean, so every result lies in [0, p).

func bigIntAdd(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, p)
	return
}

func bigIntSub(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int)
	res.Sub(a, b)
	res.Mod(res, p)
	return
}

func bigIntMul(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, p)
	return
}

func bigIntNeg(p, a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, p)
	return
}

func bigIntExp(p, a, e *big.Int) (res *big.Int) {
	res = new(big.Int).Exp(a, e, p)
	return
}

// getInvert uses Fermat's little theorem, a^(p-2) mod p. The result is only
// meaningful when p is prime and a is not zero.
func getInvert(p, a *big.Int) (res *big.Int) {
	e := new(big.Int).Sub(p, big.NewInt(2))
	res = bigIntExp(p, a, e)
	return
}
