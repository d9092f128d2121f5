package fermat

import (
	"fmt"
	"math/big"
)

// CongruenceHolds checks whether a^p = a (mod p),
// equivalently (a^p - a) mod p == 0.
//
// If the congruence fails, a is a composite witness for p:
// p is proven composite.
// If it holds, p may be prime, or a may be a fermat liar.
//
// Intermediate values are arbitrary-precision. Exponentiation is
// performed modulo p, which is equivalent to computing a^p exactly
// and reducing afterwards.
//
// Panics if p < 3 or a is outside [2, p-1];
// such inputs indicate a defect in the caller's sampling logic.
func CongruenceHolds(p, a uint64) bool {
	if p < 3 {
		panic(fmt.Sprintf("candidate %d out of range: must be at least 3", p))
	}
	if a < 2 || a > p-1 {
		panic(fmt.Sprintf("witness %d out of range [2, %d]", a, p-1))
	}

	pBig := new(big.Int).SetUint64(p)
	aBig := new(big.Int).SetUint64(a)

	e := new(big.Int).Exp(aBig, pBig, pBig)
	e.Sub(e, aBig)
	e.Mod(e, pBig)

	return e.Sign() == 0
}
