package signing

import (
	"math/big"

	"github.com/tss-gg18/signer/common"
)

// lagrangeCoefficient computes lambda_i for quorum member id within the
// quorum ids, evaluated at x=0: the factor by which the secret share of
// party id must be scaled so that the sum of all scaled shares in the
// quorum reconstructs the group secret. Grounded on the same accumulator
// used by crypto/vss/feldman_vss.go's Shares.ReConstruct, specialized to a
// single party rather than summing the whole secret.
func lagrangeCoefficient(q *big.Int, id *big.Int, ids []*big.Int) *big.Int {
	modQ := common.ModInt(q)
	coeff := big.NewInt(1)
	for _, xj := range ids {
		if xj.Cmp(id) == 0 {
			continue
		}
		sub := modQ.Sub(xj, id)
		subInv := modQ.ModInverse(sub)
		div := modQ.Mul(xj, subInv)
		coeff = modQ.Mul(coeff, div)
	}
	return coeff
}
