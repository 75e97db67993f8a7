package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils/sampling"
)

var testTypes = []Type{Cyclic, Negacyclic, Linear}

var testDegrees = []int{1, 2, 3, 4, 5, 7, 8, 16}

func testString(opname string, t Type, n int, q uint64) string {
	return fmt.Sprintf("%s/%s/N=%d/Q=%d", opname, t, n, q)
}

// testModulus returns the smallest prime above 2^logQ supporting the ring type t for n coefficients.
func testModulus(t *testing.T, logQ int, rt Type, n int) uint64 {
	q, err := NextNTTPrime(1<<logQ, rt.RootOrder(n))
	require.NoError(t, err)
	return q
}

// newTestSampler returns a deterministic UniformSampler keyed by label.
func newTestSampler(t *testing.T, label string, n int, q uint64) *UniformSampler {
	prng, err := sampling.NewKeyedPRNGFromLabel(label)
	require.NoError(t, err)
	return NewUniformSampler(prng, n, q)
}

// directConvolution returns the schoolbook product of a and b modulo q,
// with len(a)+len(b)-1 coefficients.
func directConvolution(a, b []uint64, q uint64) []uint64 {

	acc := make([]*big.Int, len(a)+len(b)-1)
	for i := range acc {
		acc[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for i := range a {
		for j := range b {
			tmp.SetUint64(a[i])
			tmp.Mul(tmp, new(big.Int).SetUint64(b[j]))
			acc[i+j].Add(acc[i+j], tmp)
		}
	}

	bigQ := new(big.Int).SetUint64(q)

	c := make([]uint64, len(acc))
	for i := range acc {
		c[i] = acc[i].Mod(acc[i], bigQ).Uint64()
	}

	return c
}

// foldProduct reduces the unreduced product c of two n-coefficient polynomials
// in the ring given by rt: c[i] + c[i+n] for Cyclic and c[i] - c[i+n] for Negacyclic.
func foldProduct(c []uint64, n int, q uint64, rt Type) []uint64 {

	if rt == Linear {
		return c
	}

	res := make([]uint64, n)
	copy(res, c[:n])

	for i := n; i < len(c); i++ {
		switch rt {
		case Cyclic:
			res[i-n] = (res[i-n] + c[i]) % q
		case Negacyclic:
			res[i-n] = (res[i-n] + q - c[i]) % q
		}
	}

	return res
}
