// Package factorization implements the integer factorization used to
// search for generators of the multiplicative group of a prime field.
package factorization

import (
	"math/big"

	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils"
)

// trialDivisionBound is the largest divisor tested by trial division
// before falling back to Pollard's rho.
const trialDivisionBound = 1 << 16

// IsPrime applies the Baillie-PSW, which is 100% accurate for numbers below 2^64.
func IsPrime(m *big.Int) bool {
	return m.ProbablyPrime(0)
}

// GetFactors returns all the prime factors of m.
// There can be duplicates.
func GetFactors(m *big.Int) (factors []*big.Int) {

	m = new(big.Int).Set(m)

	if m.Cmp(big.NewInt(1)) <= 0 {
		return
	}

	// Small factors
	p := new(big.Int)
	r := new(big.Int)
	for i := int64(2); i < trialDivisionBound; i++ {

		p.SetInt64(i)

		if new(big.Int).Mul(p, p).Cmp(m) > 0 {
			break
		}

		for {
			q, rem := new(big.Int).QuoRem(m, p, r)
			if rem.Sign() != 0 {
				break
			}
			factors = append(factors, new(big.Int).Set(p))
			m = q
		}
	}

	// Large factors
	stack := []*big.Int{m}

	for len(stack) != 0 {

		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if x.Cmp(big.NewInt(1)) == 0 {
			continue
		}

		if IsPrime(x) {
			factors = append(factors, x)
			continue
		}

		d := GetFactorPollardRho(x)
		stack = append(stack, d, new(big.Int).Quo(x, d))
	}

	return
}

// GetFactorsUint64 returns the sorted unique prime factors of m.
func GetFactorsUint64(m uint64) (factors []uint64) {

	factorsBig := GetFactors(new(big.Int).SetUint64(m))

	factors = make([]uint64, len(factorsBig))
	for i := range factors {
		factors[i] = factorsBig[i].Uint64()
	}

	return utils.GetSortedDistincts(factors)
}

// GetFactorPollardRho returns a non-trivial factor of the composite m
// using Pollard's rho with the polynomial x^2 + c.
// The constant c is incremented until a proper factor is found.
func GetFactorPollardRho(m *big.Int) (d *big.Int) {

	if m.Bit(0) == 0 {
		return big.NewInt(2)
	}

	one := big.NewInt(1)
	tmp := new(big.Int)

	for c := int64(1); ; c++ {

		cBig := big.NewInt(c)

		f := func(x *big.Int) {
			x.Mul(x, x)
			x.Add(x, cBig)
			x.Mod(x, m)
		}

		x, y := big.NewInt(2), big.NewInt(2)
		d = big.NewInt(1)

		for d.Cmp(one) == 0 {
			f(x)
			f(y)
			f(y)
			tmp.Sub(x, y)
			tmp.Abs(tmp)
			d.GCD(nil, nil, tmp, m)
		}

		if d.Cmp(m) != 0 {
			return
		}
	}
}
