package ring

import (
	"math/big"
	"math/bits"

	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils/factorization"
)

// MaxModulusBits is the maximum bit-size of a modulus supported by the
// Barrett reduction used in this package.
const MaxModulusBits = 61

// trialDivisionLimit is the bound below which IsPrime uses trial division.
const trialDivisionLimit = 1 << 32

// IsPrime returns true if x is prime, and false for x <= 1.
// Values below 2^32 are tested by trial division up to sqrt(x).
// Larger values use the Baillie-PSW test, which is exact for numbers below 2^64.
func IsPrime(x uint64) bool {

	if x < 2 {
		return false
	}

	if x >= trialDivisionLimit {
		return factorization.IsPrime(new(big.Int).SetUint64(x))
	}

	for i := uint64(2); i <= x/i; i++ {
		if x%i == 0 {
			return false
		}
	}

	return true
}

// NextNTTPrime returns the smallest prime p > q such that p = 1 mod order.
func NextNTTPrime(q, order uint64) (p uint64, err error) {

	if order == 0 {
		return 0, newPreconditionError("NextNTTPrime", "order must be positive")
	}

	p = q + 1

	if r := (p - 1) % order; r != 0 {
		p += order - r
	}

	for !IsPrime(p) {

		p += order

		if bits.Len64(p) > MaxModulusBits {
			return 0, newPreconditionError("NextNTTPrime", "next prime = 1 mod %d exceeds the maximum bit-size of %d bits", order, MaxModulusBits)
		}
	}

	if bits.Len64(p) > MaxModulusBits {
		return 0, newPreconditionError("NextNTTPrime", "next prime = 1 mod %d exceeds the maximum bit-size of %d bits", order, MaxModulusBits)
	}

	return
}

// PreviousNTTPrime returns the largest prime p < q such that p = 1 mod order.
func PreviousNTTPrime(q, order uint64) (p uint64, err error) {

	if order == 0 {
		return 0, newPreconditionError("PreviousNTTPrime", "order must be positive")
	}

	if q <= order+1 {
		return 0, newPreconditionError("PreviousNTTPrime", "no prime = 1 mod %d below %d", order, q)
	}

	p = q - 1

	p -= (p - 1) % order

	for !IsPrime(p) {

		if p <= order+1 {
			return 0, newPreconditionError("PreviousNTTPrime", "no prime = 1 mod %d below %d", order, q)
		}

		p -= order
	}

	return
}

// GenerateNTTPrimes generates count distinct primes equal to 1 mod order,
// starting from 2^logQ and alternating between upward and downward.
func GenerateNTTPrimes(logQ int, order uint64, count int) (primes []uint64, err error) {

	if logQ < 1 || logQ > MaxModulusBits {
		return nil, newPreconditionError("GenerateNTTPrimes", "logQ must be between 1 and %d", MaxModulusBits)
	}

	primes = []uint64{}

	var next, previous uint64 = 1 << logQ, 1 << logQ

	checkNext, checkPrevious := true, true

	for len(primes) < count {

		if !(checkNext || checkPrevious) {
			return nil, newPreconditionError("GenerateNTTPrimes", "cannot generate %d primes = 1 mod %d around 2^%d", count, order, logQ)
		}

		if checkNext {
			if next, err = NextNTTPrime(next, order); err != nil {
				checkNext = false
			} else {
				primes = append(primes, next)
			}
		}

		if checkPrevious && len(primes) < count {
			if previous, err = PreviousNTTPrime(previous, order); err != nil {
				checkPrevious = false
			} else {
				primes = append(primes, previous)
			}
		}
	}

	return primes, nil
}
