package ring

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils/factorization"
)

// PrimitiveRoot returns the smallest generator g of Z_q^* in [2, q) for the given prime q
// (1 for q = 2), so the result is the same on every call.
// The unique factors of q-1 can be given to speed up the search for the root.
// Candidates are scanned in increasing order and the search fails with a
// *NoSuchRootError if none of them generates the group.
func PrimitiveRoot(q uint64, factors []uint64) (uint64, []uint64, error) {

	if q < 2 {
		return 0, factors, &NoSuchRootError{Order: 0, Modulus: q, Reason: "modulus must be greater than 1"}
	}

	if factors != nil {
		if err := CheckFactors(q-1, factors); err != nil {
			return 0, factors, err
		}
	} else {
		factors = factorization.GetFactorsUint64(q - 1) //Factor q-1, might be slow
	}

	// Z_2^* is the trivial group
	if q == 2 {
		return 1, factors, nil
	}

	for g := uint64(2); g < q; g++ {

		isGenerator := true

		for _, factor := range factors {
			// if for any factor of q-1, g^(q-1)/factor = 1 mod q, g is not a primitive root
			if ModExp(g, (q-1)/factor, q) == 1 {
				isGenerator = false
				break
			}
		}

		if isGenerator {
			return g, factors, nil
		}
	}

	return 0, factors, &NoSuchRootError{Order: q - 1, Modulus: q, Reason: "no generator found in [2, q)"}
}

// CheckFactors checks that the given list of factors contains
// all the unique primes of m.
func CheckFactors(m uint64, factors []uint64) (err error) {

	for _, factor := range factors {

		if !IsPrime(factor) {
			return fmt.Errorf("composite factor %d", factor)
		}

		for m%factor == 0 {
			m /= factor
		}
	}

	if m != 1 {
		return fmt.Errorf("incomplete factor list")
	}

	return
}

// CheckPrimitiveRoot checks that g is a valid primitive root mod q,
// given the factors of q-1.
func CheckPrimitiveRoot(g, q uint64, factors []uint64) (err error) {

	if err = CheckFactors(q-1, factors); err != nil {
		return
	}

	for _, factor := range factors {
		if ModExp(g, (q-1)/factor, q) == 1 {
			return fmt.Errorf("invalid primitive root")
		}
	}

	return
}

// PrimitiveRootOfUnity returns an element r of Z_q with exact multiplicative order `order`,
// i.e. r^order = 1 mod q and r^k != 1 mod q for all 0 < k < order.
//
// The root is derived from the smallest generator g of Z_q^* as g^((q-1)/order) and
// is therefore deterministic for a given (order, q).
// A *NoSuchRootError is returned if q is not prime, if order does not divide q-1,
// or if the derived element fails the order verification.
func PrimitiveRootOfUnity(order, q uint64) (root uint64, err error) {

	if order == 0 {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: "order must be positive"}
	}

	if bits.Len64(q) > MaxModulusBits {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: fmt.Sprintf("modulus exceeds %d bits", MaxModulusBits)}
	}

	if !IsPrime(q) {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: "modulus is not prime"}
	}

	if (q-1)%order != 0 {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: fmt.Sprintf("%d does not divide q-1=%d", order, q-1)}
	}

	var g uint64
	if g, _, err = PrimitiveRoot(q, nil); err != nil {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: err.Error()}
	}

	root = ModExp(g, (q-1)/order, q)

	if !IsPrimitiveRootOfUnity(root, order, q) {
		return 0, &NoSuchRootError{Order: order, Modulus: q, Reason: fmt.Sprintf("candidate %d failed the order verification", root)}
	}

	return
}

// IsPrimitiveRootOfUnity returns true if r has exact multiplicative order `order` modulo q.
func IsPrimitiveRootOfUnity(r, order, q uint64) bool {

	if order == 0 || q < 2 || r == 0 || r >= q {
		return false
	}

	if ModExp(r, order, q) != 1 {
		return false
	}

	for _, p := range factorization.GetFactorsUint64(order) {
		if ModExp(r, order/p, q) == 1 {
			return false
		}
	}

	return true
}

type rootKey struct {
	order, modulus uint64
}

type rootEntry struct {
	once sync.Once
	root uint64
	err  error
}

// RootCache is a read-through cache of primitive roots of unity keyed by (order, modulus).
// Each key is computed at most once and never invalidated.
// It is safe for concurrent use.
type RootCache struct {
	entries sync.Map
}

// DefaultRootCache is the RootCache shared by Multiplier instances created without an explicit cache.
var DefaultRootCache = NewRootCache()

// NewRootCache creates a new empty RootCache.
func NewRootCache() *RootCache {
	return &RootCache{}
}

// Get returns PrimitiveRootOfUnity(order, q), computing it on the first call for the key.
func (c *RootCache) Get(order, q uint64) (uint64, error) {
	v, _ := c.entries.LoadOrStore(rootKey{order: order, modulus: q}, new(rootEntry))
	e := v.(*rootEntry)
	e.once.Do(func() {
		e.root, e.err = PrimitiveRootOfUnity(order, q)
	})
	return e.root, e.err
}

// Len returns the number of keys stored in the cache.
func (c *RootCache) Len() (n int) {
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return
}
