package ring

import (
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Poly is the structure that contains the coefficients of a polynomial over Z_Q.
// Coeffs[0] is the constant term and the index increases with the degree.
// Every coefficient is kept in [0, Q).
type Poly struct {
	Coeffs []uint64
	Q      uint64
}

// NewPoly creates a new polynomial from a list of signed coefficients.
// The number of coefficients N is set to len(coeffs) and each coefficient is reduced modulo q.
func NewPoly(coeffs []int64, q uint64) (Poly, error) {

	if q < 2 {
		return Poly{}, newPreconditionError("NewPoly", "modulus %d must be greater than 1", q)
	}

	pol := NewZeroPoly(len(coeffs), q)

	for i, c := range coeffs {
		pol.Coeffs[i] = reduceInt64(c, q)
	}

	return pol, nil
}

// NewPolyFromUint64 creates a new polynomial from a list of unsigned coefficients,
// each reduced modulo q.
func NewPolyFromUint64(coeffs []uint64, q uint64) (Poly, error) {

	if q < 2 {
		return Poly{}, newPreconditionError("NewPolyFromUint64", "modulus %d must be greater than 1", q)
	}

	pol := NewZeroPoly(len(coeffs), q)

	for i, c := range coeffs {
		pol.Coeffs[i] = c % q
	}

	return pol, nil
}

// NewZeroPoly creates a new polynomial with n coefficients set to zero modulo q.
func NewZeroPoly(n int, q uint64) Poly {
	return Poly{Coeffs: make([]uint64, n), Q: q}
}

// reduceInt64 returns c mod q in [0, q).
func reduceInt64(c int64, q uint64) uint64 {

	if c >= 0 {
		return uint64(c) % q
	}

	// |c| = -(c+1) + 1 does not overflow for c = math.MinInt64
	m := (uint64(-(c+1))%q + 1) % q

	if m == 0 {
		return 0
	}

	return q - m
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// Modulus returns the modulus of the polynomial.
func (pol Poly) Modulus() uint64 {
	return pol.Q
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	coeffs := make([]uint64, len(pol.Coeffs))
	copy(coeffs, pol.Coeffs)
	return Poly{Coeffs: coeffs, Q: pol.Q}
}

// Equal returns true if the receiver Poly is equal to the provided other Poly.
func (pol Poly) Equal(other Poly) bool {
	return pol.Q == other.Q && cmp.Equal(pol.Coeffs, other.Coeffs, cmpopts.EquateEmpty())
}

// String returns the coefficients of the polynomial followed by its modulus.
func (pol Poly) String() string {
	return fmt.Sprintf("%v mod %d", pol.Coeffs, pol.Q)
}

// Validate checks that the modulus is greater than 1 and at most MaxModulusBits bits,
// and that every coefficient is in [0, Q).
func (pol Poly) Validate() error {

	if pol.Q < 2 {
		return newPreconditionError("Validate", "modulus %d must be greater than 1", pol.Q)
	}

	if bits.Len64(pol.Q) > MaxModulusBits {
		return newPreconditionError("Validate", "modulus %d exceeds the maximum bit-size of %d bits", pol.Q, MaxModulusBits)
	}

	for i, c := range pol.Coeffs {
		if c >= pol.Q {
			return newPreconditionError("Validate", "coefficient %d at index %d is not reduced modulo %d", c, i, pol.Q)
		}
	}

	return nil
}

// Pointwise returns the coefficient-wise product pol[i] * other[i] mod Q.
// Returns a *DimensionMismatchError if the two polynomials differ in length or modulus,
// and a *PreconditionError if one of them fails Validate.
func (pol Poly) Pointwise(other Poly) (Poly, error) {

	if pol.N() != other.N() || pol.Q != other.Q {
		return Poly{}, &DimensionMismatchError{Op: "Pointwise", N0: pol.N(), N1: other.N(), Q0: pol.Q, Q1: other.Q}
	}

	if err := pol.Validate(); err != nil {
		return Poly{}, err
	}

	if err := other.Validate(); err != nil {
		return Poly{}, err
	}

	q := pol.Q
	brc := GenBRedConstant(q)

	res := NewZeroPoly(pol.N(), q)
	for i := range res.Coeffs {
		res.Coeffs[i] = BRed(pol.Coeffs[i], other.Coeffs[i], q, brc)
	}

	return res, nil
}
