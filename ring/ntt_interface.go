package ring

import (
	"fmt"
)

// NumberTheoreticTransformer is an interface to provide flexibility on what
// type of NTT is used to multiply polynomials.
//
// Forward maps a polynomial from the coefficient domain to the evaluation domain
// and Backward maps it back, both under the same root of unity. Implementations
// never modify their input and always return a new Poly whose coefficients are in [0, Q).
// The reference implementations below are O(n^2); a butterfly implementation can
// be substituted as long as it keeps the same ordering and normalization.
type NumberTheoreticTransformer interface {
	// Type returns the ring convention implemented by the transformer.
	Type() Type
	// RootOrder returns the order of the root required to transform operands of n coefficients.
	RootOrder(n int) uint64
	// Forward returns p in the evaluation domain of root.
	Forward(p Poly, root uint64) (Poly, error)
	// Backward returns the polynomial whose Forward image under root is pntt.
	Backward(pntt Poly, root uint64) (Poly, error)
}

// NewNumberTheoreticTransformer returns the reference NumberTheoreticTransformer of the given Type.
func NewNumberTheoreticTransformer(t Type) (NumberTheoreticTransformer, error) {
	switch t {
	case Cyclic:
		return NumberTheoreticTransformerCyclic{}, nil
	case Negacyclic:
		return NumberTheoreticTransformerNegacyclic{}, nil
	case Linear:
		return NumberTheoreticTransformerLinear{}, nil
	default:
		return nil, fmt.Errorf("invalid ring type: %d", int(t))
	}
}

// NumberTheoreticTransformerCyclic computes the cyclic NTT in the ring Z_q[X]/(X^N-1).
// It requires a primitive N-th root of unity.
type NumberTheoreticTransformerCyclic struct{}

// Type returns Cyclic.
func (NumberTheoreticTransformerCyclic) Type() Type {
	return Cyclic
}

// RootOrder returns n.
func (NumberTheoreticTransformerCyclic) RootOrder(n int) uint64 {
	return Cyclic.RootOrder(n)
}

// Forward returns pntt[i] = sum_{j<N} p[j] * root^(ij) for 0 <= i < N.
func (NumberTheoreticTransformerCyclic) Forward(p Poly, root uint64) (Poly, error) {
	return nttCyclic(p, root)
}

// Backward returns p[i] = N^-1 * sum_{j<N} pntt[j] * root^(-ij) for 0 <= i < N.
func (NumberTheoreticTransformerCyclic) Backward(pntt Poly, root uint64) (Poly, error) {
	return inttCyclic(pntt, root)
}

// NumberTheoreticTransformerNegacyclic computes the nega-cyclic NTT in the ring Z_q[X]/(X^N+1).
// It requires a primitive 2N-th root of unity psi: the input is twisted by psi^j and
// then evaluated at the N powers of the N-th root psi^2.
type NumberTheoreticTransformerNegacyclic struct{}

// Type returns Negacyclic.
func (NumberTheoreticTransformerNegacyclic) Type() Type {
	return Negacyclic
}

// RootOrder returns 2n.
func (NumberTheoreticTransformerNegacyclic) RootOrder(n int) uint64 {
	return Negacyclic.RootOrder(n)
}

// Forward returns pntt[i] = sum_{j<N} p[j] * root^j * root^(2ij) for 0 <= i < N.
func (NumberTheoreticTransformerNegacyclic) Forward(p Poly, root uint64) (Poly, error) {
	return nttNegacyclic(p, root)
}

// Backward returns p[i] = N^-1 * root^(-i) * sum_{j<N} pntt[j] * root^(-2ij) for 0 <= i < N.
func (NumberTheoreticTransformerNegacyclic) Backward(pntt Poly, root uint64) (Poly, error) {
	return inttNegacyclic(pntt, root)
}

// NumberTheoreticTransformerLinear computes the NTT of the plain product in Z_q[X].
// It requires a primitive (2N-1)-th root of unity, the operands being implicitly
// zero-padded to 2N-1 coefficients.
type NumberTheoreticTransformerLinear struct{}

// Type returns Linear.
func (NumberTheoreticTransformerLinear) Type() Type {
	return Linear
}

// RootOrder returns 2n-1.
func (NumberTheoreticTransformerLinear) RootOrder(n int) uint64 {
	return Linear.RootOrder(n)
}

// Forward returns pntt[i] = sum_{j<N} p[j] * root^(ij) for 0 <= i < 2N-1.
func (NumberTheoreticTransformerLinear) Forward(p Poly, root uint64) (Poly, error) {
	return nttLinear(p, root, Linear.ProductLength(p.N()))
}

// ForwardNoPad returns pntt[i] = sum_{j<N} p[j] * root^(ij) for 0 <= i < N,
// i.e. only the first N evaluations of Forward.
// This view is not invertible by Backward and is not used for multiplication.
func (NumberTheoreticTransformerLinear) ForwardNoPad(p Poly, root uint64) (Poly, error) {
	return nttLinear(p, root, p.N())
}

// Backward takes an evaluation vector of M = 2N-1 values and returns
// p[i] = M^-1 * sum_{j<M} pntt[j] * root^(-ij) for 0 <= i < M.
// The root must be a primitive M-th root of unity.
func (NumberTheoreticTransformerLinear) Backward(pntt Poly, root uint64) (Poly, error) {
	return inttLinear(pntt, root)
}
