package ring

import (
	"encoding/json"
	"math/bits"
)

// ParametersLiteral is a literal representation of the parameters of an
// NTT-based multiplication: the number of coefficients N of the operands,
// the prime modulus Q and the ring convention Type.
// See NewParametersFromLiteral for the validation rules.
type ParametersLiteral struct {
	N    int
	Q    uint64
	Type Type
}

// Parameters represents a validated set of multiplication parameters. Its fields are
// private and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	n int
	q uint64
	t Type
}

// NewParameters returns a new set of parameters from the number of coefficients n, the
// modulus q and the ring type t. It returns the empty parameters Parameters{} and a
// *PreconditionError naming the violated condition if
//   - t is not a valid Type,
//   - n < 1,
//   - q < 2 or q has more than MaxModulusBits bits,
//   - q is not prime,
//   - the root order required by t (n, 2n or 2n-1) does not divide q-1.
func NewParameters(n int, q uint64, t Type) (params Parameters, err error) {

	const op = "NewParameters"

	if !t.IsValid() {
		return Parameters{}, newPreconditionError(op, "invalid ring type %d", int(t))
	}

	if n < 1 {
		return Parameters{}, newPreconditionError(op, "number of coefficients %d must be at least 1", n)
	}

	if q < 2 {
		return Parameters{}, newPreconditionError(op, "modulus %d must be greater than 1", q)
	}

	if bits.Len64(q) > MaxModulusBits {
		return Parameters{}, newPreconditionError(op, "modulus %d exceeds the maximum bit-size of %d bits", q, MaxModulusBits)
	}

	if !IsPrime(q) {
		return Parameters{}, newPreconditionError(op, "modulus %d is not prime", q)
	}

	if order := t.RootOrder(n); (q-1)%order != 0 {
		return Parameters{}, newPreconditionError(op, "%s ring requires (q-1) mod %d == 0, but (%d-1) mod %d = %d", t, order, q, order, (q-1)%order)
	}

	return Parameters{n: n, q: q, t: t}, nil
}

// NewParametersFromLiteral instantiate a set of parameters from a ParametersLiteral.
// See NewParameters for the validation rules.
func NewParametersFromLiteral(paramDef ParametersLiteral) (Parameters, error) {
	return NewParameters(paramDef.N, paramDef.Q, paramDef.Type)
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:    p.n,
		Q:    p.q,
		Type: p.t,
	}
}

// N returns the number of coefficients of the operands.
func (p Parameters) N() int {
	return p.n
}

// Q returns the prime modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// Type returns the ring convention.
func (p Parameters) Type() Type {
	return p.t
}

// RootOrder returns the order of the root of unity used by the transforms.
func (p Parameters) RootOrder() uint64 {
	return p.t.RootOrder(p.n)
}

// ProductLength returns the number of coefficients of a product.
func (p Parameters) ProductLength() int {
	return p.t.ProductLength(p.n)
}

// Equal returns true if the receiver Parameters is equal to the provided other Parameters.
func (p Parameters) Equal(other Parameters) bool {
	return p == other
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
