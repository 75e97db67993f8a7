package ring

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Multiplier multiplies polynomials of a fixed set of Parameters using the
// NumberTheoreticTransformer of the Parameters' Type.
// The root of unity is resolved once at creation and used for both the
// forward and the backward transforms of every product.
// A Multiplier holds no mutable state and can be used concurrently.
type Multiplier struct {
	params Parameters
	ntt    NumberTheoreticTransformer
	root   uint64
	logger logr.Logger
}

// NewMultiplier creates a new Multiplier from the given Parameters.
// The primitive root of unity of order params.RootOrder() is obtained from roots,
// or from DefaultRootCache if roots is nil.
// Returns an error wrapping a *NoSuchRootError if no such root can be found.
func NewMultiplier(params Parameters, roots *RootCache) (m *Multiplier, err error) {

	if !params.Type().IsValid() {
		return nil, newPreconditionError("NewMultiplier", "parameters are not initialized")
	}

	if roots == nil {
		roots = DefaultRootCache
	}

	m = &Multiplier{params: params, logger: logr.Discard()}

	if m.ntt, err = NewNumberTheoreticTransformer(params.Type()); err != nil {
		return nil, fmt.Errorf("cannot NewMultiplier: %w", err)
	}

	if m.root, err = roots.Get(params.RootOrder(), params.Q()); err != nil {
		return nil, fmt.Errorf("cannot NewMultiplier: %w", err)
	}

	return
}

// WithLogger returns a shallow copy of the target Multiplier that logs its
// intermediate values on the given logger at verbosity 1.
func (m *Multiplier) WithLogger(logger logr.Logger) *Multiplier {
	mCpy := *m
	mCpy.logger = logger
	return &mCpy
}

// Parameters returns the Parameters of the Multiplier.
func (m *Multiplier) Parameters() Parameters {
	return m.params
}

// Root returns the primitive root of unity used by the Multiplier.
func (m *Multiplier) Root() uint64 {
	return m.root
}

// Transformer returns the NumberTheoreticTransformer used by the Multiplier.
func (m *Multiplier) Transformer() NumberTheoreticTransformer {
	return m.ntt
}

// Mul returns the product of a and b in the ring of the Multiplier's Parameters.
// The operands must have N() coefficients and modulus Q(); the product has
// ProductLength() coefficients. The operands are not modified.
func (m *Multiplier) Mul(a, b Poly) (c Poly, err error) {

	const op = "Mul"

	n, q := m.params.N(), m.params.Q()

	if a.N() != n || b.N() != n {
		return Poly{}, newPreconditionError(op, "operands must have %d coefficients, have %d and %d", n, a.N(), b.N())
	}

	if a.Q != q || b.Q != q {
		return Poly{}, newPreconditionError(op, "operands must be modulo %d, are modulo %d and %d", q, a.Q, b.Q)
	}

	log := m.logger.WithValues("type", m.params.Type(), "n", n, "q", q, "root", m.root)

	var antt, bntt, cntt Poly

	if antt, err = m.ntt.Forward(a, m.root); err != nil {
		return Poly{}, fmt.Errorf("cannot Mul: forward transform of a: %w", err)
	}

	if bntt, err = m.ntt.Forward(b, m.root); err != nil {
		return Poly{}, fmt.Errorf("cannot Mul: forward transform of b: %w", err)
	}

	log.V(1).Info("operands in evaluation domain", "antt", antt.Coeffs, "bntt", bntt.Coeffs)

	if cntt, err = antt.Pointwise(bntt); err != nil {
		return Poly{}, fmt.Errorf("cannot Mul: %w", err)
	}

	if c, err = m.ntt.Backward(cntt, m.root); err != nil {
		return Poly{}, fmt.Errorf("cannot Mul: backward transform: %w", err)
	}

	log.V(1).Info("product", "c", c.Coeffs)

	return
}

// Multiply returns the product of a and b in the ring given by t, using DefaultRootCache.
// It checks that a and b have the same number of coefficients and modulus, that the
// modulus is prime and that the root order required by t divides q-1, before any
// transform work begins; every violation is reported as a *PreconditionError.
// The product has a.N() coefficients for Cyclic and Negacyclic, and 2*a.N()-1 for Linear.
func Multiply(a, b Poly, t Type) (Poly, error) {

	const op = "Multiply"

	if a.N() != b.N() {
		return Poly{}, newPreconditionError(op, "operands have different number of coefficients: %d != %d", a.N(), b.N())
	}

	if a.Q != b.Q {
		return Poly{}, newPreconditionError(op, "operands have different moduli: %d != %d", a.Q, b.Q)
	}

	params, err := NewParameters(a.N(), a.Q, t)
	if err != nil {
		return Poly{}, err
	}

	m, err := NewMultiplier(params, nil)
	if err != nil {
		return Poly{}, err
	}

	return m.Mul(a, b)
}

// MultiplyCyclic returns a*b in Z_q[x]/(x^n-1).
func MultiplyCyclic(a, b Poly) (Poly, error) {
	return Multiply(a, b, Cyclic)
}

// MultiplyNegacyclic returns a*b in Z_q[x]/(x^n+1).
func MultiplyNegacyclic(a, b Poly) (Poly, error) {
	return Multiply(a, b, Negacyclic)
}

// MultiplyLinear returns a*b in Z_q[x].
func MultiplyLinear(a, b Poly) (Poly, error) {
	return Multiply(a, b, Linear)
}
