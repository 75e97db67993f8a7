package ring

import (
	"fmt"
)

// checkTransformInput checks that p is a valid non-empty polynomial over a prime field
// and that root is a primitive order-th root of unity modulo p.Q.
func checkTransformInput(op string, p Poly, root, order uint64) error {

	if p.N() == 0 {
		return newPreconditionError(op, "polynomial has no coefficients")
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !IsPrime(p.Q) {
		return newPreconditionError(op, "modulus %d is not prime", p.Q)
	}

	if (p.Q-1)%order != 0 {
		return newPreconditionError(op, "%d does not divide q-1=%d", order, p.Q-1)
	}

	if !IsPrimitiveRootOfUnity(root, order, p.Q) {
		return newPreconditionError(op, "%d is not a primitive %d-th root of unity modulo %d", root, order, p.Q)
	}

	return nil
}

// rootPowers returns root^k mod q for 0 <= k < order.
func rootPowers(root, order, q uint64, brc [2]uint64) (powers []uint64) {
	powers = make([]uint64, order)
	powers[0] = 1
	for k := uint64(1); k < order; k++ {
		powers[k] = BRed(powers[k-1], root, q, brc)
	}
	return
}

// evaluate returns out[i] = sum_j coeffs[j] * root^(i*j*step) for 0 <= i < size,
// or root^(-i*j*step) if backward is true, where powers = rootPowers(root, order, q).
// Exponents are reduced modulo the order of the root.
func evaluate(coeffs []uint64, size int, powers []uint64, step uint64, backward bool, q uint64, brc [2]uint64) (out []uint64) {

	order := uint64(len(powers))

	step %= order

	out = make([]uint64, size)

	// stride = i*step mod order
	var stride uint64

	for i := range out {

		var acc, idx uint64

		for _, c := range coeffs {

			w := powers[idx]
			if backward && idx != 0 {
				w = powers[order-idx]
			}

			acc = CRed(acc+BRed(c, w, q, brc), q)

			if idx += stride; idx >= order {
				idx -= order
			}
		}

		out[i] = acc

		if stride += step; stride >= order {
			stride -= order
		}
	}

	return
}

// scale multiplies coeffs by s in place.
func scale(coeffs []uint64, s, q uint64, brc [2]uint64) {
	for i := range coeffs {
		coeffs[i] = BRed(coeffs[i], s, q, brc)
	}
}

func nttCyclic(p Poly, root uint64) (Poly, error) {

	n := p.N()
	order := Cyclic.RootOrder(n)

	if err := checkTransformInput("NTTCyclic", p, root, order); err != nil {
		return Poly{}, err
	}

	q := p.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	return Poly{Coeffs: evaluate(p.Coeffs, n, powers, 1, false, q, brc), Q: q}, nil
}

func inttCyclic(pntt Poly, root uint64) (Poly, error) {

	n := pntt.N()
	order := Cyclic.RootOrder(n)

	if err := checkTransformInput("INTTCyclic", pntt, root, order); err != nil {
		return Poly{}, err
	}

	q := pntt.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	coeffs := evaluate(pntt.Coeffs, n, powers, 1, true, q, brc)

	// n divides q-1, so n < q is invertible
	nInv, err := ModInverse(uint64(n), q)
	if err != nil {
		return Poly{}, err
	}

	scale(coeffs, nInv, q, brc)

	return Poly{Coeffs: coeffs, Q: q}, nil
}

func nttNegacyclic(p Poly, root uint64) (Poly, error) {

	n := p.N()
	order := Negacyclic.RootOrder(n)

	if err := checkTransformInput("NTTNegacyclic", p, root, order); err != nil {
		return Poly{}, err
	}

	q := p.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	// Twist: Z_q[X]/(X^N+1) -> Z_q[X]/(X^N-1)
	twisted := make([]uint64, n)
	for j := range twisted {
		twisted[j] = BRed(p.Coeffs[j], powers[j], q, brc)
	}

	return Poly{Coeffs: evaluate(twisted, n, powers, 2, false, q, brc), Q: q}, nil
}

func inttNegacyclic(pntt Poly, root uint64) (Poly, error) {

	n := pntt.N()
	order := Negacyclic.RootOrder(n)

	if err := checkTransformInput("INTTNegacyclic", pntt, root, order); err != nil {
		return Poly{}, err
	}

	q := pntt.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	coeffs := evaluate(pntt.Coeffs, n, powers, 2, true, q, brc)

	nInv, err := ModInverse(uint64(n), q)
	if err != nil {
		return Poly{}, err
	}

	scale(coeffs, nInv, q, brc)

	// Untwist by root^-i
	for i := 1; i < n; i++ {
		coeffs[i] = BRed(coeffs[i], powers[order-uint64(i)], q, brc)
	}

	return Poly{Coeffs: coeffs, Q: q}, nil
}

func nttLinear(p Poly, root uint64, size int) (Poly, error) {

	n := p.N()
	order := Linear.RootOrder(n)

	if err := checkTransformInput("NTTLinear", p, root, order); err != nil {
		return Poly{}, err
	}

	q := p.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	return Poly{Coeffs: evaluate(p.Coeffs, size, powers, 1, false, q, brc), Q: q}, nil
}

func inttLinear(pntt Poly, root uint64) (Poly, error) {

	m := pntt.N()
	order := uint64(m)

	if err := checkTransformInput("INTTLinear", pntt, root, order); err != nil {
		return Poly{}, err
	}

	q := pntt.Q
	brc := GenBRedConstant(q)
	powers := rootPowers(root, order, q, brc)

	coeffs := evaluate(pntt.Coeffs, m, powers, 1, true, q, brc)

	mInv, err := ModInverse(order, q)
	if err != nil {
		return Poly{}, err
	}

	scale(coeffs, mInv, q, brc)

	return Poly{Coeffs: coeffs, Q: q}, nil
}
