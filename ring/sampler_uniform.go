package ring

import (
	"encoding/binary"
	"math/bits"

	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils/sampling"
)

const uniformSamplerBufferSize = 1024

// UniformSampler wraps a sampling.PRNG and represents the state of a sampler of uniform polynomials.
// It is not safe for concurrent use.
type UniformSampler struct {
	prng   sampling.PRNG
	n      int
	q      uint64
	mask   uint64
	buffer []byte
	ptr    int
}

// NewUniformSampler creates a new instance of UniformSampler of polynomials with n
// coefficients modulo q from a PRNG.
func NewUniformSampler(prng sampling.PRNG, n int, q uint64) (u *UniformSampler) {
	u = new(UniformSampler)
	u.prng = prng
	u.n = n
	u.q = q
	u.mask = (1 << uint64(bits.Len64(q-1))) - 1
	u.buffer = make([]byte, uniformSamplerBufferSize)
	u.ptr = uniformSamplerBufferSize
	return
}

// Read samples the coefficients of pol uniformly in [0, q-1].
// pol.Q is set to the modulus of the sampler.
func (u *UniformSampler) Read(pol *Poly) {

	if len(pol.Coeffs) != u.n {
		pol.Coeffs = make([]uint64, u.n)
	}

	pol.Q = u.q

	var randomUint uint64

	ptr := u.ptr
	buffer := u.buffer

	for i := range pol.Coeffs {

		// Samples an integer between [0, q-1]
		for {

			// Refills the buff if it runs empty
			if ptr == len(buffer) {
				if _, err := u.prng.Read(buffer); err != nil {
					// Sanity check, this error should not happen.
					panic(err)
				}
				ptr = 0
			}

			// Reads bytes from the buff
			randomUint = binary.BigEndian.Uint64(buffer[ptr:ptr+8]) & u.mask
			ptr += 8

			// If the integer is between [0, q-1], breaks the loop
			if randomUint < u.q {
				break
			}
		}

		pol.Coeffs[i] = randomUint
	}

	u.ptr = ptr
}

// ReadNew generates a new polynomial with coefficients following a uniform distribution over [0, q-1].
func (u *UniformSampler) ReadNew() (pol Poly) {
	pol = NewZeroPoly(u.n, u.q)
	u.Read(&pol)
	return
}
