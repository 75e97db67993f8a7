package ring

// ModExp performs the modular exponentiation x^e mod q.
// q is required to be at most MaxModulusBits bits.
func ModExp(x, e, q uint64) (result uint64) {
	brc := GenBRedConstant(q)
	x = BRedAdd(x, q, brc)
	result = 1 % q
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = BRed(result, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}
	return result
}

// ModInverse returns x^-1 mod q for a prime q, computed as x^(q-2) mod q.
func ModInverse(x, q uint64) (uint64, error) {
	if q < 2 || x%q == 0 {
		return 0, newPreconditionError("ModInverse", "%d has no inverse modulo %d", x, q)
	}
	return ModExp(x, q-2, q), nil
}
