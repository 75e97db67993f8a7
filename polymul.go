/*
Package polymul is a reference implementation of polynomial multiplication over Z_q[x]
using the Number-Theoretic Transform (NTT).
It provides the cyclic Z_q[x]/(x^n-1), the nega-cyclic Z_q[x]/(x^n+1) and the linear (unreduced)
conventions, each with its own root of unity order and inverse normalization, and makes the
algebraic preconditions of every convention explicit and checked.
The transforms and primitives are located in the package ring.
*/
package polymul
