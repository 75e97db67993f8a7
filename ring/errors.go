package ring

import (
	"fmt"
)

// PreconditionError is returned before any transform work begins when an
// algebraic precondition of an operation does not hold.
type PreconditionError struct {
	Op        string
	Condition string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Condition)
}

// NoSuchRootError is returned when no element of the requested exact
// multiplicative order can be found modulo the given modulus.
type NoSuchRootError struct {
	Order   uint64
	Modulus uint64
	Reason  string
}

func (e *NoSuchRootError) Error() string {
	return fmt.Sprintf("no primitive %d-th root of unity modulo %d: %s", e.Order, e.Modulus, e.Reason)
}

// DimensionMismatchError is returned by coefficient-wise operations on
// operands of different length or modulus.
type DimensionMismatchError struct {
	Op     string
	N0, N1 int
	Q0, Q1 uint64
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: (N=%d, Q=%d) != (N=%d, Q=%d)", e.Op, e.N0, e.Q0, e.N1, e.Q1)
}

func newPreconditionError(op, format string, args ...interface{}) error {
	return &PreconditionError{Op: op, Condition: fmt.Sprintf(format, args...)}
}
