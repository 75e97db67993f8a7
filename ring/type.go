package ring

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the convention of an NTT-based multiplication, i.e. the ring in which the product is computed.
type Type int

const (
	// Cyclic is the ring Z_q[x]/(x^n-1): wrap-around terms add.
	Cyclic Type = iota + 1
	// Negacyclic is the ring Z_q[x]/(x^n+1): wrap-around terms subtract.
	Negacyclic
	// Linear is Z_q[x] without reduction: the product of two n-coefficient polynomials has 2n-1 coefficients.
	Linear
)

var typeToString = [4]string{"Undefined", "Cyclic", "Negacyclic", "Linear"}

var typeFromString = map[string]Type{
	"cyclic":     Cyclic,
	"negacyclic": Negacyclic,
	"linear":     Linear,
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeToString) {
		return "Unknown"
	}
	return typeToString[int(t)]
}

// ParseType returns the Type whose name matches s (case insensitive).
func ParseType(s string) (Type, error) {
	t, ok := typeFromString[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("invalid ring type: %q", s)
	}
	return t, nil
}

// IsValid returns true if t is one of Cyclic, Negacyclic or Linear.
func (t Type) IsValid() bool {
	return t == Cyclic || t == Negacyclic || t == Linear
}

// RootOrder returns the multiplicative order of the root of unity required
// to multiply two polynomials of n coefficients: n, 2n and 2n-1 respectively.
// Returns 0 for an invalid Type or n < 1.
func (t Type) RootOrder(n int) uint64 {

	if n < 1 {
		return 0
	}

	switch t {
	case Cyclic:
		return uint64(n)
	case Negacyclic:
		return 2 * uint64(n)
	case Linear:
		return 2*uint64(n) - 1
	default:
		return 0
	}
}

// ProductLength returns the number of coefficients of the product of two
// polynomials of n coefficients.
func (t Type) ProductLength(n int) int {
	if t == Linear && n > 0 {
		return 2*n - 1
	}
	return n
}

// MarshalJSON encodes the Type as its name.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("cannot MarshalJSON: invalid ring type %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a Type from its name.
func (t *Type) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err = json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	*t, err = ParseType(s)
	return
}
