package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetDistincts returns the list of distinct elements in v.
// Order is not guaranteed.
func GetDistincts[V comparable](v []V) (vd []V) {
	m := map[V]bool{}
	for _, vi := range v {
		m[vi] = true
	}

	vd = make([]V, len(m))

	var i int
	for mi := range m {
		vd[i] = mi
		i++
	}

	return
}

// GetSortedDistincts returns the sorted list of distinct elements in v.
func GetSortedDistincts[V constraints.Ordered](v []V) (vd []V) {
	vd = GetDistincts(v)
	SortSlice(vd)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}
