package ring

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// exactOrder returns the multiplicative order of r modulo q by exhaustive search.
func exactOrder(r, q uint64) uint64 {
	x := r % q
	for k := uint64(1); k < q; k++ {
		if x == 1 {
			return k
		}
		x = x * r % q
	}
	return 0
}

func TestPrimitiveRoot(t *testing.T) {

	for _, tc := range []struct {
		q, g uint64
	}{
		{2, 1},
		{3, 2},
		{7, 3},
		{11, 2},
		{998244353, 3},
	} {
		g, factors, err := PrimitiveRoot(tc.q, nil)
		require.NoError(t, err)
		require.Equal(t, tc.g, g)
		if tc.q > 2 {
			require.NoError(t, CheckPrimitiveRoot(g, tc.q, factors))
		}
	}

	require.NoError(t, CheckPrimitiveRoot(3, 998244353, []uint64{2, 7, 17}))
	require.Error(t, CheckPrimitiveRoot(2, 7, []uint64{2, 3}))
	require.Error(t, CheckFactors(12, []uint64{2}))
	require.Error(t, CheckFactors(12, []uint64{4, 3}))

	_, _, err := PrimitiveRoot(7, []uint64{2})
	require.Error(t, err)

	t.Run("Smallest", func(t *testing.T) {
		for _, q := range []uint64{5, 7, 11, 13, 17, 23, 41, 97, 7681} {
			g, _, err := PrimitiveRoot(q, nil)
			require.NoError(t, err)
			require.Equal(t, q-1, exactOrder(g, q))
			for h := uint64(2); h < g; h++ {
				require.Less(t, exactOrder(h, q), q-1, "q=%d h=%d", q, h)
			}
		}
	})
}

func TestPrimitiveRootOfUnity(t *testing.T) {

	t.Run("Concrete", func(t *testing.T) {
		for _, tc := range []struct {
			order, q, root uint64
		}{
			{3, 7, 2},
			{6, 7, 3},
			{5, 11, 4},
			{1, 7, 1},
			{2, 7, 6},
		} {
			root, err := PrimitiveRootOfUnity(tc.order, tc.q)
			require.NoError(t, err)
			require.Equal(t, tc.root, root)
		}
	})

	t.Run("ExactOrder", func(t *testing.T) {
		for _, q := range []uint64{7, 11, 13, 17, 97, 257, 7681} {
			for order := uint64(1); order < q; order++ {
				if (q-1)%order != 0 {
					continue
				}
				root, err := PrimitiveRootOfUnity(order, q)
				require.NoError(t, err)
				require.Equal(t, order, exactOrder(root, q), "order=%d q=%d", order, q)
				require.True(t, IsPrimitiveRootOfUnity(root, order, q))
			}
		}
	})

	t.Run("Errors", func(t *testing.T) {

		var nerr *NoSuchRootError

		_, err := PrimitiveRootOfUnity(4, 7)
		require.True(t, errors.As(err, &nerr))
		require.Equal(t, uint64(4), nerr.Order)
		require.Equal(t, uint64(7), nerr.Modulus)

		_, err = PrimitiveRootOfUnity(2, 9)
		require.ErrorAs(t, err, &nerr)

		_, err = PrimitiveRootOfUnity(0, 7)
		require.ErrorAs(t, err, &nerr)

		_, err = PrimitiveRootOfUnity(2, 1<<62+1)
		require.ErrorAs(t, err, &nerr)

		_, _, err = PrimitiveRoot(1, nil)
		require.ErrorAs(t, err, &nerr)
	})
}

func TestIsPrimitiveRootOfUnity(t *testing.T) {
	require.True(t, IsPrimitiveRootOfUnity(2, 3, 7))
	require.True(t, IsPrimitiveRootOfUnity(4, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(1, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(6, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(3, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(9, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(0, 3, 7))
	require.False(t, IsPrimitiveRootOfUnity(2, 0, 7))
}

func TestRootCache(t *testing.T) {

	t.Run("Concurrent", func(t *testing.T) {

		cache := NewRootCache()

		q := uint64(998244353)
		order := uint64(1 << 10)

		want, err := PrimitiveRootOfUnity(order, q)
		require.NoError(t, err)

		roots := make([]uint64, 32)
		errs := make([]error, 32)

		var wg sync.WaitGroup
		for i := range roots {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				roots[i], errs[i] = cache.Get(order, q)
			}(i)
		}
		wg.Wait()

		for i := range roots {
			require.NoError(t, errs[i])
			require.Equal(t, want, roots[i])
		}

		require.Equal(t, 1, cache.Len())
	})

	t.Run("Error", func(t *testing.T) {

		cache := NewRootCache()

		_, err := cache.Get(4, 7)
		var nerr *NoSuchRootError
		require.ErrorAs(t, err, &nerr)

		_, err = cache.Get(4, 7)
		require.ErrorAs(t, err, &nerr)

		require.Equal(t, 1, cache.Len())
	})
}
