package ring

import (
	"errors"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils"
	"github.com/tipsharsha/PS1-Polynomial-Multiplier/utils/factorization"
)

func TestIsPrime(t *testing.T) {

	t.Run("Small", func(t *testing.T) {
		for x := uint64(0); x < 5000; x++ {
			require.Equal(t, factorization.IsPrime(new(big.Int).SetUint64(x)), IsPrime(x), "x=%d", x)
		}
	})

	t.Run("Large", func(t *testing.T) {
		require.True(t, IsPrime(998244353))
		require.True(t, IsPrime(4294967291))
		require.True(t, IsPrime(4294967311))
		require.True(t, IsPrime(0x1fffffffffe00001))
		require.False(t, IsPrime(4294967297)) // 641 * 6700417
		require.False(t, IsPrime(3*0x1fffffffffe00001))
	})
}

func TestNextNTTPrime(t *testing.T) {

	p, err := NextNTTPrime(1, 11)
	require.NoError(t, err)
	require.Equal(t, uint64(23), p)

	p, err = NextNTTPrime(7, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(13), p)

	for _, order := range []uint64{3, 5, 7, 64, 1023, 2048} {
		p, err = NextNTTPrime(1<<30, order)
		require.NoError(t, err)
		require.True(t, IsPrime(p))
		require.Equal(t, uint64(1), p%order)
		require.Greater(t, p, uint64(1<<30))
	}

	_, err = NextNTTPrime(1, 0)
	var perr *PreconditionError
	require.True(t, errors.As(err, &perr))

	_, err = NextNTTPrime(1<<MaxModulusBits, 2)
	require.ErrorAs(t, err, &perr)
}

func TestPreviousNTTPrime(t *testing.T) {

	p, err := PreviousNTTPrime(100, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(97), p)

	_, err = PreviousNTTPrime(23, 11)
	var perr *PreconditionError
	require.ErrorAs(t, err, &perr)
}

func TestGenerateNTTPrimes(t *testing.T) {

	for _, order := range []uint64{5, 32, 2047} {

		primes, err := GenerateNTTPrimes(30, order, 6)
		require.NoError(t, err)
		require.Len(t, primes, 6)
		require.True(t, utils.AllDistinct(primes))

		for _, q := range primes {
			require.True(t, IsPrime(q))
			require.Equal(t, uint64(1), q%order)
			require.InDelta(t, 30, bits.Len64(q), 1)
		}
	}

	_, err := GenerateNTTPrimes(62, 2, 1)
	var perr *PreconditionError
	require.ErrorAs(t, err, &perr)
}
