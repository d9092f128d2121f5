package sieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/fermat-scan/sieve"
)

func TestSieve(t *testing.T) {
	t.Run("SmallPrimes", func(t *testing.T) {
		s := sieve.New(50)

		primes := map[uint64]bool{
			2: true, 3: true, 5: true, 7: true, 11: true, 13: true,
			17: true, 19: true, 23: true, 29: true, 31: true, 37: true,
			41: true, 43: true, 47: true,
		}
		for n := uint64(0); n < 50; n++ {
			assert.Equal(t, primes[n], s.IsPrime(n), "n = %d", n)
		}
	})

	t.Run("Count", func(t *testing.T) {
		// pi(1000) = 168.
		assert.Equal(t, 168, sieve.New(1000).Count())
	})

	t.Run("Carmichael", func(t *testing.T) {
		assert.False(t, sieve.New(1000).IsPrime(561))
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		s := sieve.New(10)
		assert.Panics(t, func() { s.IsPrime(10) })
		assert.Panics(t, func() { sieve.New(2) })
	})
}
