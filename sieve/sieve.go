// Package sieve implements a deterministic sieve of Eratosthenes,
// used as a ground-truth primality oracle for candidates below a bound.
package sieve

import (
	"github.com/bits-and-blooms/bitset"
)

// Sieve holds the primality of all integers below a limit.
type Sieve struct {
	limit     uint64
	composite *bitset.BitSet
}

// New creates a new Sieve covering [0, limit).
//
// Panics if limit < 3.
func New(limit uint64) *Sieve {
	if limit < 3 {
		panic("limit must be at least 3")
	}

	composite := bitset.New(uint(limit))
	composite.Set(0)
	composite.Set(1)

	for p := uint64(2); p*p < limit; p++ {
		if composite.Test(uint(p)) {
			continue
		}
		for m := p * p; m < limit; m += p {
			composite.Set(uint(m))
		}
	}

	return &Sieve{
		limit:     limit,
		composite: composite,
	}
}

// Limit returns the exclusive upper bound of the sieve.
func (s *Sieve) Limit() uint64 {
	return s.limit
}

// IsPrime returns whether n is prime.
//
// Panics if n is not below the sieve limit.
func (s *Sieve) IsPrime(n uint64) bool {
	if n >= s.limit {
		panic("value out of sieve range")
	}
	return !s.composite.Test(uint(n))
}

// Count returns the number of primes below the sieve limit.
func (s *Sieve) Count() int {
	return int(s.limit) - int(s.composite.Count())
}
