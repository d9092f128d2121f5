// Package csprng implements seeded samplers for uniform random values.
package csprng

// bufSize is the default buffer size of the samplers.
const bufSize = 8192

// Sampler samples uniformly distributed unsigned integers.
// It is seeded once at construction and never reseeded.
type Sampler interface {
	// Sample uniformly samples a random uint64.
	Sample() uint64
	// SampleN uniformly samples a random integer in [0, N).
	SampleN(N uint64) uint64
}
