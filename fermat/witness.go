package fermat

import (
	"fmt"

	"github.com/sp301415/fermat-scan/csprng"
)

// WitnessSampler samples witnesses uniformly from [2, p-1]
// using an underlying csprng sampler.
// WitnessSampler implements [WitnessSource].
type WitnessSampler struct {
	csprng.Sampler
}

// NewWitnessSampler creates a new WitnessSampler over sampler.
func NewWitnessSampler(sampler csprng.Sampler) *WitnessSampler {
	return &WitnessSampler{
		Sampler: sampler,
	}
}

// SampleWitness uniformly samples a witness in [2, p-1].
// For p = 3 the interval collapses to the single value 2.
//
// Panics if p < 3.
func (s *WitnessSampler) SampleWitness(p uint64) uint64 {
	if p < 3 {
		panic(fmt.Sprintf("candidate %d out of range: must be at least 3", p))
	}
	return 2 + s.SampleN(p-2)
}
