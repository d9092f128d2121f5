package fermat

// WitnessSource samples candidate witnesses for the trial loop.
// Implementations must return values uniformly distributed in [2, p-1].
type WitnessSource interface {
	// SampleWitness uniformly samples a witness in [2, p-1].
	// Panics if p < 3.
	SampleWitness(p uint64) uint64
}

// Result is the outcome of testing one candidate.
type Result struct {
	// Candidate is the tested value p.
	Candidate uint64
	// ProbablePrime is true when all sampled witnesses
	// passed the congruence test.
	ProbablePrime bool
	// Witness is the composite witness proving p composite.
	// Only meaningful when ProbablePrime is false.
	Witness uint64
	// Liar is the witness from the immediately preceding trial
	// that passed the congruence test despite p being composite.
	// Only meaningful when HasLiar is true.
	Liar uint64
	// HasLiar is true when at least one trial passed
	// before compositeness was proven.
	HasLiar bool
}
