package fermat

// Tester classifies candidates as composite or probable prime
// by sampling random witnesses and checking Fermat's congruence.
type Tester struct {
	// Parameters is the parameters for this Tester.
	Parameters Parameters

	// Source samples the witnesses. Its generator state advances
	// across candidates and is never reset.
	Source WitnessSource
}

// NewTester creates a new Tester.
func NewTester(params Parameters, source WitnessSource) *Tester {
	return &Tester{
		Parameters: params,
		Source:     source,
	}
}

// Test runs up to Trials congruence checks on p with freshly sampled
// witnesses and returns the classification.
//
// A single failed congruence proves p composite and terminates the
// loop immediately. In that case, if the preceding trial passed, its
// witness is reported as a fermat liar. Only the most recent passing
// witness is tracked, so earlier liars on the same candidate are not
// surfaced.
//
// Panics if p < 3.
func (t *Tester) Test(p uint64) Result {
	var lastPassing uint64
	hasPassing := false

	for trial := 0; trial < t.Parameters.Trials(); trial++ {
		a := t.Source.SampleWitness(p)

		if !CongruenceHolds(p, a) {
			return Result{
				Candidate: p,
				Witness:   a,
				Liar:      lastPassing,
				HasLiar:   hasPassing,
			}
		}

		lastPassing = a
		hasPassing = true
	}

	return Result{
		Candidate:     p,
		ProbablePrime: true,
	}
}
