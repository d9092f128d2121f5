// Package fermat implements probabilistic primality testing
// based on Fermat's Little Theorem:
// if p is prime and 1 < a < p, then a^p = a (mod p).
package fermat

// ParametersLiteral is a structure for scan parameters.
type ParametersLiteral struct {
	// Trials is the number of witnesses sampled per candidate.
	Trials int
	// Max is the exclusive upper bound of the scanned range [3, Max).
	Max uint64
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.Trials <= 0:
		panic("Trials must be positive")
	case p.Max < 4:
		panic("Max must be at least 4")
	}

	return Parameters{
		trials: p.Trials,
		max:    p.Max,
	}
}

// Parameters is a read-only structure for scan parameters.
type Parameters struct {
	trials int
	max    uint64
}

// Trials returns the number of witnesses sampled per candidate.
func (p Parameters) Trials() int {
	return p.trials
}

// Max returns the exclusive upper bound of the scanned range.
func (p Parameters) Max() uint64 {
	return p.max
}

// Literal returns the ParametersLiteral of the parameters.
func (p Parameters) Literal() ParametersLiteral {
	return ParametersLiteral{
		Trials: p.trials,
		Max:    p.max,
	}
}
