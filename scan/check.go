package scan

import (
	"go.uber.org/zap"

	"github.com/sp301415/fermat-scan/fermat"
	"github.com/sp301415/fermat-scan/sieve"
)

// CheckReporter forwards results to an inner reporter while comparing
// each classification against a deterministic sieve.
// Disagreements are logged; composites that survive all trials
// (Carmichael numbers, most likely 561) show up here.
// CheckReporter implements [Reporter].
type CheckReporter struct {
	inner  Reporter
	sieve  *sieve.Sieve
	logger *zap.Logger

	mismatches int
}

// NewCheckReporter creates a new CheckReporter wrapping inner.
// The sieve must cover every candidate that will be reported.
// A nil logger disables logging.
func NewCheckReporter(inner Reporter, s *sieve.Sieve, logger *zap.Logger) *CheckReporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CheckReporter{
		inner:  inner,
		sieve:  s,
		logger: logger,
	}
}

// Report compares the result against the sieve, then forwards it.
func (r *CheckReporter) Report(res fermat.Result) error {
	isPrime := r.sieve.IsPrime(res.Candidate)

	switch {
	case res.ProbablePrime && !isPrime:
		r.mismatches++
		r.logger.Warn("composite classified as probable prime",
			zap.Uint64("candidate", res.Candidate),
		)
	case !res.ProbablePrime && isPrime:
		// Cannot happen: a failed congruence is a proof of compositeness.
		r.mismatches++
		r.logger.Error("prime classified as composite",
			zap.Uint64("candidate", res.Candidate),
			zap.Uint64("witness", res.Witness),
		)
	}

	return r.inner.Report(res)
}

// Mismatches returns the number of disagreements with the sieve so far.
func (r *CheckReporter) Mismatches() int {
	return r.mismatches
}
