package scan

import (
	"go.uber.org/zap"

	"github.com/sp301415/fermat-scan/fermat"
)

// minCandidate is the smallest candidate the scanner tests.
// Fermat's congruence needs a witness interval [2, p-1],
// which is nonempty only from p = 3.
const minCandidate = 3

// Scanner tests every integer in [3, Max) in increasing order.
// Even candidates are scanned too; they are proven composite
// almost immediately.
type Scanner struct {
	// Parameters is the parameters for this Scanner.
	Parameters fermat.Parameters

	tester *fermat.Tester
	logger *zap.Logger
}

// NewScanner creates a new Scanner.
// A nil logger disables logging.
func NewScanner(params fermat.Parameters, source fermat.WitnessSource, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{
		Parameters: params,

		tester: fermat.NewTester(params, source),
		logger: logger,
	}
}

// Scan tests candidates 3, 4, ..., Max-1 sequentially and forwards
// each result to reporter. It stops at the first reporter error;
// no result is reported partially.
func (s *Scanner) Scan(reporter Reporter) error {
	var composites, probablePrimes int

	for p := uint64(minCandidate); p < s.Parameters.Max(); p++ {
		res := s.tester.Test(p)

		if res.ProbablePrime {
			probablePrimes++
		} else {
			composites++
		}
		s.logger.Debug("candidate tested",
			zap.Uint64("candidate", p),
			zap.Bool("probablePrime", res.ProbablePrime),
		)

		if err := reporter.Report(res); err != nil {
			return err
		}
	}

	s.logger.Info("scan complete",
		zap.Uint64("max", s.Parameters.Max()),
		zap.Int("composites", composites),
		zap.Int("probablePrimes", probablePrimes),
	)

	return nil
}
