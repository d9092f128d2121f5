package scan_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/fermat-scan/csprng"
	"github.com/sp301415/fermat-scan/fermat"
	"github.com/sp301415/fermat-scan/scan"
	"github.com/sp301415/fermat-scan/sieve"
)

// recordReporter collects every reported result.
type recordReporter struct {
	results []fermat.Result
}

func (r *recordReporter) Report(res fermat.Result) error {
	r.results = append(r.results, res)
	return nil
}

// failReporter fails after a fixed number of reports.
type failReporter struct {
	remaining int
	reported  int
}

func (r *failReporter) Report(res fermat.Result) error {
	if r.remaining == 0 {
		return errors.New("sink closed")
	}
	r.remaining--
	r.reported++
	return nil
}

func newTestScanner(max uint64, seed string) *scan.Scanner {
	params := fermat.ParametersLiteral{Trials: 20, Max: max}.Compile()
	sampler := fermat.NewWitnessSampler(csprng.NewUniformSamplerWithSeed([]byte(seed)))
	return scan.NewScanner(params, sampler, nil)
}

func TestScanner(t *testing.T) {
	t.Run("RangeCoverage", func(t *testing.T) {
		reporter := &recordReporter{}
		err := newTestScanner(20, "coverage-test").Scan(reporter)

		assert.NoError(t, err)
		assert.Len(t, reporter.results, 17)
		for i, res := range reporter.results {
			assert.Equal(t, uint64(3+i), res.Candidate)
		}
	})

	t.Run("NeverDisprovesPrime", func(t *testing.T) {
		reporter := &recordReporter{}
		err := newTestScanner(200, "classify-test").Scan(reporter)
		assert.NoError(t, err)

		s := sieve.New(200)
		for _, res := range reporter.results {
			if s.IsPrime(res.Candidate) {
				assert.True(t, res.ProbablePrime, "prime %d misclassified", res.Candidate)
			} else {
				// A proven composite must carry a valid witness.
				if !res.ProbablePrime {
					assert.False(t, fermat.CongruenceHolds(res.Candidate, res.Witness))
				}
			}
		}
	})

	t.Run("ReporterErrorAborts", func(t *testing.T) {
		reporter := &failReporter{remaining: 5}
		err := newTestScanner(1000, "abort-test").Scan(reporter)

		assert.Error(t, err)
		assert.Equal(t, 5, reporter.reported)
	})
}

func TestLineReporter(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		assert.Equal(t,
			"7 is a probable prime",
			scan.FormatResult(fermat.Result{Candidate: 7, ProbablePrime: true}),
		)
		assert.Equal(t,
			"4 is composite - 2 is a composite witness",
			scan.FormatResult(fermat.Result{Candidate: 4, Witness: 2}),
		)
		assert.Equal(t,
			"15 is composite - 2 is a composite witness - 4 is a fermat liar for 15",
			scan.FormatResult(fermat.Result{Candidate: 15, Witness: 2, Liar: 4, HasLiar: true}),
		)
	})

	t.Run("OneLinePerCandidate", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := newTestScanner(100, "line-test").Scan(scan.NewLineReporter(buf))
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 97)
		assert.Equal(t, "3 is a probable prime", lines[0])
		assert.Equal(t, "7 is a probable prime", lines[4])
	})
}

func TestCheckReporter(t *testing.T) {
	t.Run("FlagsSurvivingComposite", func(t *testing.T) {
		inner := &recordReporter{}
		checker := scan.NewCheckReporter(inner, sieve.New(1000), nil)

		assert.NoError(t, checker.Report(fermat.Result{Candidate: 561, ProbablePrime: true}))
		assert.NoError(t, checker.Report(fermat.Result{Candidate: 7, ProbablePrime: true}))
		assert.NoError(t, checker.Report(fermat.Result{Candidate: 8, Witness: 3}))

		assert.Equal(t, 1, checker.Mismatches())
		assert.Len(t, inner.results, 3)
	})
}
