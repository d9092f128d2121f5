// Package scan drives the fermat tester over a range of candidates
// and forwards the results to a reporter.
package scan

import (
	"fmt"
	"io"

	"github.com/sp301415/fermat-scan/fermat"
)

// Reporter consumes one result per scanned candidate.
type Reporter interface {
	// Report is called once per candidate, in increasing candidate order.
	// A non-nil error aborts the scan.
	Report(res fermat.Result) error
}

// LineReporter writes one human-readable line per result.
// LineReporter implements [Reporter].
type LineReporter struct {
	w io.Writer
}

// NewLineReporter creates a new LineReporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{
		w: w,
	}
}

// Report writes the result as a single line.
func (r *LineReporter) Report(res fermat.Result) error {
	_, err := io.WriteString(r.w, FormatResult(res)+"\n")
	return err
}

// FormatResult formats a result as a single line, without trailing newline.
//
// Probable prime:      "{p} is a probable prime"
// Composite, no liar:  "{p} is composite - {witness} is a composite witness"
// Composite with liar: "{p} is composite - {witness} is a composite witness - {liar} is a fermat liar for {p}"
func FormatResult(res fermat.Result) string {
	if res.ProbablePrime {
		return fmt.Sprintf("%d is a probable prime", res.Candidate)
	}

	line := fmt.Sprintf("%d is composite - %d is a composite witness", res.Candidate, res.Witness)
	if res.HasLiar {
		line += fmt.Sprintf(" - %d is a fermat liar for %d", res.Liar, res.Candidate)
	}
	return line
}
