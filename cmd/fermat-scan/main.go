// fermat-scan scans a range of integers for probable primes
// using Fermat's Little Theorem, printing one line per candidate.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sp301415/fermat-scan/csprng"
	"github.com/sp301415/fermat-scan/fermat"
	"github.com/sp301415/fermat-scan/scan"
	"github.com/sp301415/fermat-scan/sieve"
)

var (
	maxCandidate uint64
	trials       int
	seedHex      string
	prngName     string
	check        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "fermat-scan",
	Short: "Probabilistic primality scan using Fermat's Little Theorem",
	Long: `fermat-scan tests every integer in [3, max) for primality by sampling
random witnesses a and checking a^p = a (mod p). A failed congruence proves
the candidate composite; surviving all trials makes it a probable prime.
Witnesses that passed before a failure are reported as fermat liars.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Uint64Var(&maxCandidate, "max", fermat.ParamsDefault.Max, "exclusive upper bound of the scan")
	rootCmd.Flags().IntVar(&trials, "trials", fermat.ParamsDefault.Trials, "witnesses sampled per candidate")
	rootCmd.Flags().StringVar(&seedHex, "seed", "", "hex seed for the witness sampler (default: nondeterministic)")
	rootCmd.Flags().StringVar(&prngName, "prng", "blake2b", "witness sampler prng: blake2b or aes")
	rootCmd.Flags().BoolVar(&check, "check", false, "cross-check classifications against a deterministic sieve")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	params := fermat.ParametersLiteral{
		Trials: trials,
		Max:    maxCandidate,
	}.Compile()

	sampler, err := newSampler()
	if err != nil {
		return err
	}

	scanner := scan.NewScanner(params, fermat.NewWitnessSampler(sampler), logger)

	var reporter scan.Reporter = scan.NewLineReporter(os.Stdout)
	var checker *scan.CheckReporter
	if check {
		checker = scan.NewCheckReporter(reporter, sieve.New(params.Max()), logger)
		reporter = checker
	}

	if err := scanner.Scan(reporter); err != nil {
		return err
	}

	if checker != nil {
		logger.Info("sieve cross-check complete",
			zap.Int("mismatches", checker.Mismatches()),
		)
	}

	return nil
}

// newSampler builds the witness prng, seeded once for the whole scan.
func newSampler() (csprng.Sampler, error) {
	var seed []byte
	if seedHex != "" {
		var err error
		if seed, err = hex.DecodeString(seedHex); err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
	}

	switch prngName {
	case "blake2b":
		if seed != nil {
			return csprng.NewUniformSamplerWithSeed(seed), nil
		}
		return csprng.NewUniformSampler(), nil
	case "aes":
		if seed != nil {
			return csprng.NewStreamSamplerWithSeed(seed), nil
		}
		return csprng.NewStreamSampler(), nil
	default:
		return nil, fmt.Errorf("unknown prng %q", prngName)
	}
}

// newLogger builds a stderr logger. Result lines go to stdout through
// the reporter, never through the logger.
func newLogger() (*zap.Logger, error) {
	if !verbose && !check {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
