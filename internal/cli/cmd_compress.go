package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/config"
	"github.com/wikecd/revhist/internal/revhist"
	"github.com/wikecd/revhist/internal/revsource"
)

// CompressCmd builds the "compress" command: reads a revision history from
// a JSONL file and writes a compressed artifact to disk.
func CompressCmd(cfg config.Config, logger *slog.Logger) *Command {
	flags := flag.NewFlagSet("compress", flag.ContinueOnError)

	flagTitle := flags.StringP("title", "t", "", "Document title (required)")
	flagIn := flags.StringP("in", "i", "", "Input JSONL revision file (required)")
	flagOut := flags.StringP("out", "o", "", "Output artifact path (required)")
	flagSolver := flags.String("solver", firstNonEmpty(cfg.Solver, string(revhist.SolverHeuristic)), "Solver: exact|heuristic")
	flagStrategy := flags.String("strategy", firstNonEmpty(cfg.Strategy, string(revhist.StrategyAuto)), "Heuristic strategy: auto|greedy|fptas|sparse")
	flagEps := flags.Float64("eps", firstNonZeroFloat(cfg.Eps, 0.1), "FPTAS approximation epsilon")
	flagMaxStates := flags.Int("max-states", firstNonZeroInt(cfg.MaxStates, 100_000), "Sparse-DP state cap")
	flagTimeBudget := flags.Int64("time-budget", firstNonZeroInt64(derefInt64(cfg.TimeBudget), 0), "Knapsack time budget (0 = auto n^2, capped)")

	return &Command{
		Flags: flags,
		Usage: "compress -t <title> -i <revisions.jsonl> -o <artifact> [flags]",
		Short: "Compress a revision history into an artifact",
		Long:  "Reads a sequence of revisions from a JSONL file and writes a compressed, self-describing artifact using the knapsack-budgeted anchor/delta scheme.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrInvalidArgument, args)
			}

			if *flagTitle == "" || *flagIn == "" || *flagOut == "" {
				return fmt.Errorf("%w: --title, --in and --out are required", ErrInvalidArgument)
			}

			f, err := os.Open(*flagIn)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			revs, err := revsource.ReadJSONL(f)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}

			opts := revhist.CompressOptions{
				Solver:    revhist.Solver(*flagSolver),
				Strategy:  revhist.Strategy(*flagStrategy),
				Eps:       *flagEps,
				MaxStates: *flagMaxStates,
				Logger:    logger,
			}
			if *flagTimeBudget > 0 {
				opts.TimeBudget = flagTimeBudget
			}

			art, err := revhist.Compress(*flagTitle, revs, opts)
			if err != nil {
				return fmt.Errorf("compress: %w", err)
			}

			if err := artifact.Save(*flagOut, art); err != nil {
				return fmt.Errorf("save artifact: %w", err)
			}

			o.Printf("compressed %d revisions into %d anchors (%s -> %s)\n", art.Meta.Count, len(art.Anchors), *flagIn, *flagOut)

			return nil
		},
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstNonZeroFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}

	return 0
}

func firstNonZeroInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}

	return 0
}

func firstNonZeroInt64(vals ...int64) int64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}

	return 0
}

// derefInt64 reads a possibly-nil config pointer field, returning 0 for nil
// (config.Config.TimeBudget is a pointer so "unset" and "explicitly 0" stay
// distinguishable on the JSON side, even though the CLI default collapses
// them here).
func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}

	return *p
}
