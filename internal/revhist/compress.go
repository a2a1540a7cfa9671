package revhist

import (
	"fmt"
	"log/slog"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/compress"
	"github.com/wikecd/revhist/internal/patch"
)

// Solver selects between the exact and heuristic knapsack families.
type Solver string

const (
	SolverHeuristic Solver = "heuristic"
	SolverExact     Solver = "exact"
)

// Strategy selects a heuristic knapsack when Solver is SolverHeuristic.
type Strategy string

const (
	StrategyAuto   Strategy = "auto"
	StrategyGreedy Strategy = "greedy"
	StrategyFPTAS  Strategy = "fptas"
	StrategySparse Strategy = "sparse"
)

// CompressOptions tunes the budgeted selection. Zero values pick the
// documented defaults in Compress.
type CompressOptions struct {
	// TimeBudget is the knapsack capacity C. nil selects n*n, capped by
	// TimeBudgetCap.
	TimeBudget *int64

	// TimeBudgetCap bounds the default n*n budget so an omitted flag never
	// produces a pathologically large exact-DP table. Zero selects
	// MaxDefaultTimeBudget; negative means "no cap". Only applies when
	// TimeBudget is nil.
	TimeBudgetCap int64

	Solver    Solver
	Strategy  Strategy
	Eps       float64
	MaxStates int

	Logger *slog.Logger
}

// MaxDefaultTimeBudget is the default TimeBudgetCap used by Compress when
// the caller leaves CompressOptions.TimeBudgetCap at zero.
const MaxDefaultTimeBudget = 10_000_000

func (o CompressOptions) withDefaults() CompressOptions {
	if o.Solver == "" {
		o.Solver = SolverHeuristic
	}

	if o.Strategy == "" {
		o.Strategy = StrategyAuto
	}

	if o.Eps == 0 {
		o.Eps = 0.1
	}

	if o.MaxStates == 0 {
		o.MaxStates = 100_000
	}

	if o.TimeBudgetCap == 0 {
		o.TimeBudgetCap = MaxDefaultTimeBudget
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Compress builds an artifact from title and revs per the documented
// pipeline: cost model -> knapsack selection -> partitioner -> patch
// builder -> artifact assembly. An empty revs slice is not an error: it
// yields a valid, empty artifact.
func Compress(title string, revs []Revision, opts CompressOptions) (*artifact.Artifact, error) {
	opts = opts.withDefaults()

	n := len(revs)
	if n == 0 {
		return &artifact.Artifact{
			Title: title,
			Meta:  artifact.Meta{Title: title, Count: 0, Version: artifact.FormatVersion, SizeUnit: "bytes", Solver: string(opts.Solver), Strategy: string(opts.Strategy)},
		}, nil
	}

	sizes := make([]int64, n)
	for i, r := range revs {
		sizes[i] = int64(len(r.Text))
	}

	timeBudget, clamped := resolveTimeBudget(n, opts)
	if clamped {
		opts.Logger.Warn("default time budget clamped", "n", n, "cap", opts.TimeBudgetCap)
	}

	chosen, err := selectTransitions(sizes, timeBudget, opts)
	if err != nil {
		return nil, err
	}

	anchors, chains := compress.Partition(n, chosen)

	patches := make(map[[2]int]patch.Patch)
	for _, chain := range chains {
		for i := 1; i < len(chain); i++ {
			u, v := chain[i-1], chain[i]
			patches[[2]int{u, v}] = patch.Diff(revs[u].Text, revs[v].Text)
		}
	}

	baseTexts := make(map[int]string, len(anchors))
	for _, a := range anchors {
		baseTexts[a] = revs[a].Text
	}

	revids := make([]uint64, n)
	timestamps := make([]string, n)

	for i, r := range revs {
		revids[i] = r.RevID
		timestamps[i] = r.Timestamp.UTC().Format("2006-01-02T15:04:05Z")
	}

	partitions := make([][]int, len(chains))
	chainLengths := make([]int, len(chains))

	for i, c := range chains {
		partitions[i] = append([]int(nil), c...)
		chainLengths[i] = len(c)
	}

	spaceCost := spaceCostFromPartitions(sizes, chains)
	timeCost := timeCostFromPartitions(sizes, chains)

	var origSize int64
	for _, s := range sizes {
		origSize += s
	}

	buildID, err := newBuildID()
	if err != nil {
		return nil, fmt.Errorf("revhist: generate build id: %w", err)
	}

	meta := artifact.Meta{
		Version:      artifact.FormatVersion,
		Title:        title,
		Count:        n,
		Partitions:   partitions,
		RevIDs:       revids,
		Timestamps:   timestamps,
		Sizes:        sizes,
		OrigSize:     origSize,
		SpaceCost:    spaceCost,
		TimeCost:     timeCost,
		Solver:       string(opts.Solver),
		Strategy:     string(opts.Strategy),
		TimeBudget:   timeBudget,
		ChainLengths: chainLengths,
		SizeUnit:     "bytes",
		BuildID:      buildID,
	}

	art := &artifact.Artifact{
		Title:     title,
		Anchors:   anchors,
		Patches:   patches,
		Meta:      meta,
		BaseTexts: baseTexts,
	}

	return art, nil
}

func resolveTimeBudget(n int, opts CompressOptions) (budget int64, clamped bool) {
	if opts.TimeBudget != nil {
		return *opts.TimeBudget, false
	}

	return compress.DefaultTimeBudget(n, opts.TimeBudgetCap)
}

func selectTransitions(sizes []int64, timeBudget int64, opts CompressOptions) (map[int]bool, error) {
	switch opts.Solver {
	case SolverExact:
	case SolverHeuristic:
		switch opts.Strategy {
		case StrategyAuto, StrategyGreedy, StrategyFPTAS, StrategySparse:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, opts.Solver)
	}

	values, weights, indexMap := compress.Costs(sizes)
	if len(values) == 0 {
		return map[int]bool{}, nil
	}

	var localChosen []int

	switch opts.Solver {
	case SolverExact:
		var err error

		localChosen, err = compress.Exact(values, weights, timeBudget)
		if err != nil {
			return nil, err
		}
	case SolverHeuristic:
		switch opts.Strategy {
		case StrategyGreedy:
			localChosen = compress.Greedy(values, weights, timeBudget)
		case StrategyFPTAS:
			localChosen = compress.FPTAS(values, weights, timeBudget, opts.Eps)
		case StrategySparse:
			localChosen = compress.SparseDP(values, weights, timeBudget, opts.MaxStates)
		case StrategyAuto:
			localChosen = compress.Auto(values, weights, timeBudget, opts.Eps, opts.MaxStates)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, opts.Solver)
	}

	chosen := make(map[int]bool, len(localChosen))
	for _, li := range localChosen {
		chosen[indexMap[li]] = true
	}

	return chosen, nil
}

func spaceCostFromPartitions(sizes []int64, chains [][]int) int64 {
	var total int64

	for _, chain := range chains {
		if len(chain) == 0 {
			continue
		}

		if len(chain) == 1 {
			total += sizes[chain[0]]

			continue
		}

		total += sizes[chain[0]]
		for i := 1; i < len(chain); i++ {
			total += abs64(sizes[chain[i]] - sizes[chain[i-1]])
		}
	}

	return total
}

func timeCostFromPartitions(sizes []int64, chains [][]int) int64 {
	var total int64

	for _, chain := range chains {
		if len(chain) == 0 {
			continue
		}

		if len(chain) == 1 {
			total++

			continue
		}

		subtotal := int64(1)
		for i := 1; i < len(chain); i++ {
			subtotal += sizes[chain[i-1]] + abs64(sizes[chain[i]]-sizes[chain[i-1]])
		}

		total += subtotal
	}

	return total
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
