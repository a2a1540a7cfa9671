package compress

import "errors"

// ErrCapacityOverflow reports that the exact knapsack DP table would exceed
// the configured memory safety bound. Callers should retry with a
// heuristic strategy.
var ErrCapacityOverflow = errors.New("knapsack: capacity overflow")

// MaxKnapsackCells bounds the exact solver's DP table size (items *
// capacity). Exact returns ErrCapacityOverflow before allocating a table
// larger than this.
const MaxKnapsackCells = 200_000_000
