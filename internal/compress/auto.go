package compress

// Auto picks a heuristic strategy based on problem shape, per the thresholds
// in the specification: small/cheap problems get sparse DP (often exact in
// practice), very large ones get FPTAS to bound time and memory, everything
// else gets greedy-with-swap.
func Auto(values, weights []int64, capacity int64, eps float64, maxStates int) []int {
	n := len(values)

	switch {
	case n <= 200 && capacity <= 200_000:
		return SparseDP(values, weights, capacity, maxStates)
	case n >= 2000:
		return FPTAS(values, weights, capacity, eps)
	default:
		return Greedy(values, weights, capacity)
	}
}
