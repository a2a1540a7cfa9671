// Package compress implements the revision-chain cost model and the
// knapsack solvers that select which transitions are stored as deltas.
package compress

// Costs derives per-transition value/weight pairs from a revision size
// vector. sizes has length n; the returned values/weights are renumbered to
// [0, m') after dropping transitions with non-positive value or weight
// (they can never beneficially be selected). indexMap[j] recovers the
// original transition index (in 1..n-1) for the j-th returned item.
func Costs(sizes []int64) (values, weights []int64, indexMap []int) {
	n := len(sizes)
	if n < 2 {
		return nil, nil, nil
	}

	values = make([]int64, 0, n-1)
	weights = make([]int64, 0, n-1)
	indexMap = make([]int, 0, n-1)

	for i := 1; i < n; i++ {
		d := 2 * abs64(sizes[i]-sizes[i-1])
		v := d - sizes[i-1]
		w := sizes[i-1] + d

		if v <= 0 || w <= 0 {
			continue
		}

		values = append(values, v)
		weights = append(weights, w)
		indexMap = append(indexMap, i)
	}

	return values, weights, indexMap
}

// DefaultTimeBudget returns the empirical default capacity n*n, clamped to
// cap when positive. A clamp is a tuning knob, not a silent contract
// change; callers that care should inspect the returned bool.
func DefaultTimeBudget(n int, cap int64) (budget int64, clamped bool) {
	budget = int64(n) * int64(n)
	if cap > 0 && budget > cap {
		return cap, true
	}

	return budget, false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
