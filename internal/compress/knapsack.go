package compress

import "fmt"

// Exact runs the classical 0/1 knapsack DP over items (values[i],
// weights[i]) and integer capacity, returning the subset of indices that
// maximizes total value subject to total weight <= capacity. Ties are
// broken in favor of the lower-index item.
func Exact(values, weights []int64, capacity int64) ([]int, error) {
	n := len(values)
	if n == 0 || capacity <= 0 {
		return nil, nil
	}

	if int64(n)*capacity > MaxKnapsackCells {
		return nil, fmt.Errorf("%w: %d items * capacity %d exceeds %d cells", ErrCapacityOverflow, n, capacity, MaxKnapsackCells)
	}

	cap := int(capacity)

	// dp[i][c] = best value using items[0:i] within weight c.
	dp := make([][]int64, n+1)
	for i := range dp {
		dp[i] = make([]int64, cap+1)
	}

	for i := 1; i <= n; i++ {
		v, w := values[i-1], weights[i-1]
		wi := int(w)

		for c := 0; c <= cap; c++ {
			dp[i][c] = dp[i-1][c]

			if wi <= c {
				if cand := v + dp[i-1][c-wi]; cand > dp[i][c] {
					dp[i][c] = cand
				}
			}
		}
	}

	chosen := make([]int, 0)
	c := cap

	for i := n; i > 0; i-- {
		if dp[i][c] != dp[i-1][c] {
			chosen = append(chosen, i-1)
			c -= int(weights[i-1])
		}
	}

	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}

	return chosen, nil
}
