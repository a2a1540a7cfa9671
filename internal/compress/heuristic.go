package compress

import (
	"math"
	"sort"
)

// Greedy sorts items by value/weight ratio descending (zero-weight items
// treated as infinite ratio), fills the capacity greedily, compares the
// result against the single best item that fits alone, and then runs a
// 1-swap local-improvement pass until no swap strictly improves total
// value. Ties are broken by lower item index.
func Greedy(values, weights []int64, capacity int64) []int {
	n := len(values)
	if n == 0 || capacity <= 0 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	ratio := func(i int) float64 {
		if weights[i] == 0 {
			return math.Inf(1)
		}

		return float64(values[i]) / float64(weights[i])
	}

	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := ratio(order[a]), ratio(order[b])
		if ra != rb {
			return ra > rb
		}

		return order[a] < order[b]
	})

	var chosen []int

	var totalW int64

	for _, i := range order {
		if totalW+weights[i] <= capacity {
			chosen = append(chosen, i)
			totalW += weights[i]
		}
	}

	valueOf := func(ixs []int) int64 {
		var s int64
		for _, i := range ixs {
			s += values[i]
		}

		return s
	}

	bestSingle := -1

	for i := 0; i < n; i++ {
		if weights[i] <= capacity {
			if bestSingle == -1 || values[i] > values[bestSingle] {
				bestSingle = i
			}
		}
	}

	best := chosen
	if bestSingle != -1 && values[bestSingle] > valueOf(best) {
		best = []int{bestSingle}
	}

	if len(best) == 0 {
		return nil
	}

	return swapImprove(values, weights, capacity, best)
}

// swapImprove runs the 1-swap local-improvement loop shared by Greedy: for
// each chosen/unchosen pair, swap if feasible and strictly improving, and
// repeat until no improving swap remains.
func swapImprove(values, weights []int64, capacity int64, initial []int) []int {
	n := len(values)

	chosenSet := make(map[int]bool, len(initial))
	for _, i := range initial {
		chosenSet[i] = true
	}

	var totalW, bestVal int64
	for i := range chosenSet {
		totalW += weights[i]
		bestVal += values[i]
	}

	improved := true
	for improved {
		improved = false

		outs := sortedKeys(chosenSet)
		for _, outI := range outs {
			for inI := 0; inI < n; inI++ {
				if chosenSet[inI] {
					continue
				}

				newW := totalW - weights[outI] + weights[inI]
				if newW > capacity {
					continue
				}

				newVal := bestVal - values[outI] + values[inI]
				if newVal > bestVal {
					delete(chosenSet, outI)
					chosenSet[inI] = true
					totalW = newW
					bestVal = newVal
					improved = true

					break
				}
			}

			if improved {
				break
			}
		}
	}

	return sortedKeys(chosenSet)
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Ints(out)

	return out
}

