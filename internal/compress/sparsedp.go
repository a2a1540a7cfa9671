package compress

import "sort"

// sparseState is a single (weight -> value) reachability state, keeping
// enough backpointer information to reconstruct the chosen item set.
type sparseState struct {
	value    int64
	parentW  int64
	chosenI  int
	hasChose bool
}

// SparseDP maintains a layered map of weight -> best value reachable at
// that weight, pruning dominated states (same or higher weight, same or
// lower value) after every item, and thinning by deterministic stride when
// the state count exceeds maxStates. This trades optimality for a bounded
// memory/time footprint; feasibility is always preserved.
func SparseDP(values, weights []int64, capacity int64, maxStates int) []int {
	n := len(values)
	if n == 0 || capacity <= 0 {
		return nil
	}

	type layer map[int64]sparseState

	layers := make([]layer, 0, n+1)
	cur := layer{0: {value: 0, parentW: -1, chosenI: -1}}
	layers = append(layers, cur)

	for i := 0; i < n; i++ {
		v, w := values[i], weights[i]

		nxt := make(layer, len(cur))
		for wt, st := range cur {
			nxt[wt] = st
		}

		for wt, st := range cur {
			nwt := wt + w
			if nwt > capacity {
				continue
			}

			nval := st.value + v
			if prev, ok := nxt[nwt]; !ok || nval > prev.value {
				nxt[nwt] = sparseState{value: nval, parentW: wt, chosenI: i, hasChose: true}
			}
		}

		pruned := dominancePrune(nxt)
		if maxStates > 0 && len(pruned) > maxStates {
			pruned = thin(pruned, maxStates)
		}

		cur = pruned
		layers = append(layers, cur)
	}

	if len(cur) == 0 {
		return nil
	}

	var bestW int64

	var bestVal int64 = -1

	for wt, st := range cur {
		if st.value > bestVal {
			bestVal = st.value
			bestW = wt
		}
	}

	var chosen []int

	wcur := bestW
	for li := len(layers) - 1; li > 0; li-- {
		st, ok := layers[li][wcur]
		if !ok {
			continue
		}

		if st.hasChose {
			chosen = append(chosen, st.chosenI)
			wcur = st.parentW
		}
	}

	return dedupSort(chosen)
}

func dominancePrune(m map[int64]sparseState) map[int64]sparseState {
	weights := make([]int64, 0, len(m))
	for wt := range m {
		weights = append(weights, wt)
	}

	sort.Slice(weights, func(a, b int) bool { return weights[a] < weights[b] })

	pruned := make(map[int64]sparseState, len(m))

	var bestVal int64 = -1

	for _, wt := range weights {
		st := m[wt]
		if st.value > bestVal {
			pruned[wt] = st
			bestVal = st.value
		}
	}

	return pruned
}

// thin keeps a uniformly spaced subset of weights (by ascending weight
// order) so state count never exceeds maxStates. Deterministic, not an
// optimality guarantee.
func thin(m map[int64]sparseState, maxStates int) map[int64]sparseState {
	weights := make([]int64, 0, len(m))
	for wt := range m {
		weights = append(weights, wt)
	}

	sort.Slice(weights, func(a, b int) bool { return weights[a] < weights[b] })

	step := len(weights) / maxStates
	if step < 1 {
		step = 1
	}

	out := make(map[int64]sparseState, maxStates+1)
	for idx, wt := range weights {
		if idx%step == 0 {
			out[wt] = m[wt]
		}
	}

	return out
}
