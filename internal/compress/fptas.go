package compress

import "sort"

// FPTAS returns a (1-eps)*OPT approximation via value scaling. K is chosen
// as max(1, floor(eps*Vmax/m)); if scaling collapses every value to zero it
// falls back to Greedy.
func FPTAS(values, weights []int64, capacity int64, eps float64) []int {
	n := len(values)
	if n == 0 || capacity <= 0 {
		return nil
	}

	var vmax int64
	for _, v := range values {
		if v > vmax {
			vmax = v
		}
	}

	if vmax == 0 {
		return nil
	}

	k := int64(eps * float64(vmax) / float64(n))
	if k < 1 {
		k = 1
	}

	scaled := make([]int64, n)

	var vsum int64
	for i, v := range values {
		scaled[i] = v / k
		vsum += scaled[i]
	}

	if vsum == 0 {
		return Greedy(values, weights, capacity)
	}

	const inf = int64(1) << 62

	dp := make([]int64, vsum+1)
	for i := range dp {
		dp[i] = inf
	}

	dp[0] = 0

	type back struct{ prevV, idx int64 }

	parent := make([]back, vsum+1)
	for i := range parent {
		parent[i] = back{-1, -1}
	}

	for i := 0; i < n; i++ {
		sv, w := scaled[i], weights[i]
		if sv == 0 {
			continue
		}

		for v := vsum; v >= sv; v-- {
			if dp[v-sv]+w < dp[v] {
				dp[v] = dp[v-sv] + w
				parent[v] = back{v - sv, int64(i)}
			}
		}
	}

	var bestV int64

	for v := int64(0); v <= vsum; v++ {
		if dp[v] <= capacity {
			bestV = v
		}
	}

	var chosen []int

	cur := bestV
	for cur > 0 && parent[cur].prevV != -1 {
		chosen = append(chosen, int(parent[cur].idx))
		cur = parent[cur].prevV
	}

	return dedupSort(chosen)
}

func dedupSort(ixs []int) []int {
	seen := make(map[int]bool, len(ixs))

	out := ixs[:0]
	for _, i := range ixs {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}

	sort.Ints(out)

	return out
}
