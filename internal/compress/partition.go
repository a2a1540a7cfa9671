package compress

// Partition maps a set of chosen transitions (original indices 1..n-1) to
// an anchor set and the list of contiguous chains they form. Position 0 is
// always an anchor. A position k>0 is an anchor iff transition k was not
// chosen.
func Partition(n int, chosen map[int]bool) (anchors []int, chains [][]int) {
	if n <= 0 {
		return nil, nil
	}

	chains = make([][]int, 0)
	cur := []int{0}

	for i := 1; i < n; i++ {
		if chosen[i] {
			cur = append(cur, i)
		} else {
			chains = append(chains, cur)
			cur = []int{i}
		}
	}

	chains = append(chains, cur)

	anchors = make([]int, 0, len(chains))
	for _, c := range chains {
		anchors = append(anchors, c[0])
	}

	return anchors, chains
}
