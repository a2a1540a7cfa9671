package artifact

import (
	"fmt"

	"github.com/wikecd/revhist/internal/patch"
)

// RetrieveRange materializes positions start, start+1, ..., start+length
// by locating the chain containing start, seeding from its anchor's base
// text, walking forward through patches to start, and then continuing
// forward across chain boundaries (reseeding from the next anchor's base
// text) until start+length is reached.
func RetrieveRange(a *Artifact, start, length int) ([]string, error) {
	n := a.Meta.Count
	if start < 0 || length < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d length=%d count=%d", ErrOutOfRange, start, length, n)
	}

	chains := a.Partitions()

	chainOf, posInChain := indexChains(chains)

	chainIdx, ok := chainOf[start]
	if !ok {
		return nil, fmt.Errorf("%w: position %d not covered by any chain", ErrOutOfRange, start)
	}

	chain := chains[chainIdx]
	base := chain[0]

	curText, err := walkTo(a, chain, base, posInChain[start])
	if err != nil {
		return nil, err
	}

	results := []string{curText}

	curIdx := start
	curPosInChain := posInChain[start]

	end := start + length
	for curIdx < end {
		nextIdx := curIdx + 1
		if nextIdx >= n {
			break
		}

		if curPosInChain+1 < len(chain) && chain[curPosInChain+1] == nextIdx {
			p, ok := a.Patches[[2]int{curIdx, nextIdx}]
			if !ok {
				return nil, fmt.Errorf("%w: %d->%d", ErrMissingPatch, curIdx, nextIdx)
			}

			curText, err = patch.Apply(curText, p)
			if err != nil {
				return nil, err
			}

			curPosInChain++
		} else {
			nextChainIdx, ok := chainOf[nextIdx]
			if !ok {
				return nil, fmt.Errorf("%w: position %d not covered by any chain", ErrOutOfRange, nextIdx)
			}

			chain = chains[nextChainIdx]
			curPosInChain = posInChain[nextIdx]

			txt, ok := a.BaseTexts[chain[0]]
			if !ok {
				return nil, fmt.Errorf("%w: %d", ErrMissingBase, chain[0])
			}

			curText = txt
		}

		results = append(results, curText)
		curIdx = nextIdx
	}

	return results, nil
}

// walkTo seeds from the chain's anchor base text and applies patches up to
// (and including) the chain position at targetPos.
func walkTo(a *Artifact, chain []int, base, targetPos int) (string, error) {
	text, ok := a.BaseTexts[base]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrMissingBase, base)
	}

	for i := 1; i <= targetPos; i++ {
		u, v := chain[i-1], chain[i]

		p, ok := a.Patches[[2]int{u, v}]
		if !ok {
			return "", fmt.Errorf("%w: %d->%d", ErrMissingPatch, u, v)
		}

		var err error

		text, err = patch.Apply(text, p)
		if err != nil {
			return "", err
		}
	}

	return text, nil
}

// indexChains builds position -> chain index and position -> offset
// within that chain, for O(1) lookups during the walk.
func indexChains(chains [][]int) (chainOf, posInChain map[int]int) {
	chainOf = make(map[int]int)
	posInChain = make(map[int]int)

	for ci, chain := range chains {
		for pi, pos := range chain {
			chainOf[pos] = ci
			posInChain[pos] = pi
		}
	}

	return chainOf, posInChain
}
