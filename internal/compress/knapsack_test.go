package compress_test

import (
	"testing"

	"github.com/wikecd/revhist/internal/compress"
)

func TestExact_ClassicInstance(t *testing.T) {
	t.Parallel()

	values := []int64{60, 100, 120}
	weights := []int64{10, 20, 30}

	chosen, err := compress.Exact(values, weights, 50)
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}

	var totalV, totalW int64
	for _, i := range chosen {
		totalV += values[i]
		totalW += weights[i]
	}

	if totalW > 50 {
		t.Fatalf("selection exceeds capacity: weight=%d", totalW)
	}

	if totalV != 220 {
		t.Fatalf("expected optimal value 220, got %d", totalV)
	}
}

func TestExact_ZeroCapacity(t *testing.T) {
	t.Parallel()

	chosen, err := compress.Exact([]int64{5}, []int64{1}, 0)
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}

	if len(chosen) != 0 {
		t.Fatalf("expected no items chosen, got %v", chosen)
	}
}

func TestExact_CapacityOverflow(t *testing.T) {
	t.Parallel()

	n := 1000
	values := make([]int64, n)
	weights := make([]int64, n)

	for i := range values {
		values[i] = 1
		weights[i] = 1
	}

	_, err := compress.Exact(values, weights, compress.MaxKnapsackCells)
	if err == nil {
		t.Fatalf("expected ErrCapacityOverflow, got nil")
	}
}

func TestGreedy_NeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	values := []int64{60, 100, 120, 30, 15}
	weights := []int64{10, 20, 30, 5, 40}

	chosen := compress.Greedy(values, weights, 50)

	var totalW int64
	for _, i := range chosen {
		totalW += weights[i]
	}

	if totalW > 50 {
		t.Fatalf("greedy selection exceeds capacity: weight=%d", totalW)
	}
}

func TestGreedy_NeverBeatsExact(t *testing.T) {
	t.Parallel()

	values := []int64{60, 100, 120, 30, 15, 45}
	weights := []int64{10, 20, 30, 5, 40, 12}
	capacity := int64(55)

	exact, err := compress.Exact(values, weights, capacity)
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}

	greedy := compress.Greedy(values, weights, capacity)

	var exactV, greedyV int64
	for _, i := range exact {
		exactV += values[i]
	}

	for _, i := range greedy {
		greedyV += values[i]
	}

	if greedyV > exactV {
		t.Fatalf("greedy value %d exceeds exact optimum %d", greedyV, exactV)
	}
}

func TestFPTAS_FeasibleAndNearOptimal(t *testing.T) {
	t.Parallel()

	values := []int64{60, 100, 120, 30, 15, 45, 70}
	weights := []int64{10, 20, 30, 5, 40, 12, 18}
	capacity := int64(60)

	exact, err := compress.Exact(values, weights, capacity)
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}

	approx := compress.FPTAS(values, weights, capacity, 0.1)

	var exactV, approxW, approxV int64
	for _, i := range exact {
		exactV += values[i]
	}

	for _, i := range approx {
		approxW += weights[i]
		approxV += values[i]
	}

	if approxW > capacity {
		t.Fatalf("fptas selection exceeds capacity: weight=%d", approxW)
	}

	if float64(approxV) < 0.9*float64(exactV) {
		t.Fatalf("fptas value %d below (1-eps)*OPT = %.1f", approxV, 0.9*float64(exactV))
	}
}

func TestSparseDP_FeasibleWithinCapacity(t *testing.T) {
	t.Parallel()

	values := []int64{60, 100, 120, 30, 15}
	weights := []int64{10, 20, 30, 5, 40}

	chosen := compress.SparseDP(values, weights, 50, 1000)

	var totalW int64
	for _, i := range chosen {
		totalW += weights[i]
	}

	if totalW > 50 {
		t.Fatalf("sparse dp selection exceeds capacity: weight=%d", totalW)
	}
}

func TestAuto_ThresholdSelection(t *testing.T) {
	t.Parallel()

	small := make([]int64, 10)
	weights := make([]int64, 10)

	for i := range small {
		small[i] = int64(i + 1)
		weights[i] = int64(i + 1)
	}

	// Small n and capacity: should not panic and should respect capacity,
	// regardless of which internal strategy it dispatches to.
	chosen := compress.Auto(small, weights, 20, 0.1, 1000)

	var totalW int64
	for _, i := range chosen {
		totalW += weights[i]
	}

	if totalW > 20 {
		t.Fatalf("auto selection exceeds capacity: weight=%d", totalW)
	}
}
