package artifact_test

import (
	"testing"

	"github.com/wikecd/revhist/internal/artifact"
)

func TestRetrieveByRevID_PreservesRequestOrder(t *testing.T) {
	t.Parallel()

	a := sampleArtifact()

	got, err := artifact.RetrieveByRevID(a, []uint64{13, 10}, artifact.MissingError, nil)
	if err != nil {
		t.Fatalf("RetrieveByRevID: %v", err)
	}

	want := []string{"x\ny\nz\n", "a\nb\n"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRetrieveByRevID_MissingPolicies(t *testing.T) {
	t.Parallel()

	a := sampleArtifact()

	if _, err := artifact.RetrieveByRevID(a, []uint64{999}, artifact.MissingError, nil); err == nil {
		t.Fatalf("expected error under MissingError policy")
	}

	var warned uint64

	got, err := artifact.RetrieveByRevID(a, []uint64{999}, artifact.MissingWarn, func(id uint64) { warned = id })
	if err != nil {
		t.Fatalf("RetrieveByRevID (warn): %v", err)
	}

	if warned != 999 {
		t.Fatalf("onMissing not invoked with offending id, got %d", warned)
	}

	if len(got) != 0 {
		t.Fatalf("expected no results under MissingWarn, got %v", got)
	}

	got, err = artifact.RetrieveByRevID(a, []uint64{999}, artifact.MissingIgnore, nil)
	if err != nil {
		t.Fatalf("RetrieveByRevID (ignore): %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected no results under MissingIgnore, got %v", got)
	}
}

func TestRetrieveByTime_WindowIsInclusiveByDefault(t *testing.T) {
	t.Parallel()

	a := sampleArtifact()

	got, err := artifact.RetrieveByTime(a, "2024-01-01T01:00:00Z", "2024-01-01T02:00:00Z", true)
	if err != nil {
		t.Fatalf("RetrieveByTime: %v", err)
	}

	want := []string{"a\nc\n", "x\ny\n"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRetrieveByTime_DateOnlyBoundsExpandToDayBoundaries(t *testing.T) {
	t.Parallel()

	a := sampleArtifact()

	got, err := artifact.RetrieveByTime(a, "2024-01-01", "2024-01-01", true)
	if err != nil {
		t.Fatalf("RetrieveByTime: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected all 4 positions within the single day, got %d", len(got))
	}
}

func TestRetrieveByTime_EmptyWindowIsNotAnError(t *testing.T) {
	t.Parallel()

	a := sampleArtifact()

	got, err := artifact.RetrieveByTime(a, "2030-01-01", "2030-01-02", true)
	if err != nil {
		t.Fatalf("RetrieveByTime: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
