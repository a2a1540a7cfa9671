package revsource_test

import (
	"strings"
	"testing"

	"github.com/wikecd/revhist/internal/revsource"
)

func TestReadJSONL_ParsesInArrivalOrder(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"revid":1,"timestamp":"2024-01-01T00:00:00Z","text":"a"}`,
		``,
		`{"revid":2,"timestamp":"2024-01-01T01:00:00Z","text":"b"}`,
	}, "\n")

	revs, err := revsource.ReadJSONL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSONL: %v", err)
	}

	if len(revs) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revs))
	}

	if revs[0].RevID != 1 || revs[1].RevID != 2 {
		t.Fatalf("revisions out of order: %+v", revs)
	}

	if revs[0].Text != "a" || revs[1].Text != "b" {
		t.Fatalf("unexpected text: %+v", revs)
	}
}

func TestReadJSONL_RejectsMalformedLine(t *testing.T) {
	t.Parallel()

	if _, err := revsource.ReadJSONL(strings.NewReader("not json")); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestReadJSONL_RejectsBadTimestamp(t *testing.T) {
	t.Parallel()

	input := `{"revid":1,"timestamp":"not-a-timestamp","text":"a"}`

	if _, err := revsource.ReadJSONL(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
}

func TestReadJSONL_EmptyInputYieldsNoRevisions(t *testing.T) {
	t.Parallel()

	revs, err := revsource.ReadJSONL(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadJSONL: %v", err)
	}

	if len(revs) != 0 {
		t.Fatalf("expected no revisions, got %d", len(revs))
	}
}
