package artifact

import (
	"fmt"
	"time"
)

// MissingPolicy controls RetrieveByRevID's behavior when a requested revid
// is not present in the artifact.
type MissingPolicy string

const (
	MissingError  MissingPolicy = "error"
	MissingWarn   MissingPolicy = "warn"
	MissingIgnore MissingPolicy = "ignore"
)

// RetrieveByIndex is equivalent to RetrieveRange(a, i, 0).
func RetrieveByIndex(a *Artifact, i int) ([]string, error) {
	return RetrieveRange(a, i, 0)
}

// RetrieveByRevID resolves each id via Meta.RevIDs and assembles results in
// the caller's requested order. missing controls what happens when an id
// is not found; onMissing, if non-nil, is called with the offending id
// under MissingWarn (e.g. to log a warning) before the id is skipped.
func RetrieveByRevID(a *Artifact, ids []uint64, missing MissingPolicy, onMissing func(id uint64)) ([]string, error) {
	if len(a.Meta.RevIDs) == 0 {
		return nil, fmt.Errorf("%w: revids", ErrStaleArtifact)
	}

	indexOf := make(map[uint64]int, len(a.Meta.RevIDs))
	for i, rid := range a.Meta.RevIDs {
		indexOf[rid] = i
	}

	var results []string

	for _, id := range ids {
		idx, ok := indexOf[id]
		if !ok {
			switch missing {
			case MissingError:
				return nil, fmt.Errorf("%w: revid %d", ErrOutOfRange, id)
			case MissingWarn:
				if onMissing != nil {
					onMissing(id)
				}

				continue
			case MissingIgnore:
				continue
			default:
				return nil, fmt.Errorf("%w: %q", ErrOutOfRange, missing)
			}
		}

		texts, err := RetrieveRange(a, idx, 0)
		if err != nil {
			return nil, err
		}

		results = append(results, texts...)
	}

	return results, nil
}

// RetrieveByTime selects positions whose timestamp falls within
// [start, end] (bounds included when inclusive is true, excluded
// otherwise) and returns their texts in ascending
// position order. start/end are ISO-8601; a date-only string (len 10)
// expands to a UTC day boundary. Either bound may be empty to mean
// unbounded. A window that matches nothing returns an empty, non-error
// result.
func RetrieveByTime(a *Artifact, start, end string, inclusive bool) ([]string, error) {
	if len(a.Meta.Timestamps) == 0 {
		return nil, fmt.Errorf("%w: timestamps", ErrStaleArtifact)
	}

	var startT, endT time.Time

	var hasStart, hasEnd bool

	if start != "" {
		t, err := parseBound(start, "T00:00:00Z")
		if err != nil {
			return nil, fmt.Errorf("artifact: parse start-ts %q: %w", start, err)
		}

		startT, hasStart = t, true
	}

	if end != "" {
		t, err := parseBound(end, "T23:59:59Z")
		if err != nil {
			return nil, fmt.Errorf("artifact: parse end-ts %q: %w", end, err)
		}

		endT, hasEnd = t, true
	}

	var results []string

	for i, ts := range a.Meta.Timestamps {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("artifact: parse stored timestamp %q: %w", ts, err)
		}

		ok := true
		if hasStart {
			if inclusive {
				ok = ok && !t.Before(startT)
			} else {
				ok = ok && t.After(startT)
			}
		}

		if hasEnd {
			if inclusive {
				ok = ok && !t.After(endT)
			} else {
				ok = ok && t.Before(endT)
			}
		}

		if !ok {
			continue
		}

		texts, err := RetrieveRange(a, i, 0)
		if err != nil {
			return nil, err
		}

		results = append(results, texts...)
	}

	return results, nil
}

// parseBound parses a timestamp that may be a bare "YYYY-MM-DD" date (in
// which case dayBoundarySuffix expands it to a UTC instant) or a full
// RFC3339 timestamp.
func parseBound(s, dayBoundarySuffix string) (time.Time, error) {
	if len(s) == 10 {
		return time.Parse(time.RFC3339, s+dayBoundarySuffix)
	}

	return time.Parse(time.RFC3339, s)
}
