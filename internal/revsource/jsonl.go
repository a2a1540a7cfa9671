// Package revsource provides the one concrete revision producer this
// module ships: a newline-delimited JSON file reader. It plays the role of
// the "polymorphic revision source" capability described in the
// specification without depending on any network or archive collaborator.
package revsource

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wikecd/revhist/internal/revhist"
)

// jsonlRevision is one line's wire shape: {"revid":1,"timestamp":"...","text":"..."}.
type jsonlRevision struct {
	RevID     uint64 `json:"revid"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// ReadJSONL reads one JSON object per non-blank line from r, in order, and
// returns the resulting Revision slice. Positions are assigned in arrival
// (line) order, matching the input revision stream contract: revisions are
// consumed exactly once.
func ReadJSONL(r io.Reader) ([]revhist.Revision, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var revs []revhist.Revision

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var jr jsonlRevision
		if err := json.Unmarshal([]byte(line), &jr); err != nil {
			return nil, fmt.Errorf("revsource: line %d: %w", lineNo, err)
		}

		ts, err := time.Parse(time.RFC3339, jr.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("revsource: line %d: parse timestamp %q: %w", lineNo, jr.Timestamp, err)
		}

		revs = append(revs, revhist.Revision{
			RevID:     jr.RevID,
			Timestamp: ts,
			Text:      jr.Text,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("revsource: scan: %w", err)
	}

	return revs, nil
}
