// Package revhist orchestrates the compression pipeline: it turns a finite
// sequence of Revisions into an artifact.Artifact by running the cost
// model, a knapsack solver, the partitioner, and the patch builder in
// sequence.
package revhist

import "time"

// Revision is an immutable record of one edit in a document's history.
// Position within the slice passed to Compress is the authoritative
// identifier inside the resulting artifact; RevID and Timestamp are
// carried through for the revid/time query layer.
type Revision struct {
	RevID     uint64
	Timestamp time.Time
	Text      string
}
