// Package artifact implements the on-disk compressed-history container:
// its data model, atomic encode/decode, the reconstruction walker, and the
// index/revid/time query layer.
package artifact

import "github.com/wikecd/revhist/internal/patch"

// FormatVersion is the artifact container's format major version. Readers
// reject any other major.
const FormatVersion = "1"

// Transition identifies an in-chain edge u->v (v == u+1) a Patch applies
// to.
type Transition struct {
	U, V int
}

// Meta carries every field the query layer and analytics need alongside
// the anchors/patches payload. It is serialized through the separate
// wireMeta shape in store.go, which carries the JSON field names.
type Meta struct {
	Version      string
	Title        string
	Count        int
	Partitions   [][]int
	RevIDs       []uint64
	Timestamps   []string
	Sizes        []int64
	OrigSize     int64
	SpaceCost    int64
	TimeCost     int64
	Solver       string
	Strategy     string
	TimeBudget   int64
	ChainLengths []int
	SizeUnit     string
	BuildID      string
	PageID       *int64
}

// Artifact is the immutable, write-once compressed representation of one
// document's revision history.
type Artifact struct {
	Title     string
	Anchors   []int
	Patches   map[[2]int]patch.Patch
	Meta      Meta
	BaseTexts map[int]string
}

// Partitions returns the chain partition recorded in Meta, the same view
// the reconstruction walker navigates.
func (a *Artifact) Partitions() [][]int {
	return a.Meta.Partitions
}
