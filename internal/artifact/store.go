package artifact

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/wikecd/revhist/internal/patch"
)

// wireMeta is Meta's JSON shape. Field names are the artifact file's public
// schema (spec.md §6); unknown keys in a file being read are ignored by
// encoding/json and are not kept on the decoded Artifact.
type wireMeta struct {
	Version      string           `json:"version"`
	Title        string           `json:"title"`
	Count        int              `json:"count"`
	Partitions   [][]int          `json:"partitions"`
	RevIDs       []uint64         `json:"revids"`
	Timestamps   []string         `json:"timestamps"`
	Sizes        []int64          `json:"sizes"`
	OrigSize     int64            `json:"orig_size"`
	SpaceCost    int64            `json:"space_cost"`
	TimeCost     int64            `json:"time_cost"`
	Solver       string           `json:"solver"`
	Strategy     string           `json:"strategy"`
	TimeBudget   int64            `json:"time_budget"`
	ChainLengths []int            `json:"chain_lengths,omitempty"`
	SizeUnit     string           `json:"size_unit"`
	BuildID      string `json:"build_id,omitempty"`
	PageID       *int64 `json:"page_id,omitempty"`
}

type wireArtifact struct {
	Version   string                  `json:"version"`
	Title     string                  `json:"title"`
	Anchors   []int                   `json:"anchors"`
	Patches   map[string]patch.Encoded `json:"patches"`
	Meta      wireMeta                `json:"meta"`
	BaseTexts map[string]string       `json:"base_texts"`
}

// Encode serializes a into its versioned JSON wire shape.
func Encode(a *Artifact) ([]byte, error) {
	w := wireArtifact{
		Version: FormatVersion,
		Title:   a.Title,
		Anchors: append([]int(nil), a.Anchors...),
		Patches: make(map[string]patch.Encoded, len(a.Patches)),
		Meta: wireMeta{
			Version:      FormatVersion,
			Title:        a.Meta.Title,
			Count:        a.Meta.Count,
			Partitions:   a.Meta.Partitions,
			RevIDs:       a.Meta.RevIDs,
			Timestamps:   a.Meta.Timestamps,
			Sizes:        a.Meta.Sizes,
			OrigSize:     a.Meta.OrigSize,
			SpaceCost:    a.Meta.SpaceCost,
			TimeCost:     a.Meta.TimeCost,
			Solver:       a.Meta.Solver,
			Strategy:     a.Meta.Strategy,
			TimeBudget:   a.Meta.TimeBudget,
			ChainLengths: a.Meta.ChainLengths,
			SizeUnit:     a.Meta.SizeUnit,
			BuildID:      a.Meta.BuildID,
			PageID:       a.Meta.PageID,
		},
		BaseTexts: make(map[string]string, len(a.BaseTexts)),
	}

	for k, p := range a.Patches {
		w.Patches[fmt.Sprintf("%d-%d", k[0], k[1])] = patch.Encode(p)
	}

	for pos, text := range a.BaseTexts {
		w.BaseTexts[strconv.Itoa(pos)] = text
	}

	payload, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("artifact: marshal: %w", err)
	}

	var buf bytes.Buffer

	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(payload); err != nil {
		return nil, fmt.Errorf("artifact: gzip write: %w", err)
	}

	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("artifact: gzip close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode inverts Encode, rejecting any artifact whose major format version
// does not match FormatVersion.
func Decode(blob []byte) (*Artifact, error) {
	gr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip envelope: %v", ErrMalformedArtifact, err)
	}
	defer gr.Close()

	var w wireArtifact
	if err := json.NewDecoder(gr).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: json payload: %v", ErrMalformedArtifact, err)
	}

	if major(w.Version) != major(FormatVersion) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedArtifact, w.Version)
	}

	patches := make(map[[2]int]patch.Patch, len(w.Patches))

	for k, enc := range w.Patches {
		u, v, err := parseTransitionKey(k)
		if err != nil {
			return nil, fmt.Errorf("%w: patch key %q: %v", ErrMalformedArtifact, k, err)
		}

		patches[[2]int{u, v}] = patch.Decode(enc)
	}

	baseTexts := make(map[int]string, len(w.BaseTexts))

	for k, text := range w.BaseTexts {
		pos, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: base_texts key %q: %v", ErrMalformedArtifact, k, err)
		}

		baseTexts[pos] = text
	}

	a := &Artifact{
		Title:   w.Title,
		Anchors: w.Anchors,
		Patches: patches,
		Meta: Meta{
			Version:      w.Meta.Version,
			Title:        w.Meta.Title,
			Count:        w.Meta.Count,
			Partitions:   w.Meta.Partitions,
			RevIDs:       w.Meta.RevIDs,
			Timestamps:   w.Meta.Timestamps,
			Sizes:        w.Meta.Sizes,
			OrigSize:     w.Meta.OrigSize,
			SpaceCost:    w.Meta.SpaceCost,
			TimeCost:     w.Meta.TimeCost,
			Solver:       w.Meta.Solver,
			Strategy:     w.Meta.Strategy,
			TimeBudget:   w.Meta.TimeBudget,
			ChainLengths: w.Meta.ChainLengths,
			SizeUnit:     w.Meta.SizeUnit,
			BuildID:      w.Meta.BuildID,
			PageID:       w.Meta.PageID,
		},
		BaseTexts: baseTexts,
	}

	return a, nil
}

// Save atomically writes a's encoded form to path: it encodes into memory,
// then writes via temp-file-plus-rename so readers never observe a
// partially written file at path.
func Save(path string, a *Artifact) error {
	blob, err := Encode(a)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(blob)); err != nil {
		return fmt.Errorf("artifact: atomic write %s: %w", path, err)
	}

	return nil
}

// Load reads and decodes the artifact at path.
func Load(path string) (*Artifact, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: read %s: %w", path, err)
	}

	a, err := Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("artifact: decode %s: %w", path, err)
	}

	return a, nil
}

func major(version string) string {
	if i := strings.IndexByte(version, '.'); i != -1 {
		return version[:i]
	}

	return version
}

func parseTransitionKey(k string) (u, v int, err error) {
	i := strings.IndexByte(k, '-')
	if i == -1 {
		return 0, 0, fmt.Errorf("missing '-' separator")
	}

	u, err = strconv.Atoi(k[:i])
	if err != nil {
		return 0, 0, err
	}

	v, err = strconv.Atoi(k[i+1:])
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}
