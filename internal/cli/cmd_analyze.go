package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/config"
)

// AnalyzeCmd builds the "analyze" command: walks a directory of artifacts
// and reports the cost-model summary recorded in each one's metadata,
// without reconstructing any text.
func AnalyzeCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("analyze", flag.ContinueOnError)

	flagDir := flags.StringP("dir", "d", "", "Directory of artifacts to analyze (required)")
	flagJSON := flags.Bool("json", false, "Output as a JSON array")

	return &Command{
		Flags: flags,
		Usage: "analyze --dir <dir> [--json]",
		Short: "Report compression statistics for a directory of artifacts",
		Long:  "Walks --dir, loads every file as an artifact, and reports its revision count, anchor count, original size, and the space/time cost the selected solver achieved.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrInvalidArgument, args)
			}

			if *flagDir == "" {
				return fmt.Errorf("%w: --dir is required", ErrInvalidArgument)
			}

			return execAnalyze(o, *flagDir, *flagJSON)
		},
	}
}

// analyzeResult pairs a walked path with its load outcome.
type analyzeResult struct {
	path string
	art  *artifact.Artifact
	err  error
}

func execAnalyze(o *IO, dir string, jsonOutput bool) error {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	results := loadArtifacts(paths)

	var entries []*analyzeEntry

	for _, r := range results {
		if r.err != nil {
			o.WarnLLM(
				fmt.Sprintf("%s: %v", r.path, r.err),
				"confirm the file is a wikecd artifact or remove it from the directory",
			)

			continue
		}

		entries = append(entries, newAnalyzeEntry(r.path, r.art))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	if jsonOutput {
		return outputAnalyzeJSON(o, entries)
	}

	for _, e := range entries {
		o.Println(formatAnalyzeLine(e))
	}

	return nil
}

// loadArtifacts loads every path concurrently through a bounded worker
// pool, mirroring run.go's goroutine-plus-done-channel dispatch.
func loadArtifacts(paths []string) []analyzeResult {
	results := make([]analyzeResult, len(paths))

	jobs := make(chan int)

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}

	if workers < 1 {
		workers = 1
	}

	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				art, err := artifact.Load(paths[i])
				results[i] = analyzeResult{path: paths[i], art: art, err: err}
			}

			done <- struct{}{}
		}()
	}

	for i := range paths {
		jobs <- i
	}

	close(jobs)

	for w := 0; w < workers; w++ {
		<-done
	}

	return results
}

// analyzeEntry is the per-artifact summary shared by the text and JSON
// renderers.
type analyzeEntry struct {
	Path        string  `json:"path"`
	Title       string  `json:"title"`
	Revisions   int     `json:"revisions"`
	Anchors     int     `json:"anchors"`
	Solver      string  `json:"solver"`
	Strategy    string  `json:"strategy"`
	OrigSize    int64   `json:"orig_size"`
	SpaceCost   int64   `json:"space_cost"`
	TimeCost    int64   `json:"time_cost"`
	SpaceRatio  float64 `json:"space_ratio"`
	AnchorRatio float64 `json:"anchor_ratio"`
}

func newAnalyzeEntry(path string, a *artifact.Artifact) *analyzeEntry {
	e := &analyzeEntry{
		Path:      path,
		Title:     a.Title,
		Revisions: a.Meta.Count,
		Anchors:   len(a.Anchors),
		Solver:    a.Meta.Solver,
		Strategy:  a.Meta.Strategy,
		OrigSize:  a.Meta.OrigSize,
		SpaceCost: a.Meta.SpaceCost,
		TimeCost:  a.Meta.TimeCost,
	}

	if a.Meta.OrigSize > 0 {
		e.SpaceRatio = float64(a.Meta.SpaceCost) / float64(a.Meta.OrigSize)
	}

	if a.Meta.Count > 0 {
		e.AnchorRatio = float64(len(a.Anchors)) / float64(a.Meta.Count)
	}

	return e
}

func outputAnalyzeJSON(o *IO, entries []*analyzeEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	o.Println(string(data))

	return nil
}

func formatAnalyzeLine(e *analyzeEntry) string {
	return fmt.Sprintf(
		"%-40s revisions=%-6d anchors=%-6d solver=%-10s strategy=%-8s orig_size=%d space_cost=%d time_cost=%d space_ratio=%.4f anchor_ratio=%.4f",
		e.Path, e.Revisions, e.Anchors, e.Solver, e.Strategy, e.OrigSize, e.SpaceCost, e.TimeCost, e.SpaceRatio, e.AnchorRatio,
	)
}
