package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/config"
)

// RetrieveCmd builds the "retrieve" command: materializes a contiguous
// range of revisions by position from a compressed artifact.
func RetrieveCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("retrieve", flag.ContinueOnError)

	flagArtifact := flags.StringP("artifact", "a", "", "Artifact path (required)")
	flagAt := flags.Int("at", 0, "Starting position (0-based)")
	flagLength := flags.Int("length", 0, "Additional positions to retrieve after --at")

	return &Command{
		Flags: flags,
		Usage: "retrieve -a <artifact> --at <pos> [--length n]",
		Short: "Reconstruct revisions by position",
		Long:  "Walks the artifact's anchor/patch chain to materialize the revision text at --at, and --length further positions after it.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrInvalidArgument, args)
			}

			if *flagArtifact == "" {
				return fmt.Errorf("%w: --artifact is required", ErrInvalidArgument)
			}

			if *flagAt < 0 || *flagLength < 0 {
				return fmt.Errorf("%w: --at and --length must be non-negative", ErrInvalidArgument)
			}

			art, err := artifact.Load(*flagArtifact)
			if err != nil {
				return fmt.Errorf("load artifact: %w", err)
			}

			texts, err := artifact.RetrieveRange(art, *flagAt, *flagLength)
			if err != nil {
				return fmt.Errorf("retrieve: %w", err)
			}

			for i, t := range texts {
				o.Printf("--- position %d ---\n%s\n", *flagAt+i, t)
			}

			return nil
		},
	}
}
