package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/config"
)

// RetrieveByTimeCmd builds the "retrieve-by-time" command: materializes
// every revision whose timestamp falls within a window.
func RetrieveByTimeCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("retrieve-by-time", flag.ContinueOnError)

	flagArtifact := flags.StringP("artifact", "a", "", "Artifact path (required)")
	flagStart := flags.String("start", "", "Start of window (RFC3339 or YYYY-MM-DD); empty means unbounded")
	flagEnd := flags.String("end", "", "End of window (RFC3339 or YYYY-MM-DD); empty means unbounded")
	flagExclusive := flags.Bool("exclusive", false, "Treat the window bounds as exclusive")

	return &Command{
		Flags: flags,
		Usage: "retrieve-by-time -a <artifact> [--start ts] [--end ts] [--exclusive]",
		Short: "Reconstruct revisions within a timestamp window",
		Long:  "Selects every position whose recorded timestamp falls within [start, end] (inclusive unless --exclusive) and reconstructs its text, in ascending position order.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrInvalidArgument, args)
			}

			if *flagArtifact == "" {
				return fmt.Errorf("%w: --artifact is required", ErrInvalidArgument)
			}

			if *flagStart == "" && *flagEnd == "" {
				return fmt.Errorf("%w: at least one of --start or --end is required", ErrInvalidArgument)
			}

			art, err := artifact.Load(*flagArtifact)
			if err != nil {
				return fmt.Errorf("load artifact: %w", err)
			}

			texts, err := artifact.RetrieveByTime(art, *flagStart, *flagEnd, !*flagExclusive)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}

			if len(texts) == 0 {
				o.WarnLLM("time window matched no revisions", "widen --start/--end or check the artifact's timestamp range")
			}

			for _, t := range texts {
				o.Printf("%s\n", t)
			}

			return nil
		},
	}
}
