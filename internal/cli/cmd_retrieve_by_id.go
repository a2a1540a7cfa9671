package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/wikecd/revhist/internal/artifact"
	"github.com/wikecd/revhist/internal/config"
)

// RetrieveByIDCmd builds the "retrieve-by-id" command: materializes
// revisions identified by external revid, in caller order.
func RetrieveByIDCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("retrieve-by-id", flag.ContinueOnError)

	flagArtifact := flags.StringP("artifact", "a", "", "Artifact path (required)")
	flagIDs := flags.String("ids", "", "Comma-separated list of revids (required)")
	flagMissing := flags.String("missing", "error", "Missing-id policy: error|warn|ignore")

	return &Command{
		Flags: flags,
		Usage: "retrieve-by-id -a <artifact> --ids <id,id,...> [--missing error|warn|ignore]",
		Short: "Reconstruct revisions by external revid",
		Long:  "Resolves each requested revid against the artifact's revid index and reconstructs the corresponding text, preserving the caller's requested order.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrInvalidArgument, args)
			}

			if *flagArtifact == "" || *flagIDs == "" {
				return fmt.Errorf("%w: --artifact and --ids are required", ErrInvalidArgument)
			}

			policy := artifact.MissingPolicy(*flagMissing)
			switch policy {
			case artifact.MissingError, artifact.MissingWarn, artifact.MissingIgnore:
			default:
				return fmt.Errorf("%w: --missing must be one of error|warn|ignore", ErrInvalidArgument)
			}

			ids, err := parseUint64CSV(*flagIDs)
			if err != nil {
				return fmt.Errorf("%w: --ids: %v", ErrInvalidArgument, err)
			}

			art, err := artifact.Load(*flagArtifact)
			if err != nil {
				return fmt.Errorf("load artifact: %w", err)
			}

			texts, err := artifact.RetrieveByRevID(art, ids, policy, func(id uint64) {
				o.WarnLLM(fmt.Sprintf("revid %d not found", id), "omitted from results; re-check the id against the source history")
			})
			if err != nil {
				return fmt.Errorf("retrieve: %w", err)
			}

			for _, t := range texts {
				o.Printf("%s\n", t)
			}

			return nil
		},
	}
}

func parseUint64CSV(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	out := make([]uint64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}

		out = append(out, id)
	}

	return out, nil
}
