package patch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPatchOverrun reports that a patch's Keep/Delete counts reference more
// lines than the source text actually has — an artifact integrity
// violation, never a recoverable condition.
var ErrPatchOverrun = errors.New("patch: operation overruns source text")

// Apply replays p against from, reconstructing the target text
// byte-exactly.
func Apply(from string, p Patch) (string, error) {
	lines := splitLines(from)

	var out strings.Builder

	pos := 0

	for _, op := range p {
		switch op.Kind {
		case OpKeep:
			if pos+op.N > len(lines) {
				return "", fmt.Errorf("%w: keep %d at pos %d of %d lines", ErrPatchOverrun, op.N, pos, len(lines))
			}

			for _, l := range lines[pos : pos+op.N] {
				out.WriteString(l)
			}

			pos += op.N
		case OpDelete:
			if pos+op.N > len(lines) {
				return "", fmt.Errorf("%w: delete %d at pos %d of %d lines", ErrPatchOverrun, op.N, pos, len(lines))
			}

			pos += op.N
		case OpInsert:
			for _, l := range op.Lines {
				out.WriteString(l)
			}
		default:
			return "", fmt.Errorf("patch: unknown op kind %v", op.Kind)
		}
	}

	return out.String(), nil
}
