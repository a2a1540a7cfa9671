// Package patch implements the self-contained line-oriented forward diff
// used to reconstruct one revision's text from its predecessor's.
package patch

import (
	"fmt"
	"strings"
)

// OpKind distinguishes the three tagged-variant operations a Patch is made
// of. The format deliberately avoids any host-language "standard diffing
// utility": every operation carries enough payload to drive reconstruction
// on its own, so a Patch round-trips byte-exactly with no external context.
type OpKind uint8

const (
	// OpKeep copies N lines verbatim from the source text.
	OpKeep OpKind = iota
	// OpInsert emits Lines that do not exist in the source text.
	OpInsert
	// OpDelete skips N lines from the source text without emitting them.
	OpDelete
)

// Op is a single tagged operation in a Patch.
type Op struct {
	Kind  OpKind
	N     int      // line count, for OpKeep/OpDelete
	Lines []string // payload, for OpInsert
}

// Patch is the ordered operation list that transforms one revision's lines
// into the next revision's lines.
type Patch []Op

func (k OpKind) String() string {
	switch k {
	case OpKeep:
		return "keep"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// splitLines splits text into lines, each retaining its trailing newline
// (if any) so reconstruction is byte-exact even for a trailing partial
// line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string

	for len(text) > 0 {
		idx := strings.IndexByte(text, '\n')
		if idx == -1 {
			lines = append(lines, text)

			break
		}

		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
	}

	return lines
}
