package patch

// Encoded is the JSON-friendly, length-prefixed-free wire shape of a Patch:
// a flat list of tagged operations. It exists only at the artifact's
// encoding boundary — everywhere else in the codebase a Patch is the typed
// Op slice from ops.go, never a string-keyed or positional encoding.
type Encoded struct {
	Kind  []string   `json:"k"`
	N     []int      `json:"n"`
	Lines [][]string `json:"l,omitempty"`
}

// Encode converts a Patch into its artifact wire shape.
func Encode(p Patch) Encoded {
	enc := Encoded{
		Kind:  make([]string, len(p)),
		N:     make([]int, len(p)),
		Lines: make([][]string, len(p)),
	}

	for i, op := range p {
		enc.Kind[i] = op.Kind.String()
		enc.N[i] = op.N
		enc.Lines[i] = op.Lines
	}

	return enc
}

// Decode reverses Encode.
func Decode(enc Encoded) Patch {
	p := make(Patch, len(enc.Kind))

	for i, k := range enc.Kind {
		var kind OpKind

		switch k {
		case OpKeep.String():
			kind = OpKeep
		case OpInsert.String():
			kind = OpInsert
		case OpDelete.String():
			kind = OpDelete
		}

		p[i] = Op{Kind: kind, N: enc.N[i]}
		if i < len(enc.Lines) {
			p[i].Lines = enc.Lines[i]
		}
	}

	return p
}
