package artifact

import "errors"

// ErrMissingBase reports that an anchor's full text is absent from
// BaseTexts during reconstruction — an artifact integrity violation.
var ErrMissingBase = errors.New("artifact: missing base text for anchor")

// ErrMissingPatch reports that an expected in-chain patch is absent.
var ErrMissingPatch = errors.New("artifact: missing patch for transition")

// ErrOutOfRange reports a retrieval request outside [0, n) or with a
// negative length.
var ErrOutOfRange = errors.New("artifact: index out of range")

// ErrStaleArtifact reports that a query needs a meta field an older
// artifact does not carry.
var ErrStaleArtifact = errors.New("artifact: meta missing required field")

// ErrMalformedArtifact reports a decode failure: bad envelope, unknown
// format version, or schema mismatch.
var ErrMalformedArtifact = errors.New("artifact: malformed artifact")
