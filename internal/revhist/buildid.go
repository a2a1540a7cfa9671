package revhist

import (
	"fmt"

	"github.com/google/uuid"
)

// newBuildID generates a time-ordered build identifier for a freshly
// compressed artifact, so later log lines and analyze output can be
// correlated back to the compression run that produced the file.
func newBuildID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate build id: %w", err)
	}

	return id.String(), nil
}
