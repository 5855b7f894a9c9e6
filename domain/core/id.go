package core

import "github.com/google/uuid"

// RunID identifies one significance test run across logs and report artifacts.
type RunID string

// NewRunID generates a unique run identifier.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (id RunID) String() string {
	return string(id)
}
