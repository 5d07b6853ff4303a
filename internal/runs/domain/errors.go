package domain

import "fmt"

// RunNotFoundError indicates that a run with the specified GUID could not
// be found in the repository.
type RunNotFoundError struct {
	GUID string
}

// Error implements the error interface.
func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("run not found: guid=%q", e.GUID)
}
