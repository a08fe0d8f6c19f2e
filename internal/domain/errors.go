package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested customer or owned sub-entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the store detected a concurrent modification.
	// Callers may re-fetch and retry.
	ErrConflict = errors.New("concurrent modification")
)

// ValidationError reports an empty or malformed input field. Field names the
// first offending input so callers can branch without parsing messages.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a single named field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvariantError reports a state transition that is illegal for the
// aggregate's current state, e.g. deleting an already-deleted customer.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return e.Reason }

// RemoteError wraps a failed call to the remote account service.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("account service %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ConsistencyError reports a partial dual write: the remote account service
// call succeeded but the local persist did not, so local and remote state
// have diverged. It carries the context a reconciliation pass needs and must
// never be swallowed.
type ConsistencyError struct {
	CustomerID   string
	Op           string
	RemoteUserID string
	Err          error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("local and remote state diverged after %s for customer %s (remote user %s): %v",
		e.Op, e.CustomerID, e.RemoteUserID, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }
