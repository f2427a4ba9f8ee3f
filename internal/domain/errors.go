// Package domain defines the error taxonomy shared by the services and
// their callers. Services return these wrapped with %w; callers branch
// with errors.As.
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NotFoundError reports an id that does not resolve to an entity owned by
// the caller. Another owner's entity is deliberately indistinguishable
// from a missing one.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("%s not found", strings.ToLower(e.Entity))
	}
	return fmt.Sprintf("%s %s not found", strings.ToLower(e.Entity), e.ID)
}

// InvalidStateError reports a lifecycle precondition violation, e.g.
// restoring a task that is not in the trash.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports a bulk operation that was rolled back because some
// of its targets failed a precondition. FailedIDs names every blocked id;
// none of the targets were changed.
type ConflictError struct {
	Op        string
	FailedIDs []uuid.UUID
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.FailedIDs))
	for i, id := range e.FailedIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s blocked by %d item(s): %s", e.Op, len(e.FailedIDs), strings.Join(ids, ", "))
}
