package service

import (
	"errors"

	"coinkeeper/internal/repository"

	"github.com/google/uuid"
)

// owned is any entity carrying an owning user id foreign key.
type owned interface {
	Owner() uuid.UUID
}

// requireOwned is the single ownership policy for categories, expenses and
// incomes. It takes the result of a lookup, maps a missing record to the
// entity-specific notFound sentinel, and rejects callers that do not own the
// record with the entity-specific denied sentinel. The comparison is always
// against the owning user id, never the entity's own primary key.
func requireOwned[T owned](entity T, err error, callerID uuid.UUID, notFound, denied error) (T, error) {
	var zero T
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, notFound
		}
		return zero, err
	}
	if entity.Owner() != callerID {
		return zero, denied
	}
	return entity, nil
}
