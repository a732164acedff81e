// Package queries contains the read side: handlers that fetch state
// directly from the database with raw SQL and return flat read models,
// bypassing the aggregates and their invariant checks.
package queries

import (
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func kernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalKernelUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
