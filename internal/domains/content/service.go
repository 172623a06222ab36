package content

import (
	"context"
)

// Service defines the business operations for one content kind.
// C and U are the concrete create/update request types (pointers to the
// DTOs in this package).
type Service[T any, C CreateRequest[T], U UpdateRequest] interface {
	// List returns every record of the kind.
	List(ctx context.Context) ([]T, error)

	// Get returns one record by id.
	Get(ctx context.Context, id string) (*T, error)

	// Create validates the request and inserts a new record. The stored
	// record, including the assigned id and creation timestamp, is returned.
	Create(ctx context.Context, req C) (*T, error)

	// Update validates the request and replaces the fields it carries.
	Update(ctx context.Context, id string, req U) (*T, error)

	// Delete removes the record.
	Delete(ctx context.Context, id string) error
}
