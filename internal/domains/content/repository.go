package content

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines data access for one content kind. T is the model
// struct stored in the kind's collection.
type Repository[T any] interface {
	// List returns every record in store-native order.
	List(ctx context.Context) ([]T, error)

	// GetByID returns one record.
	// Returns ErrNotFound if absent, ErrInvalidID for malformed ids.
	GetByID(ctx context.Context, id string) (*T, error)

	// Create inserts doc and returns it. The caller is responsible for
	// assigning the id and creation timestamp before insert.
	Create(ctx context.Context, doc *T) (*T, error)

	// Update applies $set with the given fields and returns the updated
	// record. Fields not present in the set document are left untouched.
	Update(ctx context.Context, id string, fields bson.M) (*T, error)

	// Delete removes the record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
