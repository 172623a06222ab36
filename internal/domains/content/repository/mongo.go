package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"classweb-backend/internal/domains/content"
)

// mongoRepository implements content.Repository for one collection.
// One instance per content kind, all sharing the same generic code.
type mongoRepository[T any] struct {
	coll *mongo.Collection
}

func NewMongoRepository[T any](db *mongo.Database, collection string) content.Repository[T] {
	return &mongoRepository[T]{coll: db.Collection(collection)}
}

func (r *mongoRepository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

func (r *mongoRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

func (r *mongoRepository[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	return doc, nil
}

func (r *mongoRepository[T]) Update(ctx context.Context, id string, fields bson.M) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	// An empty $set is rejected by the server; an update that carries no
	// fields degenerates to a read.
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	var doc T
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

func (r *mongoRepository[T]) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return content.ErrNotFound
	}
	return nil
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", content.ErrInvalidID, id)
	}
	return oid, nil
}
