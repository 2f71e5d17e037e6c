// Package db wraps the MongoDB collections the service reads and writes.
// Every collection is reached through Collection, which has a MongoDB
// implementation for the server and an in-memory one for tests and local runs.
package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Filter is an equality match on top-level fields. An empty filter matches
// every document.
type Filter = bson.M

type Collection[T any] interface {
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	Find(ctx context.Context, filter Filter) ([]T, error)
	// Patch sets only the given fields and returns the updated document.
	Patch(ctx context.Context, id string, fields bson.M) (*T, error)
	// AddToSet appends value to an array field unless it is already present.
	AddToSet(ctx context.Context, id string, field string, value interface{}) error
	// Unset removes the fields from every document matching the filter and
	// returns the number of documents changed.
	Unset(ctx context.Context, filter Filter, fields ...string) (int64, error)
}

// ParseID returns ErrNotFound for ids that cannot be an ObjectID, since no
// stored document can carry them.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
