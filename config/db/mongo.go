package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Connect to the mongo url and ping the primary
* Return the client so the caller can disconnect on shutdown
 */
func Connect(ctx context.Context, url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info().Msg("Mongo Connected")
	return client, nil
}

type MongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](database *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{coll: database.Collection(name)}
}

func (m *MongoCollection[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

func (m *MongoCollection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return m.FindOne(ctx, bson.M{"_id": oid})
}

func (m *MongoCollection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var doc T
	err := m.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MongoCollection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *MongoCollection[T]) Patch(ctx context.Context, id string, fields bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err = m.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, ErrDuplicate
	case err != nil:
		return nil, err
	}
	return &doc, nil
}

func (m *MongoCollection[T]) AddToSet(ctx context.Context, id string, field string, value interface{}) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{field: value},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCollection[T]) Unset(ctx context.Context, filter Filter, fields ...string) (int64, error) {
	unset := bson.M{}
	for _, f := range fields {
		unset[f] = ""
	}
	res, err := m.coll.UpdateMany(ctx, filter, bson.M{"$unset": unset})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
