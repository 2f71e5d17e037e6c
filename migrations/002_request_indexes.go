package migrations

import (
	"context"

	"MediConnect/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Requests are read per hospital, per doctor and by status for reconcile.
func requestIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "hospitalId", Value: 1}}, Options: options.Index().SetName("hospitalId")},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("doctorId_status")},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status")},
	}
}

func RequestIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(util.RequestCollection).Indexes().CreateMany(ctx, requestIndexes())
	return err
}
