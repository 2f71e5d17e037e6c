package migrations

import (
	"context"

	"MediConnect/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func appointmentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: options.Index().SetName("patientId")},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetName("doctorId_date")},
	}
}

func AppointmentIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(util.AppointmentCollection).Indexes().CreateMany(ctx, appointmentIndexes())
	return err
}
