package migrations

import (
	"context"

	"MediConnect/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var AccountCollections = []string{util.PatientCollection, util.DoctorCollection, util.HospitalCollection}

func emailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}
}

func UniqueAccountEmail(ctx context.Context, database *mongo.Database) error {
	for _, name := range AccountCollections {
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, emailIndex()); err != nil {
			return err
		}
	}
	return nil
}
