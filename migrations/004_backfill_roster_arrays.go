package migrations

import (
	"context"

	"MediConnect/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// rosterFields are the id lists that add-to-set writes need as arrays.
var rosterFields = map[string][]string{
	util.PatientCollection:  {"record", "doctors"},
	util.DoctorCollection:   {"hospitals", "patients"},
	util.HospitalCollection: {"doctors", "patients"},
}

/*
* Documents written before the lists existed hold null or nothing
* Set those fields to an empty array
 */
func BackfillRosterArrays(ctx context.Context, database *mongo.Database) error {
	for collection, fields := range rosterFields {
		for _, field := range fields {
			result, err := database.Collection(collection).UpdateMany(
				ctx,
				bson.M{field: nil},
				bson.M{"$set": bson.M{field: bson.A{}}},
			)
			if err != nil {
				return err
			}
			log.Info().Str("collection", collection).Str("field", field).Int64("modified", result.ModifiedCount).Msg("Backfilled roster field")
		}
	}
	return nil
}
