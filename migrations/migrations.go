// Package migrations prepares the MongoDB collections. Every step can be run
// again without changing the result.
package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Migration struct {
	Name string
	Up   func(ctx context.Context, database *mongo.Database) error
}

// All lists the migrations in the order they run.
var All = []Migration{
	{Name: "001_unique_account_email", Up: UniqueAccountEmail},
	{Name: "002_request_indexes", Up: RequestIndexes},
	{Name: "003_appointment_indexes", Up: AppointmentIndexes},
	{Name: "004_backfill_roster_arrays", Up: BackfillRosterArrays},
}

func Run(ctx context.Context, database *mongo.Database) error {
	for _, m := range All {
		if err := m.Up(ctx, database); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("Migration applied")
	}
	return nil
}
