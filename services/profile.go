package services

import (
	"context"
	"errors"

	"MediConnect/config/db"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

func getAccount[T any](ctx context.Context, s *Services, store db.Collection[T], cacheKey, id, notFound string) (*T, error) {
	return cachedFind(ctx, s.Cache, cacheKey+id, func() (*T, error) {
		doc, err := store.FindByID(ctx, id)
		if err != nil {
			return nil, storeError(err, notFound)
		}
		return doc, nil
	})
}

/*
* Only the fields present in the update are written
* A new email is normalized and must not belong to another account
* Drop the cached copy after the write
 */
func patchAccount[T any, PT account[T]](ctx context.Context, s *Services, store db.Collection[T], cacheKey, id, notFound string, update interface{}, email *string) (*T, error) {
	if _, err := db.ParseID(id); err != nil {
		return nil, util.NotFound(notFound)
	}
	if email != nil {
		*email = normalizeEmail(*email)
		other, err := store.FindOne(ctx, db.Filter{"email": *email})
		if err == nil && PT(other).Base().ID.Hex() != id {
			return nil, util.Conflict(util.EMAIL_ALREADY_EXISTS)
		}
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			log.Error().Err(err).Msg("Error from FindOne")
			return nil, util.Internal(err)
		}
	}
	fields, err := updateFields(update)
	if err != nil {
		log.Error().Err(err).Msg("Error from updateFields")
		return nil, util.Internal(err)
	}
	fields["updatedAt"] = s.Now().UTC()

	doc, err := store.Patch(ctx, id, fields)
	if errors.Is(err, db.ErrDuplicate) {
		return nil, util.Conflict(util.EMAIL_ALREADY_EXISTS)
	}
	if err != nil {
		return nil, storeError(err, notFound)
	}
	invalidate(ctx, s.Cache, cacheKey+id)
	return doc, nil
}

// updateFields encodes an update struct; nil pointer fields are left out.
func updateFields(update interface{}) (bson.M, error) {
	raw, err := bson.Marshal(update)
	if err != nil {
		return nil, err
	}
	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
