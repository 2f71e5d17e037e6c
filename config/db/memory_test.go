package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sample struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Name    string             `bson:"name"`
	Age     int                `bson:"age"`
	Tags    []string           `bson:"tags"`
	Expires *time.Time         `bson:"expires,omitempty"`
}

func TestMemoryCollection_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("email")

	id, err := coll.Insert(ctx, &sample{Email: "a@x.com", Name: "A", Age: 30})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	got, err := coll.FindByID(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, id, got.ID)

	got, err = coll.FindOne(ctx, Filter{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 30, got.Age)

	got, err = coll.FindOne(ctx, Filter{"age": 30})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = coll.FindOne(ctx, Filter{"email": "b@x.com"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = coll.FindByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_UniqueField(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]("email")

	_, err := coll.Insert(ctx, &sample{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = coll.Insert(ctx, &sample{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)

	all, err := coll.Find(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other, err := coll.Insert(ctx, &sample{Email: "b@x.com"})
	require.NoError(t, err)
	_, err = coll.Patch(ctx, other.Hex(), bson.M{"email": "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryCollection_PatchOnlyTouchesGivenFields(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]()
	id, err := coll.Insert(ctx, &sample{Email: "a@x.com", Name: "A", Tags: []string{"x"}})
	require.NoError(t, err)

	got, err := coll.Patch(ctx, id.Hex(), bson.M{"name": "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, []string{"x"}, got.Tags)

	_, err = coll.Patch(ctx, primitive.NewObjectID().Hex(), bson.M{"name": "C"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_AddToSetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]()
	id, err := coll.Insert(ctx, &sample{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, coll.AddToSet(ctx, id.Hex(), "tags", "d1"))
	require.NoError(t, coll.AddToSet(ctx, id.Hex(), "tags", "d1"))
	require.NoError(t, coll.AddToSet(ctx, id.Hex(), "tags", "d2"))

	got, err := coll.FindByID(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, got.Tags)

	err = coll.AddToSet(ctx, primitive.NewObjectID().Hex(), "tags", "d1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_UnsetWithOperators(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryCollection[sample]()
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	expiredID, err := coll.Insert(ctx, &sample{Email: "old@x.com", Expires: &past})
	require.NoError(t, err)
	liveID, err := coll.Insert(ctx, &sample{Email: "new@x.com", Expires: &future})
	require.NoError(t, err)
	_, err = coll.Insert(ctx, &sample{Email: "none@x.com"})
	require.NoError(t, err)

	n, err := coll.Unset(ctx, Filter{"expires": bson.M{"$lt": time.Now()}}, "expires")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	expired, err := coll.FindByID(ctx, expiredID.Hex())
	require.NoError(t, err)
	assert.Nil(t, expired.Expires)

	live, err := coll.FindByID(ctx, liveID.Hex())
	require.NoError(t, err)
	require.NotNil(t, live.Expires)

	withExpiry, err := coll.Find(ctx, Filter{"expires": bson.M{"$exists": true}})
	require.NoError(t, err)
	assert.Len(t, withExpiry, 1)
}
