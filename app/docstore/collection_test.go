package docstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-backend/app/apperr"
	"booking-backend/app/docstore"
)

type doc struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Owner uint   `json:"owner"`
}

func newTestCollection(t *testing.T) *docstore.Collection {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return docstore.NewCollection(rdb, "docs")
}

func TestPutGet(t *testing.T) {
	col := newTestCollection(t)
	ctx := context.Background()

	id := docstore.NewID()
	require.NoError(t, col.Put(ctx, id, 1, doc{ID: id, Value: "hello", Owner: 1}))

	var got doc
	require.NoError(t, col.Get(ctx, id, &got))
	assert.Equal(t, "hello", got.Value)
	assert.Equal(t, uint(1), got.Owner)
}

func TestGetMissing(t *testing.T) {
	col := newTestCollection(t)
	var got doc
	err := col.Get(context.Background(), "nope", &got)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	col := newTestCollection(t)
	ctx := context.Background()

	id := docstore.NewID()
	require.NoError(t, col.Put(ctx, id, 1, doc{ID: id, Owner: 1}))

	require.NoError(t, col.Delete(ctx, id, 1))
	err := col.Delete(ctx, id, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "second delete of the same id must be NotFound, not a crash")
}

func TestOwnerScoping(t *testing.T) {
	col := newTestCollection(t)
	ctx := context.Background()

	for i, owner := range []uint{1, 1, 2} {
		id := docstore.NewID()
		require.NoError(t, col.Put(ctx, id, owner, doc{ID: id, Value: string(rune('a' + i)), Owner: owner}))
	}

	all, err := col.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := col.ByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := col.ByOwner(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	empty, err := col.ByOwner(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteRemovesFromIndexes(t *testing.T) {
	col := newTestCollection(t)
	ctx := context.Background()

	id := docstore.NewID()
	require.NoError(t, col.Put(ctx, id, 7, doc{ID: id, Owner: 7}))
	require.NoError(t, col.Delete(ctx, id, 7))

	all, err := col.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	mine, err := col.ByOwner(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
