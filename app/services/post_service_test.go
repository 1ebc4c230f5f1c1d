package services_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-backend/app/apperr"
	"booking-backend/app/models"
	"booking-backend/app/repo"
	"booking-backend/app/services"
)

var (
	alice = models.Principal{ID: 1, Role: models.RoleUser}
	bob   = models.Principal{ID: 2, Role: models.RoleUser}
	admin = models.Principal{ID: 3, Role: models.RoleAdmin}
)

func newPostService(t *testing.T) *services.PostService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return services.NewPostService(repo.NewPostRepository(rdb))
}

func TestCreateSetsOwnerAndID(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, alice, "Trip", "Paris")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, alice.ID, post.OwnerID)
	assert.Equal(t, "Trip", post.Title)
	assert.Equal(t, "Paris", post.Content)
}

func TestListScopedToOwner(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, "Trip", "Paris")
	require.NoError(t, err)

	got, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got, "another user must not see Alice's posts")

	got, err = svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, got, 1, "admin sees every record regardless of owner")
}

func TestUpdateOwnership(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, alice, "Trip", "Paris")
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, post.ID, "Hacked", "by bob")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(ctx, alice, post.ID, "Trip", "Lyon")
	require.NoError(t, err)
	assert.Equal(t, "Lyon", updated.Content)
	assert.Equal(t, alice.ID, updated.OwnerID, "owner is immutable across updates")

	updated, err = svc.Update(ctx, admin, post.ID, "Moderated", "removed")
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)
	assert.Equal(t, alice.ID, updated.OwnerID)
}

func TestUpdateMissing(t *testing.T) {
	svc := newPostService(t)
	_, err := svc.Update(context.Background(), alice, "no-such-id", "a", "b")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteOwnership(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, alice, "Trip", "Paris")
	require.NoError(t, err)

	err = svc.Delete(ctx, bob, post.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, alice, post.ID))

	err = svc.Delete(ctx, alice, post.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "deleting twice reports NotFound")
}

func TestAdminDeletesOthersPost(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, alice, "Trip", "Paris")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, admin, post.ID))

	got, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, got)
}
