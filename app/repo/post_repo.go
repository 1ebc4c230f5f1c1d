package repo

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"booking-backend/app/docstore"
	"booking-backend/app/models"
)

type PostRepository struct{ col *docstore.Collection }

func NewPostRepository(rdb *redis.Client) *PostRepository {
	return &PostRepository{col: docstore.NewCollection(rdb, "posts")}
}

func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	p.ID = docstore.NewID()
	return r.col.Put(ctx, p.ID, p.OwnerID, p)
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := r.col.Get(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Save(ctx context.Context, p *models.Post) error {
	return r.col.Put(ctx, p.ID, p.OwnerID, p)
}

func (r *PostRepository) Delete(ctx context.Context, id string, owner uint) error {
	return r.col.Delete(ctx, id, owner)
}

func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	docs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return decodePosts(docs)
}

func (r *PostRepository) ListByOwner(ctx context.Context, owner uint) ([]models.Post, error) {
	docs, err := r.col.ByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return decodePosts(docs)
}

func decodePosts(docs []json.RawMessage) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		var p models.Post
		if err := json.Unmarshal(d, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}
