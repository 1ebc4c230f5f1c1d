package services

import (
	"context"

	"booking-backend/app/apperr"
	"booking-backend/app/models"
	"booking-backend/app/repo"
)

type PostService struct{ posts *repo.PostRepository }

func NewPostService(posts *repo.PostRepository) *PostService { return &PostService{posts: posts} }

// Create stores the post under the caller's id, whatever owner the
// request body claimed.
func (s *PostService) Create(ctx context.Context, p models.Principal, title, content string) (*models.Post, error) {
	post := &models.Post{Title: title, Content: content, OwnerID: p.ID}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, p models.Principal) ([]models.Post, error) {
	if p.IsAdmin() {
		return s.posts.ListAll(ctx)
	}
	return s.posts.ListByOwner(ctx, p.ID)
}

// Update overwrites the mutable fields. Ownership is checked against the
// record as fetched now, not against anything cached from an earlier read.
func (s *PostService) Update(ctx context.Context, p models.Principal, id, title, content string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != p.ID && !p.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	post.Title = title
	post.Content = content
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, p models.Principal, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.OwnerID != p.ID && !p.IsAdmin() {
		return apperr.ErrForbidden
	}
	return s.posts.Delete(ctx, id, post.OwnerID)
}
