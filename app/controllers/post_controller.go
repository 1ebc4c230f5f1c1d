package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"booking-backend/app/dto"
	"booking-backend/app/middleware"
	"booking-backend/app/services"
)

type PostController struct {
	Posts    *services.PostService
	validate *validator.Validate
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{Posts: posts, validate: validator.New()}
}

func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	post, err := c.Posts.Create(r.Context(), *p, req.Title, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (c *PostController) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	posts, err := c.Posts.List(r.Context(), *p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (c *PostController) Update(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	var req dto.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		writeError(w, r, validationError(err))
		return
	}
	post, err := c.Posts.Update(r.Context(), *p, id, req.Title, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Post updated successfully", "post": post})
}

func (c *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	if err := c.Posts.Delete(r.Context(), *p, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
