package dto

// PostRequest carries the mutable post fields. Any owner field in the
// payload is dropped at decode time; the server always sets the owner
// from the authenticated principal.
type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
