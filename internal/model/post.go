package model

import (
	"context"
	"time"
)

// DefaultCategory is assigned to posts created without an explicit category.
const DefaultCategory = "Tecnologia"

// PostStore defines persistence operations for blog posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	GetAll(ctx context.Context, publishedOnly bool) ([]Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id int64) (Post, error)
	Count(ctx context.Context) (int, error)
	CountPublished(ctx context.Context) (int, error)
}

// Post represents a blog content record with a draft/published lifecycle.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage"`
	Category   string    `json:"category"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	Title      string
	Excerpt    string
	Content    string
	CoverImage string
	Category   string
	Published  bool
}

// UpdatePostParams carries a merge-patch over a post. Nil fields keep the
// stored value. Excerpt and CoverImage may be set to the empty string
// explicitly; Title, Content and Category keep the stored value when the
// patch value trims to empty.
type UpdatePostParams struct {
	Title      *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	Category   *string
	Published  *bool
}
