package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// Post implements the blog post lifecycle: create, read, merge-patch update,
// publish toggle and delete. Posts always start as drafts unless published is
// set explicitly at creation.
type Post struct {
	store  model.PostStore
	logger *logger.Logger
}

func NewPost(store model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		store:  store,
		logger: logger,
	}
}

// List returns posts ordered by creation time descending, optionally
// restricted to published ones.
func (s *Post) List(ctx context.Context, publishedOnly bool) ([]model.Post, error) {
	posts, err := s.store.GetAll(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts, nil
}

// Get returns a single post by id.
func (s *Post) Get(ctx context.Context, id int64) (model.Post, error) {
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Create validates and stores a new post. Title and content are required
// after trimming; category falls back to the default label.
func (s *Post) Create(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	post := model.Post{
		Title:      strings.TrimSpace(params.Title),
		Excerpt:    strings.TrimSpace(params.Excerpt),
		Content:    strings.TrimSpace(params.Content),
		CoverImage: strings.TrimSpace(params.CoverImage),
		Category:   strings.TrimSpace(params.Category),
		Published:  params.Published,
	}

	if post.Title == "" || post.Content == "" {
		return model.Post{}, fmt.Errorf("%w: title and content are required", model.ErrInvalidInput)
	}
	if post.Category == "" {
		post.Category = model.DefaultCategory
	}

	saved, err := s.store.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created", "post_id", saved.ID, "published", saved.Published)
	return saved, nil
}

// Update applies a merge-patch over the stored post: nil fields keep the
// stored value, and updated_at is refreshed even when nothing else changed.
// Excerpt and cover image accept an explicit overwrite to empty; title,
// content and category keep the stored value when the patch trims to empty.
func (s *Post) Update(ctx context.Context, id int64, patch model.UpdatePostParams) (model.Post, error) {
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			post.Title = title
		}
	}
	if patch.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*patch.Excerpt)
	}
	if patch.Content != nil {
		if content := strings.TrimSpace(*patch.Content); content != "" {
			post.Content = content
		}
	}
	if patch.CoverImage != nil {
		post.CoverImage = strings.TrimSpace(*patch.CoverImage)
	}
	if patch.Category != nil {
		if category := strings.TrimSpace(*patch.Category); category != "" {
			post.Category = category
		}
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	saved, err := s.store.Update(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("Post service: post updated", "post_id", saved.ID, "published", saved.Published)
	return saved, nil
}

// Delete removes the post and returns its last known state as confirmation.
func (s *Post) Delete(ctx context.Context, id int64) (model.Post, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted", "post_id", deleted.ID)
	return deleted, nil
}
