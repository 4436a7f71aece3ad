package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/apdd/apdd-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `id, title, excerpt, content, cover_image, category, published, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }, post *model.Post) error {
	return row.Scan(
		&post.ID, &post.Title, &post.Excerpt, &post.Content,
		&post.CoverImage, &post.Category, &post.Published,
		&post.CreatedAt, &post.UpdatedAt,
	)
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `
		INSERT INTO blog_posts (title, excerpt, content, cover_image, category, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	var saved model.Post
	err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Excerpt, post.Content, post.CoverImage, post.Category, post.Published,
	), &saved)
	if err != nil {
		return model.Post{}, storeErr(err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	var post model.Post
	err := scanPost(r.db.QueryRowContext(ctx, query, id), &post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, storeErr(err)
	}

	return post, nil
}

func (r *PostRepository) GetAll(ctx context.Context, publishedOnly bool) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + postColumns + ` FROM blog_posts WHERE published = TRUE ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		if err := scanPost(rows, &post); err != nil {
			return nil, storeErr(err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return posts, nil
}

// Update overwrites every mutable column and refreshes updated_at. Merge-patch
// resolution against the stored row happens in the service layer.
func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `
		UPDATE blog_posts
		SET title = $1, excerpt = $2, content = $3, cover_image = $4, category = $5, published = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + postColumns

	var saved model.Post
	err := scanPost(r.db.QueryRowContext(ctx, query,
		post.Title, post.Excerpt, post.Content, post.CoverImage, post.Category, post.Published, post.ID,
	), &saved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, storeErr(err)
	}

	return saved, nil
}

// Delete removes the post and returns its last stored state.
func (r *PostRepository) Delete(ctx context.Context, id int64) (model.Post, error) {
	query := `DELETE FROM blog_posts WHERE id = $1 RETURNING ` + postColumns

	var deleted model.Post
	err := scanPost(r.db.QueryRowContext(ctx, query, id), &deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, storeErr(err)
	}

	return deleted, nil
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *PostRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts WHERE published = TRUE`).Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
