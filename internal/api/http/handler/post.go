package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// PostService defines blog post lifecycle operations.
type PostService interface {
	List(ctx context.Context, publishedOnly bool) ([]model.Post, error)
	Get(ctx context.Context, id int64) (model.Post, error)
	Create(ctx context.Context, params model.CreatePostParams) (model.Post, error)
	Update(ctx context.Context, id int64, patch model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, id int64) (model.Post, error)
}

// Post handles public post reads and the authenticated post mutations.
type Post struct {
	postService PostService
	logger      *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, logger *logger.Logger) *Post {
	return &Post{
		postService: postService,
		logger:      logger,
	}
}

type createPostRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category"`
	Published  bool   `json:"published"`
}

// updatePostRequest is a merge-patch: fields absent from the JSON stay nil
// and keep the stored value.
type updatePostRequest struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
	Category   *string `json:"category"`
	Published  *bool   `json:"published"`
}

// List returns all posts, or only published ones with ?published=1.
func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") == "1"

	posts, err := h.postService.List(r.Context(), publishedOnly)
	if err != nil {
		h.logger.Error("Post handler: list failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Erro ao carregar posts")
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "posts": posts})
}

// Get returns one post by id.
func (h *Post) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, errorMessages{
			notFound: "Post não encontrado",
			store:    "Erro ao carregar post",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "post": post})
}

// Create stores a new post. Requires a valid session token.
func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Título e conteúdo são obrigatórios")
		return
	}

	post, err := h.postService.Create(r.Context(), model.CreatePostParams{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Published:  req.Published,
	})
	if err != nil {
		h.logger.Error("Post handler: create failed", "error", err.Error())
		respondServiceError(w, err, errorMessages{
			invalid: "Título e conteúdo são obrigatórios",
			store:   "Erro ao salvar post",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "post": post})
}

// Update merge-patches a post. Toggling publish state is an Update carrying
// only the published field.
func (h *Post) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	post, err := h.postService.Update(r.Context(), id, model.UpdatePostParams{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Published:  req.Published,
	})
	if err != nil {
		h.logger.Error("Post handler: update failed", "post_id", id, "error", err.Error())
		respondServiceError(w, err, errorMessages{
			notFound: "Post não encontrado",
			store:    "Erro ao atualizar post",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "post": post})
}

// Delete removes a post and returns its last known state.
func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := h.postService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("Post handler: delete failed", "post_id", id, "error", err.Error())
		respondServiceError(w, err, errorMessages{
			notFound: "Post não encontrado",
			store:    "Erro ao excluir post",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "post": post})
}

// postID parses the id route parameter. A non-numeric id can never reference
// a post, so it reports the same 404 as a missing one.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Post não encontrado")
		return 0, false
	}
	return id, true
}
