package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/post/model"
	"voidspace-backend/internal/domains/post/service"
	"voidspace-backend/internal/shared/response"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts (public, published only).
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching posts")
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// GetBySlug handles GET /posts/:slug (public).
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Post slug is required")
		return
	}

	post, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error fetching post")
		response.InternalServerError(c, "Failed to fetch post")
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ListByTag handles GET /tags/:tag (public).
func (h *PostHandler) ListByTag(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		response.BadRequest(c, "Tag is required")
		return
	}

	posts, err := h.service.ListByTag(c.Request.Context(), tag)
	if err != nil {
		log.Error().Err(err).Str("tag", tag).Msg("Error fetching posts by tag")
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// GetTags handles GET /tags (public).
func (h *PostHandler) GetTags(c *gin.Context) {
	counts, err := h.service.GetTagCounts(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching tags")
		response.InternalServerError(c, "Failed to fetch tags")
		return
	}

	if counts == nil {
		counts = []model.TagCount{}
	}

	response.Success(c, http.StatusOK, gin.H{"tags": counts})
}

// Publish handles POST /admin/posts (admin).
func (h *PostHandler) Publish(c *gin.Context) {
	var req model.PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Publish(c.Request.Context(), &req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, model.ErrSlugTaken):
			response.Conflict(c, "A post with this title already exists")
		default:
			log.Error().Err(err).Msg("Error publishing post")
			response.InternalServerError(c, "Failed to publish post")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// IncrementViews handles POST /posts/:slug/views (public).
func (h *PostHandler) IncrementViews(c *gin.Context) {
	slug := c.Param("slug")

	views, err := h.service.IncrementViews(c.Request.Context(), slug)
	if err != nil {
		h.mapEngagementError(c, err, slug, "views")
		return
	}

	response.Success(c, http.StatusOK, model.EngagementResponse{Views: &views})
}

// IncrementResonates handles POST /posts/:slug/resonate (public).
func (h *PostHandler) IncrementResonates(c *gin.Context) {
	slug := c.Param("slug")

	resonates, err := h.service.IncrementResonates(c.Request.Context(), slug)
	if err != nil {
		h.mapEngagementError(c, err, slug, "resonate")
		return
	}

	response.Success(c, http.StatusOK, model.EngagementResponse{Resonates: &resonates})
}

func (h *PostHandler) mapEngagementError(c *gin.Context, err error, slug, counter string) {
	if errors.Is(err, model.ErrPostNotFound) {
		response.NotFound(c, "Post not found")
		return
	}

	log.Error().Err(err).Str("slug", slug).Str("counter", counter).Msg("Engagement update failed")
	response.InternalServerError(c, "Failed to update post")
}
