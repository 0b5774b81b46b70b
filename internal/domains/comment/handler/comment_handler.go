package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/comment/model"
	"voidspace-backend/internal/domains/comment/service"
	"voidspace-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Submit handles POST /comments (public).
func (h *CommentHandler) Submit(c *gin.Context) {
	var req model.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), &req, c.GetString("client_ip"))
	if err != nil {
		h.mapSubmitError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *CommentHandler) mapSubmitError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(c, validationErr.Message)
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, model.ErrRateLimited):
		response.TooManyRequests(c, "You're commenting too frequently. Please wait a moment.")
	default:
		log.Error().Err(err).Msg("Error submitting comment")
		response.InternalServerError(c, "Failed to submit comment. Please try again.")
	}
}

// ListByPost handles GET /comments/:slug (public, approved only).
func (h *CommentHandler) ListByPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Post slug is required")
		return
	}

	comments, err := h.service.ListApprovedByPostSlug(c.Request.Context(), slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Error fetching comments")
		response.InternalServerError(c, "Failed to fetch comments")
		return
	}

	if comments == nil {
		comments = []model.PublicComment{}
	}

	response.Success(c, http.StatusOK, model.ListCommentsResponse{
		Comments: comments,
		Count:    len(comments),
	})
}

// ListPending handles GET /admin/comments/pending.
func (h *CommentHandler) ListPending(c *gin.Context) {
	comments, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching pending comments")
		response.InternalServerError(c, "Failed to fetch pending comments")
		return
	}

	if comments == nil {
		comments = []model.PendingComment{}
	}

	response.Success(c, http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// ListAll handles GET /admin/comments/all.
func (h *CommentHandler) ListAll(c *gin.Context) {
	comments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching comments")
		response.InternalServerError(c, "Failed to fetch comments")
		return
	}

	if comments == nil {
		comments = []model.AdminComment{}
	}

	response.Success(c, http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// Approve handles POST /admin/comments/:id/approve.
func (h *CommentHandler) Approve(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.service.Approve(c.Request.Context(), id); err != nil {
		h.mapModerationError(c, err, "approve")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment approved successfully"})
}

// Reject handles POST /admin/comments/:id/reject.
func (h *CommentHandler) Reject(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.service.Reject(c.Request.Context(), id); err != nil {
		h.mapModerationError(c, err, "reject")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment rejected successfully"})
}

// Delete handles DELETE /admin/comments/:id/delete.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.mapModerationError(c, err, "delete")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *CommentHandler) commentID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if raw == "" {
		response.BadRequest(c, "Comment ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "Comment ID is invalid")
		return uuid.Nil, false
	}

	return id, true
}

func (h *CommentHandler) mapModerationError(c *gin.Context, err error, action string) {
	if errors.Is(err, model.ErrCommentNotFound) {
		// "Never existed" and "already moderated" are the same 404 on
		// purpose; moderation ids are not probeable.
		response.NotFound(c, "Comment not found or already moderated")
		return
	}

	log.Error().Err(err).Str("action", action).Msg("Moderation operation failed")
	response.InternalServerError(c, "Failed to "+action+" comment")
}
