package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"voidspace-backend/internal/domains/newsletter/model"
	"voidspace-backend/internal/domains/newsletter/service"
	postmodel "voidspace-backend/internal/domains/post/model"
	"voidspace-backend/internal/shared/response"
)

type NewsletterHandler struct {
	service service.NewsletterService
}

func NewNewsletterHandler(service service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe handles POST /newsletter/subscribe (public).
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, model.ErrAlreadySubscribed):
			response.Conflict(c, "This email is already subscribed")
		default:
			log.Error().Err(err).Msg("Error subscribing to newsletter")
			response.InternalServerError(c, "Failed to subscribe. Please try again.")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Unsubscribe handles POST /newsletter/unsubscribe (public).
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req model.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), &req); err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, model.ErrSubscriberNotFound):
			response.NotFound(c, "Email not found in subscriber list")
		default:
			log.Error().Err(err).Msg("Error unsubscribing from newsletter")
			response.InternalServerError(c, "Failed to unsubscribe. Please try again.")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "You have been unsubscribed"})
}

// SendCampaign handles POST /admin/newsletter/send.
func (h *NewsletterHandler) SendCampaign(c *gin.Context) {
	var req model.SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.SendCampaign(c.Request.Context(), &req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			response.BadRequest(c, err.Error())
		case errors.Is(err, postmodel.ErrPostNotFound):
			response.NotFound(c, "Post not found")
		default:
			log.Error().Err(err).Msg("Error sending newsletter campaign")
			response.InternalServerError(c, "Failed to send newsletter")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Stats handles GET /admin/newsletter/stats.
func (h *NewsletterHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching newsletter stats")
		response.InternalServerError(c, "Failed to fetch newsletter stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
