package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voidspace-backend/internal/shared/middleware"
	"voidspace-backend/pkg/container"
)

// SetupRouter wires middleware and routes onto a fresh engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIP(),
	)

	router.GET("/health", healthHandler(c))

	authorizer := middleware.NewStaticSecretAuthorizer(c.Config.Admin.APIKey)

	v1 := router.Group("/api/v1")
	{
		// Public comment surface
		v1.POST("/comments", c.CommentHandler.Submit)
		v1.GET("/comments/:slug", c.CommentHandler.ListByPost)

		// Public post surface
		v1.GET("/posts", c.PostHandler.List)
		v1.GET("/posts/:slug", c.PostHandler.GetBySlug)
		v1.GET("/tags", c.PostHandler.GetTags)
		v1.GET("/tags/:tag", c.PostHandler.ListByTag)
		v1.POST("/posts/:slug/views", c.PostHandler.IncrementViews)
		v1.POST("/posts/:slug/resonate", c.PostHandler.IncrementResonates)

		// Public newsletter surface
		v1.POST("/newsletter/subscribe", c.NewsletterHandler.Subscribe)
		v1.POST("/newsletter/unsubscribe", c.NewsletterHandler.Unsubscribe)

		// Admin surface, guarded by the shared moderation key
		admin := v1.Group("/admin", middleware.AdminAuth(authorizer))
		{
			admin.GET("/comments/pending", c.CommentHandler.ListPending)
			admin.GET("/comments/all", c.CommentHandler.ListAll)
			admin.POST("/comments/:id/approve", c.CommentHandler.Approve)
			admin.POST("/comments/:id/reject", c.CommentHandler.Reject)
			admin.DELETE("/comments/:id/delete", c.CommentHandler.Delete)

			admin.POST("/posts", c.PostHandler.Publish)

			admin.POST("/newsletter/send", c.NewsletterHandler.SendCampaign)
			admin.GET("/newsletter/stats", c.NewsletterHandler.Stats)
		}
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Degraded, not down; reads fall through to Postgres.
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	}
}
