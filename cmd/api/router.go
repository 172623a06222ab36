package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classweb-backend/internal/domains/content"
	contenthandler "classweb-backend/internal/domains/content/handler"
	"classweb-backend/internal/shared/middleware"
	"classweb-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	requireAuth := middleware.AuthMiddleware(c.JWTManager)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		api.POST("/auth/login", c.AuthHandler.Login)

		// Reads are public; every mutation requires the admin token.
		registerResource(api, content.KindInfo, c.InfoHandler, requireAuth)
		registerResource(api, content.KindGallery, c.GalleryHandler, requireAuth)
		registerResource(api, content.KindDirectory, c.DirectoryHandler, requireAuth)
		registerResource(api, content.KindAgenda, c.AgendaHandler, requireAuth)
		registerResource(api, content.KindAbout, c.AboutHandler, requireAuth)
	}

	return router
}

func registerResource(api *gin.RouterGroup, path string, h contenthandler.ResourceHandler, requireAuth gin.HandlerFunc) {
	g := api.Group("/" + path)
	{
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.POST("", requireAuth, h.Create)
		g.PUT("/:id", requireAuth, h.Update)
		g.DELETE("/:id", requireAuth, h.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.Mongo.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "store unreachable"})
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "cache unreachable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
