package app

import (
	"smartexam_backend/docs"
	"smartexam_backend/internal/config"
	"smartexam_backend/internal/middleware"
	"smartexam_backend/internal/model"
	"smartexam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	storeReady := middleware.RequireStore(cfg.Mongo.Configured())

	// Public routes: liveness plus the payment provider callback, which
	// authenticates by payload rather than portal session.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/webhooks/stripe", storeReady, c.webhook.HandleStripe)
	}

	// Everything else is the admin portal surface.
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		questions := admin.Group("/questions", storeReady)
		{
			questions.GET("", c.question.List)
			questions.POST("", c.question.Create)
		}

		packs := admin.Group("/packs", storeReady)
		{
			packs.GET("", c.pack.List)
			packs.POST("", c.pack.Create)
			packs.PATCH("/:id", c.pack.Update)
			packs.DELETE("/:id", c.pack.Delete)
			packs.POST("/:id/publish", c.pack.Publish)
		}

		admin.POST("/ai/generate", c.ai.Generate)

		admin.GET("/stats", storeReady, c.stats.GetDashboard)
		admin.GET("/users", storeReady, c.user.List)

		logs := admin.Group("/verification-logs", storeReady)
		{
			logs.GET("", c.verification.List)
			logs.POST("", c.verification.Create)
			logs.PATCH("", c.verification.Update)
		}

		admin.POST("/uploads/question-image", c.upload.UploadQuestionImage)
	}
}
