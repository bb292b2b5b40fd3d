package router

import (
	"net/http"

	_ "socialnet/backend/docs" // registers the swagger spec

	"socialnet/backend/internal/auth"
	"socialnet/backend/internal/handler"
	"socialnet/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// New builds the HTTP router. Handlers read database.DB and config.AppConfig.
func New(log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.CORS(),
		auth.TokenSubjectMiddleware(handler.Tokens()),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: "Not found"})
	})

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Each family dispatches on method and body.action itself.
	apiV1 := router.Group("/api/v1")
	{
		apiV1.Any("/auth", handler.Auth)
		apiV1.Any("/friends", handler.Friends)
		apiV1.Any("/posts", handler.Posts)
	}

	return router
}
