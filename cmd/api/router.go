package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/shared/middleware"
	"bookshelf-api/pkg/container"
)

// SetupRouter wires middlewares and routes. Listing every book is
// public; anything owner-scoped sits behind the JWT middleware.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)

	// Book routes
	router.GET("/", c.BookHandler.ListAll)
	router.GET("/books", c.BookHandler.Search)
	router.GET("/bookstore/user", auth, c.BookHandler.ListMine)
	router.POST("/book", auth, c.BookHandler.Create)
	router.GET("/book/:book_id", auth, c.BookHandler.GetByID)
	router.PUT("/book/:book_id", auth, c.BookHandler.Update)
	router.DELETE("/:book_id", auth, c.BookHandler.Delete)

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
		authGroup.POST("/refresh", c.UserHandler.RefreshToken)
	}

	router.GET("/health", healthCheckHandler(c))

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			// Cache is optional; a failed ping does not degrade overall status.
			redisStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
