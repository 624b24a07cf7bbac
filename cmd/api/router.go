package main

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	exposeStack := !c.Config.App.IsProduction()

	// Global middlewares
	router.Use(
		middleware.Recovery(exposeStack),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(middleware.DefaultCORSConfig()),
		middleware.ErrorHandler(exposeStack),
	)

	requireAuth := middleware.AuthMiddleware(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c.DB, c.Config.App.Version))

		setupAuthRoutes(v1, c, requireAuth)
		setupAuthorRoutes(v1, c, requireAuth)
		setupBookRoutes(v1, c, requireAuth)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/me", requireAuth, c.AuthHandler.Me)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	authors := v1.Group("/authors")
	{
		// Public
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/with-books", c.AuthorHandler.ListWithBooks)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/books", c.AuthorHandler.GetWithBooks)

		// Protected
		authors.POST("", requireAuth, c.AuthorHandler.Create)
		authors.PUT("/:id", requireAuth, c.AuthorHandler.Update)
		authors.DELETE("/:id", requireAuth, c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container, requireAuth gin.HandlerFunc) {
	books := v1.Group("/books")
	{
		// Public
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.GET("/:id/author", c.BookHandler.GetWithAuthor)

		// Protected
		books.POST("", requireAuth, c.BookHandler.Create)
		books.PUT("/:id", requireAuth, c.BookHandler.Update)
		books.DELETE("/:id", requireAuth, c.BookHandler.Delete)
	}
}
