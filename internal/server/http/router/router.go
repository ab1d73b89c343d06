package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bookery/bookery/internal/server/http/handlers"
	"github.com/bookery/bookery/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	accessHandler := handlers.NewAccessHandler(facade)
	libraryHandler := handlers.NewLibraryHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	books := api.Group("/books")
	books.GET("", catalogHandler.List)
	books.GET("/:id", catalogHandler.Get)

	booksAuth := books.Group("")
	booksAuth.Use(middleware.AuthRequired(facade))
	booksAuth.GET("/:id/access", accessHandler.Check)

	booksAdmin := books.Group("")
	booksAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	booksAdmin.POST("", catalogHandler.Create)
	booksAdmin.PUT("/:id", catalogHandler.Update)
	booksAdmin.DELETE("/:id", catalogHandler.Delete)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/library", libraryHandler.List)
	userAuth.POST("/orders", orderHandler.Checkout)
	userAuth.GET("/orders", orderHandler.List)

	return engine
}
