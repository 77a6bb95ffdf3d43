package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/middleware"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Catalog endpoints - reads are public, writes are admin only
	sweetGroup := router.Group("/sweets")
	{
		sweetGroup.GET("", ListSweets)
		sweetGroup.GET("/:id", GetSweet)

		adminSweets := sweetGroup.Group("")
		adminSweets.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			adminSweets.POST("", CreateSweet)
			adminSweets.PATCH("/:id", UpdateSweet)
			adminSweets.DELETE("/:id", DeleteSweet)
		}
	}

	// Order endpoints - protected by AuthMiddleware, ownership checks
	// happen in the service
	orderGroup := router.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware())
	{
		orderGroup.GET("", ListOrders)
		orderGroup.POST("", CreateOrder)
		orderGroup.GET("/:id", GetOrder)
		orderGroup.PATCH("/:id", UpdateOrder)
	}

	// Profile endpoints - self-scoped
	profileGroup := router.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("", GetProfile)
		profileGroup.PATCH("", UpdateProfile)
		profileGroup.PATCH("/role", UpdateRole)
	}

	// Favorite endpoints - self-scoped
	favoriteGroup := router.Group("/favorites")
	favoriteGroup.Use(middleware.AuthMiddleware())
	{
		favoriteGroup.GET("", ListFavorites)
		favoriteGroup.POST("", AddFavorite)
		favoriteGroup.DELETE("", RemoveFavorite)
	}
}
