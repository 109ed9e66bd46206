package routes

import (
	"Drawr/controllers"
	"Drawr/middleware"
	"Drawr/services/game"
	"Drawr/services/redis"
	utils "Drawr/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient,
	registry *game.Registry) {

	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/login", controllers.Login(db))

	api.POST("/signup", controllers.SignUp(db))

	api.GET("/users/:username", controllers.GetUserPublicInfo(db))

	api.GET("/users/:username/matches", controllers.GetMatchHistory(db))

	// Public room directory: browse before logging in
	api.GET("/rooms", controllers.ListRooms(redisClient))

	api.GET("/rooms/:id", controllers.GetRoomInfo(registry))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)

		authentication.GET("/me", controllers.GetPrivateUserInfo(db))

		authentication.PATCH("/update", controllers.UpdateUserInfo(db))

		authentication.POST("/rooms", controllers.CreateRoom(registry, redisClient))
	}
}
