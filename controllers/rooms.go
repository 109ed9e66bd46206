package controllers

import (
	models "Drawr/models/postgres"
	"Drawr/services/game"
	"Drawr/services/redis"
	socket_handlers "Drawr/services/socket_io/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a game room
// @Description Creates an empty room and lists it in the public directory. Players join over the socket connection.
// @Tags rooms
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param mode formData string false "Game mode: draw (default) or golf"
// @Success 201 {object} object{room_id=string,mode=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/rooms [post]
// @Security ApiKeyAuth
func CreateRoom(registry *game.Registry, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := game.ModeDraw
		if game.Mode(c.PostForm("mode")) == game.ModeGolf {
			mode = game.ModeGolf
		}

		room := registry.Create("", mode)
		socket_handlers.UpdateRoomDirectory(redisClient, room)

		c.JSON(http.StatusCreated, gin.H{
			"room_id": room.ID,
			"mode":    room.Mode,
		})
	}
}

// @Summary List joinable rooms
// @Description Returns the advisory room directory from redis
// @Tags rooms
// @Produce json
// @Success 200 {array} object{room_id=string,mode=string,player_count=integer}
// @Failure 500 {object} object{error=string}
// @Router /rooms [get]
func ListRooms(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := redisClient.ListOpenRooms()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rooms"})
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// @Summary Get live room info
// @Description Returns the authoritative in-memory snapshot of a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room identifier"
// @Success 200 {object} game.RoomSnapshot
// @Failure 404 {object} object{error=string}
// @Router /rooms/{id} [get]
func GetRoomInfo(registry *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, exists := registry.Get(c.Param("id"))
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusOK, room.Snapshot())
	}
}

// @Summary Get a user's match history
// @Tags rooms
// @Produce json
// @Param username path string true "Public username"
// @Success 200 {array} postgres.MatchRecord
// @Failure 500 {object} object{error=string}
// @Router /users/{username}/matches [get]
func GetMatchHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var records []models.MatchRecord
		result := db.Where("winner = ? OR scoreboard ->> ? IS NOT NULL", username, username).
			Order("finished_at DESC").Limit(50).Find(&records)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching match history"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
