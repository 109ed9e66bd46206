package handlers

import (
	"Drawr/services/game"
	"Drawr/services/redis"
	socketio_types "Drawr/services/socket_io/types"
	socketio_utils "Drawr/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func HandleStartGame(registry *game.Registry, redisClient *redis.RedisClient,
	client *socket.Socket, username string,
	session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		log.Printf("[START] User %s requested game start in room %s", username, room.ID)
		room.StartGame(playerID)

		// Room is no longer joinable while a game runs
		UpdateRoomDirectory(redisClient, room)
	}
}

func HandleChooseWord(registry *game.Registry, client *socket.Socket,
	username string, session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing word choice"})
			return
		}
		word, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid word choice"})
			return
		}

		log.Printf("[CHOOSE] User %s picked a word in room %s", username, room.ID)
		room.ChooseWord(playerID, word)
	}
}

func HandlePlayAgain(registry *game.Registry, redisClient *redis.RedisClient,
	client *socket.Socket, username string,
	session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		log.Printf("[REMATCH] User %s requested play_again in room %s", username, room.ID)
		room.PlayAgain(playerID)

		// Back in the lobby, the room is joinable again
		UpdateRoomDirectory(redisClient, room)
	}
}
