package handlers

import (
	"Drawr/services/game"
	socketio_types "Drawr/services/socket_io/types"
	socketio_utils "Drawr/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func HandleTakeShot(registry *game.Registry, client *socket.Socket,
	username string, session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		if len(args) < 2 {
			client.Emit("error", gin.H{"error": "Missing shot vector"})
			return
		}
		vx, okX := args[0].(float64)
		vy, okY := args[1].(float64)
		if !okX || !okY {
			client.Emit("error", gin.H{"error": "Invalid shot vector"})
			return
		}

		log.Printf("[SHOT] User %s shot (%.1f, %.1f) in room %s", username, vx, vy, room.ID)

		// All shot validation (turn, power clamp, NaN rejection, stroke cap)
		// happens inside the engine; invalid shots are silently dropped.
		room.Shot(playerID, vx, vy)
	}
}
