package handlers

import (
	"Drawr/services/game"
	"Drawr/services/redis"
	socketio_types "Drawr/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle socket.io client disconnections.
func HandleDisconnecting(registry *game.Registry, redisClient *redis.RedisClient,
	username string, sio *socketio_types.SocketServer,
	session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] HandleDisconnecting started - User: %s", username)

		playerID, roomID := session.Current()
		if roomID != "" {
			if room, exists := registry.Get(roomID); exists {
				room.Disconnect(playerID)

				sio.Sio_server.To(socket.Room(roomID)).Emit("player_left", gin.H{
					"player_id": playerID,
					"room_id":   roomID,
					"reason":    "disconnected",
				})

				if room.Empty() {
					log.Printf("[DISCONNECT] Room %s is empty, evicting", roomID)
					registry.Evict(roomID)
					if redisClient != nil {
						if err := redisClient.DeleteRoomSummary(roomID); err != nil {
							log.Printf("[DISCONNECT-ERROR] Error deleting room %s directory entry: %v", roomID, err)
						}
					}
				} else {
					UpdateRoomDirectory(redisClient, room)
				}
			}

			if client, exists := sio.GetConnection(username); exists {
				client.Leave(socket.Room(roomID))
			}
		}

		if redisClient != nil {
			if err := redisClient.DeletePresence(username); err != nil {
				log.Printf("[DISCONNECT-ERROR] Error deleting presence for %s: %v", username, err)
			}
		}

		// Finally remove connections from the maps
		if playerID != "" {
			sio.RemovePlayerConnection(playerID)
		}
		sio.RemoveConnection(username)
		log.Printf("[DISCONNECT-DONE] User disconnected: %s", username)
	}
}
