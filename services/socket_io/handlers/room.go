package handlers

import (
	game_constants "Drawr/constants/game"
	redis_models "Drawr/models/redis"
	"Drawr/services/game"
	"Drawr/services/redis"
	socketio_types "Drawr/services/socket_io/types"
	socketio_utils "Drawr/services/socket_io/utils"
	"Drawr/utils"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// UpdateRoomDirectory refreshes the redis directory entry for a room.
// The directory is advisory only; failures are logged, never surfaced.
func UpdateRoomDirectory(redisClient *redis.RedisClient, room *game.Room) {
	if redisClient == nil {
		return
	}
	roster := room.ActiveRoster()
	hostName := ""
	hostID := room.HostID()
	for _, p := range roster {
		if p.ID == hostID {
			hostName = p.Name
		}
	}
	summary := &redis_models.RoomSummary{
		RoomID:      room.ID,
		Mode:        string(room.Mode),
		HostName:    hostName,
		PlayerCount: len(roster),
		MaxPlayers:  game_constants.MaxPlayersPerRoom,
		InProgress:  room.CurrentState() != game.StateLobby,
		CreatedAt:   time.Now().Unix(),
	}
	if err := redisClient.SaveRoomSummary(summary); err != nil {
		log.Printf("[DIRECTORY-ERROR] Error updating room %s directory entry: %v", room.ID, err)
	}
}

func HandleJoinRoom(registry *game.Registry, redisClient *redis.RedisClient,
	client *socket.Socket, db *gorm.DB, username string, sio *socketio_types.SocketServer,
	session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[JOIN] HandleJoinRoom started - User: %s, Args: %v, Socket ID: %s",
			username, args, client.Id())

		if len(args) < 1 {
			log.Printf("[JOIN-ERROR] Missing room id for user %s", username)
			client.Emit("error", gin.H{"error": "Missing room id"})
			return
		}

		roomID, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		// Already in a room? One room per connection.
		if _, current := session.Current(); current != "" {
			client.Emit("error", gin.H{"error": "Already in a room"})
			return
		}

		mode := game.ModeDraw
		if len(args) >= 2 {
			if m, ok := args[1].(string); ok && game.Mode(m) == game.ModeGolf {
				mode = game.ModeGolf
			}
		}

		room := registry.GetOrCreate(roomID, mode)

		if len(room.ActiveRoster()) >= game_constants.MaxPlayersPerRoom {
			log.Printf("[JOIN-ERROR] Room %s is full, rejecting user %s", room.ID, username)
			client.Emit("error", gin.H{"error": "Room is full"})
			return
		}

		player := room.Join(username, username, utils.UserIcon(db, username))
		session.Set(player.ID, room.ID)
		sio.AddPlayerConnection(player.ID, client)
		client.Join(socket.Room(room.ID))

		UpdateRoomDirectory(redisClient, room)
		if redisClient != nil {
			presence := &redis_models.PlayerPresence{
				Username: username,
				Status:   redis_models.StatusPlaying,
				RoomID:   room.ID,
				LastPing: time.Now().Unix(),
			}
			if err := redisClient.SetPresence(presence); err != nil {
				log.Printf("[JOIN-ERROR] Error setting presence for %s: %v", username, err)
			}

			// Replay retained chat so late joiners get context
			if history, err := redisClient.GetChatHistory(room.ID); err == nil {
				for _, msg := range history {
					client.Emit("chat_message", msg)
				}
			}
		}

		log.Printf("[JOIN-SUCCESS] User %s joined room %s as player %s", username, room.ID, player.ID)
		client.Emit("room_joined", gin.H{
			"room_id":   room.ID,
			"player_id": player.ID,
			"mode":      room.Mode,
		})
	}
}

func HandleSetProfile(registry *game.Registry, client *socket.Socket,
	username string, session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing profile data"})
			return
		}

		// Defensive coercion: socket.io delivers JSON objects as
		// map[string]interface{} and numbers as float64
		data, ok := args[0].(map[string]interface{})
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid profile format"})
			return
		}

		name, _ := data["name"].(string)
		icon := 0
		if f, ok := data["icon"].(float64); ok {
			icon = int(f)
		}

		log.Printf("[PROFILE] User %s updating profile in room %s (name: %q, icon: %d)",
			username, room.ID, name, icon)
		room.SetProfile(playerID, name, icon)
	}
}

func HandleSetReady(registry *game.Registry, client *socket.Socket,
	username string, session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		ready := true
		if len(args) >= 1 {
			if b, ok := args[0].(bool); ok {
				ready = b
			}
		}

		log.Printf("[READY] User %s set ready=%v in room %s", username, ready, room.ID)
		room.SetReady(playerID, ready)
	}
}
