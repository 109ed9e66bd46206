package handlers

import (
	redis_models "Drawr/models/redis"
	"Drawr/services/game"
	"Drawr/services/redis"
	socketio_types "Drawr/services/socket_io/types"
	socketio_utils "Drawr/services/socket_io/utils"
	"log"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// MaxChatMessageLength caps inbound chat text before relay.
const MaxChatMessageLength = 200

// truncateMessage caps the message at MaxChatMessageLength bytes without
// splitting a multi-byte rune.
func truncateMessage(message string) string {
	if len(message) <= MaxChatMessageLength {
		return message
	}
	cut := MaxChatMessageLength
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut]
}

func HandleChatMessage(registry *game.Registry, redisClient *redis.RedisClient,
	client *socket.Socket, username string, sio *socketio_types.SocketServer,
	session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing message"})
			return
		}
		message, ok := args[0].(string)
		if !ok || message == "" {
			client.Emit("error", gin.H{"error": "Invalid message format"})
			return
		}
		message = truncateMessage(message)

		// During a draw round every chat line doubles as a guess. A correct
		// guess is consumed by the engine and never relayed, so the answer
		// cannot leak to the rest of the room.
		if room.Mode == game.ModeDraw {
			if room.Guess(playerID, message) {
				log.Printf("[GUESS] User %s guessed the word in room %s", username, room.ID)
				return
			}
		}

		msg := &redis_models.ChatMessage{
			Message:   message,
			Username:  username,
			Timestamp: time.Now(),
		}
		if redisClient != nil {
			if err := redisClient.PushChatMessage(room.ID, msg); err != nil {
				log.Printf("[CHAT-ERROR] Error storing chat message in room %s: %v", room.ID, err)
			}
		}

		sio.Sio_server.To(socket.Room(room.ID)).Emit("chat_message", msg)
	}
}

// HandleSubmitGuess is the explicit guess path for clients that separate
// guessing from chat. Wrong guesses are dropped, never relayed.
func HandleSubmitGuess(registry *game.Registry, client *socket.Socket,
	username string, session *socketio_types.PlayerSession) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, playerID, err := socketio_utils.ValidateRoomSession(registry, client, session)
		if err != nil {
			return
		}

		if len(args) < 1 {
			return
		}
		text, ok := args[0].(string)
		if !ok || text == "" {
			return
		}

		if room.Guess(playerID, text) {
			log.Printf("[GUESS] User %s guessed the word in room %s", username, room.ID)
		}
	}
}
