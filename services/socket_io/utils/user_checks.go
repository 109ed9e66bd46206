package socketio_utils

import (
	"Drawr/middleware"
	models "Drawr/models/postgres"
	"Drawr/services/game"
	socketio_types "Drawr/services/socket_io/types"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Function that verifies a socket.io client connection using JWT authentication.
// It extracts the email from the JWT token and retrieves the associated username from the database.
func VerifyUserConnection(client *socket.Socket, db *gorm.DB) (success bool, username, email string) {
	// Checks if we have auth data in the connection
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, "", ""
	}

	// Check if authorization token exists
	token, exists := authData["authorization"].(string)
	if !exists {
		fmt.Println("No authorization token provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing authorization token"})
		return false, "", ""
	}

	// Decode JWT to get the user's email
	fmt.Println("Provided JWT: ", token)
	email, err := middleware.Socketio_JWT_decoder(authData)
	if err != nil {
		fmt.Println("Error decoding JWT:", err)
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid JWT. Remember to set it on the 'Authorization' field and with the 'Bearer ' prefix.",
		})
		return false, "", ""
	}

	// Fetch username from database using the email
	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		fmt.Println("Error fetching user from database:", result.Error)
		client.Emit("error", gin.H{"error": "Authentication failed: could not find user"})
		return false, "", email
	}

	username = user.ProfileUsername
	return true, username, email
}

// Helper function to validate the session's room membership, returning the room if valid
func ValidateRoomSession(registry *game.Registry, client *socket.Socket,
	session *socketio_types.PlayerSession) (*game.Room, string, error) {

	playerID, roomID := session.Current()
	if roomID == "" {
		log.Printf("[SESSION-ERROR] User %s sent a room event without joining a room", session.Username)
		client.Emit("error", gin.H{"error": "You must join a room first"})
		return nil, "", fmt.Errorf("no room joined")
	}

	room, exists := registry.Get(roomID)
	if !exists {
		log.Printf("[SESSION-ERROR] Room %s no longer exists (user %s)", roomID, session.Username)
		client.Emit("error", gin.H{"error": "Room no longer exists"})
		return nil, "", fmt.Errorf("room not found")
	}

	return room, playerID, nil
}
