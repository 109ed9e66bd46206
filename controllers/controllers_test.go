package controllers_test

import (
	"Drawr/controllers"
	"Drawr/middleware"
	"Drawr/services/game"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopEmitter struct{}

func (nopEmitter) ToRoom(roomID, event string, payload interface{})           {}
func (nopEmitter) ToPlayer(roomID, playerID, event string, payload interface{}) {}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", controllers.Ping)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auth/check", middleware.AuthRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := middleware.GenerateJWT("auth@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/auth/check", middleware.AuthRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "auth@example.com")
}

func TestGetRoomInfoNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := game.NewRegistry(nopEmitter{})

	router := gin.New()
	router.GET("/rooms/:id", controllers.GetRoomInfo(registry))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/ZZZZ", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRoomInfoReturnsSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := game.NewRegistry(nopEmitter{})
	room := registry.Create("ROOM", game.ModeGolf)
	room.Join("alice", "alice", 2)

	router := gin.New()
	router.GET("/rooms/:id", controllers.GetRoomInfo(registry))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/ROOM", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var snap game.RoomSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "ROOM", snap.RoomID)
	assert.Equal(t, game.ModeGolf, snap.Mode)
	assert.Equal(t, game.StateLobby, snap.State)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "alice", snap.Players[0].Name)
}
