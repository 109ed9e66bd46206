package socket_io

import (
	"Drawr/services/game"
	"Drawr/services/redis"
	"Drawr/services/socket_io/handlers"

	socketio_types "Drawr/services/socket_io/types"
	socketio_utils "Drawr/services/socket_io/utils"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB,
	redisClient *redis.RedisClient, registry *game.Registry) {
	log.DEBUG = true
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the maps, otherwise it panics
	sio.UserConnections = make(map[string]*socket.Socket)
	sio.PlayerConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, username, email := socketio_utils.VerifyUserConnection(client, db)
		if !success {
			return
		}

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(username, client)

		fmt.Println("An individual just connected!: ", username, email)

		// Per-connection game session, filled in by join_room
		session := &socketio_types.PlayerSession{Username: username}
		sioServer := (*socketio_types.SocketServer)(sio)

		// Join (or create) a game room
		client.On("join_room", handlers.HandleJoinRoom(registry, redisClient, client, db, username, sioServer, session))

		// Cosmetics: display name and avatar icon
		client.On("set_profile", handlers.HandleSetProfile(registry, client, username, session))

		// Lobby readiness flag
		client.On("set_ready", handlers.HandleSetReady(registry, client, username, session))

		// Host starts the game
		client.On("start_game", handlers.HandleStartGame(registry, redisClient, client, username, session))

		// Actor picks a word from the private choices
		client.On("choose_word", handlers.HandleChooseWord(registry, client, username, session))

		// Chat relay, doubling as guess submission during draw rounds
		client.On("chat_message", handlers.HandleChatMessage(registry, redisClient, client, username, sioServer, session))

		// Explicit guess submission, same consumption rules as chat
		client.On("submit_guess", handlers.HandleSubmitGuess(registry, client, username, session))

		// Golf shot vector
		client.On("take_shot", handlers.HandleTakeShot(registry, client, username, session))

		// Reset a finished game back to the lobby
		client.On("play_again", handlers.HandlePlayAgain(registry, redisClient, client, username, session))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(registry, redisClient, username, sioServer, session))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
