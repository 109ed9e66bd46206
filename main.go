package main

import (
	"Drawr/config"
	_ "Drawr/config/swagger"
	"Drawr/middleware"
	"Drawr/routes"
	"Drawr/services/game"
	"Drawr/services/redis"
	"Drawr/services/socket_io"
	socketio_types "Drawr/services/socket_io/types"
	"Drawr/services/sync"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Drawr API
// @version 1.0
// @description Gin-Gonic server for the "Drawr" game API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connection to Redis successful")
	defer redis.CloseRedis(redisClient)

	// The socket server doubles as the engine's broadcast boundary
	sioServer := socketio_types.NewSocketServer()
	registry := game.NewRegistry(socketio_types.NewEmitter(sioServer))

	// Persist final scoreboards once a game reaches its terminal state
	syncManager := sync.NewSyncManager(redisClient, gormDB)
	registry.OnGameOver = func(roomID string, mode game.Mode, scoresByUser map[string]int) {
		if err := syncManager.PersistGameResult(roomID, mode, scoresByUser); err != nil {
			log.Printf("[SYNC-ERROR] Error persisting game result for room %s: %v", roomID, err)
		}
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, gormDB, redisClient, registry)

	(*socket_io.MySocketServer)(sioServer).Start(r, gormDB, redisClient, registry)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		if os.Getenv("USE_HTTPS") == "true" {
			port = "443"
		} else {
			port = "8080"
		}
	}

	if os.Getenv("USE_HTTPS") == "true" {
		//SSL certification configuration for HTTPS
		certFile := os.Getenv("TLS_CERT_FILE")
		keyFile := os.Getenv("TLS_KEY_FILE")

		// Start server
		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
