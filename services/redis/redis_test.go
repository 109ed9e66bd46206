package redis

import (
	redis_models "Drawr/models/redis"
	"fmt"
	"testing"
	"time"
)

func TestRedisOperations(t *testing.T) {
	rc, err := InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer CloseRedis(rc)

	// Helper function to clean Redis data
	cleanupRedis := func() {
		keys := []string{
			"room:TEST:summary",
			"room:TEST:chat",
			"presence:test_player",
			"rooms:open",
		}
		if err := rc.CleanupKeys(keys); err != nil {
			t.Fatalf("Failed to cleanup Redis keys: %v", err)
		}
	}

	t.Run("RoomSummary Operations", func(t *testing.T) {
		cleanupRedis()
		summary := &redis_models.RoomSummary{
			RoomID:      "TEST",
			Mode:        "draw",
			HostName:    "test_player",
			PlayerCount: 3,
			MaxPlayers:  12,
			CreatedAt:   time.Now().Unix(),
		}

		fmt.Printf("\nOriginal Summary Data: %+v\n", summary)

		if err := rc.SaveRoomSummary(summary); err != nil {
			t.Errorf("Failed to save room summary: %v", err)
		}

		retrieved, err := rc.GetRoomSummary("TEST")
		if err != nil {
			t.Errorf("Failed to get room summary: %v", err)
		}
		fmt.Printf("Retrieved Summary from Redis: %+v\n", retrieved)

		if summary.RoomID != retrieved.RoomID ||
			summary.Mode != retrieved.Mode ||
			summary.PlayerCount != retrieved.PlayerCount {
			t.Errorf("Room summary data mismatch.")
		}

		listed, err := rc.ListOpenRooms()
		if err != nil {
			t.Errorf("Failed to list open rooms: %v", err)
		}
		found := false
		for _, s := range listed {
			if s.RoomID == "TEST" {
				found = true
			}
		}
		if !found {
			t.Errorf("Saved room missing from open rooms listing")
		}

		if err := rc.DeleteRoomSummary("TEST"); err != nil {
			t.Errorf("Failed to delete room summary: %v", err)
		}
		if _, err := rc.GetRoomSummary("TEST"); err == nil {
			t.Errorf("Expected error getting deleted room summary")
		}
	})

	t.Run("Chat Operations", func(t *testing.T) {
		cleanupRedis()
		for i := 0; i < 3; i++ {
			msg := &redis_models.ChatMessage{
				Message:   fmt.Sprintf("message %d", i),
				Username:  "test_player",
				Timestamp: time.Now(),
			}
			if err := rc.PushChatMessage("TEST", msg); err != nil {
				t.Errorf("Failed to push chat message: %v", err)
			}
		}

		history, err := rc.GetChatHistory("TEST")
		if err != nil {
			t.Errorf("Failed to get chat history: %v", err)
		}
		if len(history) != 3 {
			t.Fatalf("Expected 3 messages, got %d", len(history))
		}
		// Oldest first
		if history[0].Message != "message 0" || history[2].Message != "message 2" {
			t.Errorf("Chat history out of order: %+v", history)
		}
	})

	t.Run("Presence Operations", func(t *testing.T) {
		cleanupRedis()
		presence := &redis_models.PlayerPresence{
			Username: "test_player",
			Status:   redis_models.StatusPlaying,
			RoomID:   "TEST",
			LastPing: time.Now().Unix(),
		}

		if err := rc.SetPresence(presence); err != nil {
			t.Errorf("Failed to set presence: %v", err)
		}

		retrieved, err := rc.GetPresence("test_player")
		if err != nil {
			t.Errorf("Failed to get presence: %v", err)
		}
		if retrieved.Status != redis_models.StatusPlaying || retrieved.RoomID != "TEST" {
			t.Errorf("Presence data mismatch: %+v", retrieved)
		}

		if err := rc.DeletePresence("test_player"); err != nil {
			t.Errorf("Failed to delete presence: %v", err)
		}
	})
}
