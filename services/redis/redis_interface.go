package redis

import (
	redis_models "Drawr/models/redis"
	redis_utils "Drawr/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChatHistoryLimit caps how many messages are retained per room.
const ChatHistoryLimit = 50

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveRoomSummary stores a room's directory entry and marks it as listed.
// Key format: "room:{id}:summary"
// TTL: 24 hours
func (rc *RedisClient) SaveRoomSummary(summary *redis_models.RoomSummary) error {
	key := redis_utils.FormatRoomSummaryKey(summary.RoomID)
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshaling room summary: %v", err)
	}

	if err := rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("error saving room summary: %v", err)
	}
	return rc.client.SAdd(rc.ctx, redis_utils.OpenRoomsSetKey, summary.RoomID).Err()
}

// GetRoomSummary retrieves a room's directory entry from Redis
// Key format: "room:{id}:summary"
func (rc *RedisClient) GetRoomSummary(roomId string) (*redis_models.RoomSummary, error) {
	key := redis_utils.FormatRoomSummaryKey(roomId)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting room summary: %v", err)
	}

	var summary redis_models.RoomSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshaling room summary: %v", err)
	}
	return &summary, nil
}

// DeleteRoomSummary removes a room from the directory along with its
// chat history.
func (rc *RedisClient) DeleteRoomSummary(roomId string) error {
	if err := rc.client.SRem(rc.ctx, redis_utils.OpenRoomsSetKey, roomId).Err(); err != nil {
		return fmt.Errorf("error unlisting room: %v", err)
	}
	keys := []string{
		redis_utils.FormatRoomSummaryKey(roomId),
		redis_utils.FormatRoomChatKey(roomId),
	}
	return rc.CleanupKeys(keys)
}

// ListOpenRooms returns every room currently in the directory set.
// Stale set members (whose summary key already expired) are pruned
// as a side effect.
func (rc *RedisClient) ListOpenRooms() ([]*redis_models.RoomSummary, error) {
	ids, err := rc.client.SMembers(rc.ctx, redis_utils.OpenRoomsSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing open rooms: %v", err)
	}

	summaries := make([]*redis_models.RoomSummary, 0, len(ids))
	for _, id := range ids {
		summary, err := rc.GetRoomSummary(id)
		if err != nil {
			// Summary expired, drop the dangling set member
			rc.client.SRem(rc.ctx, redis_utils.OpenRoomsSetKey, id)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// PushChatMessage appends a chat message to a room's history.
// Key format: "room:{id}:chat"
// TTL: 24 hours, capped at ChatHistoryLimit messages
func (rc *RedisClient) PushChatMessage(roomId string, msg *redis_models.ChatMessage) error {
	key := redis_utils.FormatRoomChatKey(roomId)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %v", err)
	}

	pipe := rc.client.Pipeline()
	pipe.LPush(rc.ctx, key, data)
	pipe.LTrim(rc.ctx, key, 0, ChatHistoryLimit-1)
	pipe.Expire(rc.ctx, key, 24*time.Hour)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("error pushing chat message: %v", err)
	}
	return nil
}

// GetChatHistory returns a room's retained chat messages in
// chronological order (oldest first).
func (rc *RedisClient) GetChatHistory(roomId string) ([]*redis_models.ChatMessage, error) {
	key := redis_utils.FormatRoomChatKey(roomId)
	raw, err := rc.client.LRange(rc.ctx, key, 0, ChatHistoryLimit-1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting chat history: %v", err)
	}

	// LPUSH stores newest first, so walk the range backwards
	messages := make([]*redis_models.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg redis_models.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %v", err)
		}
		messages = append(messages, &msg)
	}
	return messages, nil
}

// SetPresence stores a player's presence record
// Key format: "presence:{username}"
// TTL: 5 minutes, refreshed on every update
func (rc *RedisClient) SetPresence(presence *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPresenceKey(presence.Username)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 5*time.Minute).Err()
}

// GetPresence retrieves a player's presence record
func (rc *RedisClient) GetPresence(username string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(username)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting presence: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence: %v", err)
	}
	return &presence, nil
}

// DeletePresence removes a player's presence record
func (rc *RedisClient) DeletePresence(username string) error {
	key := redis_utils.FormatPresenceKey(username)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting presence: %v", err)
	}
	return nil
}
