package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatRoomSummaryKey(roomId string) string {
	return fmt.Sprintf("room:%s:summary", roomId)
}

func FormatRoomChatKey(roomId string) string {
	return fmt.Sprintf("room:%s:chat", roomId)
}

func FormatPresenceKey(username string) string {
	return fmt.Sprintf("presence:%s", username)
}

// OpenRoomsSetKey is the set holding the ids of rooms currently listed
// in the public directory.
const OpenRoomsSetKey = "rooms:open"
