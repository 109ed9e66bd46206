package game

import "sync"

// recordingEmitter captures everything the engine publishes so tests can
// assert on broadcasts without a socket server.
type recordingEmitter struct {
	mu     sync.Mutex
	room   []emittedEvent
	player []emittedEvent
}

type emittedEvent struct {
	RoomID   string
	PlayerID string
	Event    string
	Payload  interface{}
}

func newRecordingEmitter() *recordingEmitter {
	return &recordingEmitter{}
}

func (e *recordingEmitter) ToRoom(roomID, event string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.room = append(e.room, emittedEvent{RoomID: roomID, Event: event, Payload: payload})
}

func (e *recordingEmitter) ToPlayer(roomID, playerID, event string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.player = append(e.player, emittedEvent{RoomID: roomID, PlayerID: playerID, Event: event, Payload: payload})
}

// countRoomEvents returns how many room-wide events with the given name
// were published.
func (e *recordingEmitter) countRoomEvents(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, ev := range e.room {
		if ev.Event == event {
			n++
		}
	}
	return n
}

// lastPlayerEvent returns the most recent single-recipient event with the
// given name, or nil.
func (e *recordingEmitter) lastPlayerEvent(event string) *emittedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.player) - 1; i >= 0; i-- {
		if e.player[i].Event == event {
			ev := e.player[i]
			return &ev
		}
	}
	return nil
}
