package socketio_types

import (
	"github.com/zishang520/socket.io/v2/socket"
)

// Emitter adapts the SocketServer to the engine's one-way broadcast
// boundary. Rooms address socket.io rooms by their game room id; single
// recipients are resolved through the player connection map.
type Emitter struct {
	sio *SocketServer
}

func NewEmitter(sio *SocketServer) *Emitter {
	return &Emitter{sio: sio}
}

func (e *Emitter) ToRoom(roomID string, event string, payload interface{}) {
	if e.sio.Sio_server == nil {
		return
	}
	e.sio.Sio_server.To(socket.Room(roomID)).Emit(event, payload)
}

func (e *Emitter) ToPlayer(roomID string, playerID string, event string, payload interface{}) {
	client, exists := e.sio.GetPlayerConnection(playerID)
	if !exists {
		return
	}
	client.Emit(event, payload)
}
