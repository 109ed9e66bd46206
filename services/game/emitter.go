package game

// Emitter is the engine's one-way boundary towards the transport layer.
// The engine never reads anything back through it; it only publishes room
// multicasts and single-recipient events. The socket.io implementation lives
// in services/socket_io, tests use an in-memory recorder.
type Emitter interface {
	// ToRoom multicasts an event to every connected member of a room.
	ToRoom(roomID string, event string, payload interface{})
	// ToPlayer addresses a single player (e.g. the actor's private prompt).
	ToPlayer(roomID string, playerID string, event string, payload interface{})
}
