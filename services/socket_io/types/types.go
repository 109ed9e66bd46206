package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It is used to handle socket.io connections.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track username -> socket connections
	UserConnections map[string]*socket.Socket
	// Map to track in-room player id -> socket connections, used for
	// single-recipient events like the actor's private word prompt
	PlayerConnections map[string]*socket.Socket
	mutex             sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections:   make(map[string]*socket.Socket),
		PlayerConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(username string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[username] = socket
}

func (s *SocketServer) RemoveConnection(username string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, username)
}

func (s *SocketServer) GetConnection(username string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[username]
	return socket, exists
}

func (s *SocketServer) AddPlayerConnection(playerID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PlayerConnections[playerID] = socket
}

func (s *SocketServer) RemovePlayerConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.PlayerConnections, playerID)
}

func (s *SocketServer) GetPlayerConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.PlayerConnections[playerID]
	return socket, exists
}

// PlayerSession is the per-connection game state, curried into every
// event handler at connection time and filled in by join_room.
type PlayerSession struct {
	mutex    sync.Mutex
	Username string
	PlayerID string
	RoomID   string
}

// Set records the room membership established by join_room.
func (ps *PlayerSession) Set(playerID, roomID string) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()
	ps.PlayerID = playerID
	ps.RoomID = roomID
}

// Current returns the session's player and room ids.
func (ps *PlayerSession) Current() (playerID, roomID string) {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()
	return ps.PlayerID, ps.RoomID
}
