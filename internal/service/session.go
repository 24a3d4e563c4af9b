package service

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// Conn is the part of a WebSocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections watching a specific session
type Connections struct {
	conns map[string]Conn // connID -> connection
	mu    sync.RWMutex
}

func NewConnections() *Connections {
	return &Connections{conns: make(map[string]Conn)}
}

// Session is one board shared by both sides. It owns the current GameState
// and replaces it wholesale on every applied move.
type Session struct {
	ID          string
	Name        string
	mu          sync.Mutex
	state       model.GameState
	history     []model.AppliedMove
	connections *Connections
}

// Snapshot is what clients receive: the state plus session metadata.
type Snapshot struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	State   model.GameState     `json:"state"`
	Outcome model.Outcome       `json:"outcome"`
	History []model.AppliedMove `json:"history"`
}

func NewSession(id, name string) *Session {
	return &Session{
		ID:          id,
		Name:        name,
		state:       model.InitialGameState(),
		history:     make([]model.AppliedMove, 0),
		connections: NewConnections(),
	}
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	history := make([]model.AppliedMove, len(s.history))
	copy(history, s.history)
	return Snapshot{
		ID:      s.ID,
		Name:    s.Name,
		State:   s.state,
		Outcome: s.state.Outcome(),
		History: history,
	}
}

// Destinations lists the legal targets of the piece on from. An empty square
// has none.
func (s *Session) Destinations(from model.Position) []model.Position {
	gs := s.State()
	p, ok := gs.Board.PieceAt(from)
	if !ok {
		return []model.Position{}
	}
	return model.Destinations(p.At(from), gs)
}

// MakeMove applies a move for the side to move and broadcasts the result.
// The session stays locked until every watcher has been sent the new state,
// so watchers see snapshots in the order they were produced.
func (s *Session) MakeMove(from, to model.Position) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, applied, err := model.ApplyMove(s.state, from, to)
	if err != nil {
		return Snapshot{}, err
	}
	s.state = next
	s.history = append(s.history, applied)
	snap := s.snapshot()
	s.Broadcast(snap)
	return snap, nil
}

// Reset puts the session back to the initial position.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.InitialGameState()
	s.history = make([]model.AppliedMove, 0)
	snap := s.snapshot()
	s.Broadcast(snap)
	return snap
}

// RegisterConnection adds a watcher and sends it the current snapshot.
func (s *Session) RegisterConnection(connID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections.mu.Lock()
	if old, exists := s.connections.conns[connID]; exists {
		if err := old.Close(); err != nil {
			log.Warnw("failed to close replaced connection", "game", s.ID, "conn", connID, "error", err)
		}
	}
	s.connections.conns[connID] = conn
	s.connections.mu.Unlock()
	log.Debugw("registered connection", "game", s.ID, "conn", connID)

	s.send(connID, conn, s.snapshot())
}

func (s *Session) UnregisterConnection(connID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if _, exists := s.connections.conns[connID]; exists {
		delete(s.connections.conns, connID)
		log.Debugw("unregistered connection", "game", s.ID, "conn", connID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.conns)
}

// Close disconnects every watcher. The session is unusable for broadcasts
// afterwards.
func (s *Session) Close() {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for id, conn := range s.connections.conns {
		if err := conn.Close(); err != nil {
			log.Warnw("failed to close connection", "game", s.ID, "conn", id, "error", err)
		}
		delete(s.connections.conns, id)
	}
}

// Broadcast sends snap to every watcher. Failed connections are dropped.
func (s *Session) Broadcast(snap Snapshot) {
	s.connections.mu.RLock()
	active := make(map[string]Conn, len(s.connections.conns))
	for id, conn := range s.connections.conns {
		active[id] = conn
	}
	s.connections.mu.RUnlock()

	for id, conn := range active {
		s.send(id, conn, snap)
	}
}

func (s *Session) send(connID string, conn Conn, snap Snapshot) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, snap)
	if err != nil {
		log.Errorw("failed to marshal state", "game", s.ID, "error", err)
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Warnw("failed to send state", "game", s.ID, "conn", connID, "error", err)
		s.UnregisterConnection(connID)
	}
}
