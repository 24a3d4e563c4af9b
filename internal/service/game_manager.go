// service/game_manager.go
package service

import (
	"errors"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live session.
type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
	}
}

// CreateGame starts a session with a fresh id and a readable name.
func (gm *GameManager) CreateGame() *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	id := uuid.New().String()
	session := NewSession(id, petname.Generate(2, "-"))
	gm.games[id] = session
	return session
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// RemoveGame drops the session from the registry and returns it so the
// caller can disconnect its watchers.
func (gm *GameManager) RemoveGame(gameID string) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	delete(gm.games, gameID)
	return session, nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
