package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/render"
)

type GameService struct {
	gameManager *GameManager
	renderer    *render.Renderer
}

// NewGameService wires the service to its manager. A non-nil renderer logs
// the board after every move at debug level.
func NewGameService(gameManager *GameManager, renderer *render.Renderer) *GameService {
	return &GameService{
		gameManager: gameManager,
		renderer:    renderer,
	}
}

func (gs *GameService) CreateGame() Snapshot {
	session := gs.gameManager.CreateGame()
	log.Infow("game created", "game", session.ID, "name", session.Name, "games", gs.gameManager.Count())
	return session.Snapshot()
}

func (gs *GameService) GetGame(gameID string) (Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (gs *GameService) Destinations(gameID string, from model.Position) ([]model.Position, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.Destinations(from), nil
}

func (gs *GameService) HandleMove(gameID string, from, to model.Position) (Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return Snapshot{}, err
	}

	snap, err := session.MakeMove(from, to)
	if err != nil {
		log.Debugw("move rejected", "game", gameID, "from", from, "to", to, "error", err)
		return Snapshot{}, fmt.Errorf("game %s: %w", gameID, err)
	}

	log.Infow("move applied", "game", gameID, "from", from, "to", to,
		"turn", snap.State.Turn, "check", snap.State.Check, "outcome", snap.Outcome)
	if gs.renderer != nil {
		log.Debugf("game %s\n%s", gameID, gs.renderer.Board(snap.State))
	}
	return snap, nil
}

func (gs *GameService) Reset(gameID string) (Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return Snapshot{}, err
	}
	log.Infow("game reset", "game", gameID)
	return session.Reset(), nil
}

// RemoveGame ends a session and disconnects everyone watching it.
func (gs *GameService) RemoveGame(gameID string) error {
	session, err := gs.gameManager.RemoveGame(gameID)
	if err != nil {
		return err
	}
	session.Close()
	log.Infow("game removed", "game", gameID, "games", gs.gameManager.Count())
	return nil
}

func (gs *GameService) RegisterConnection(gameID, connID string, conn Conn) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	session.RegisterConnection(connID, conn)
	return nil
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(connID)
	log.Debugw("connection closed", "game", gameID, "remaining", session.ConnectionCount())
}
