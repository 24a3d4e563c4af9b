package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	snap := gc.gameService.CreateGame()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": snap.ID,
		"name":    snap.Name,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	snap, err := gc.gameService.GetGame(gameID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(snap)
}

// GetMoves returns the legal destinations of the piece at ?x=&y=.
func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	from, err := model.NewPosition(c.QueryInt("x", -1), c.QueryInt("y", -1))
	if err != nil {
		return sendError(c, err)
	}

	destinations, err := gc.gameService.Destinations(gameID(c), from)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":         from,
		"destinations": destinations,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move ws.MovePayload
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	snap, err := gc.gameService.HandleMove(gameID(c), move.From, move.To)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.RemoveGame(gameID(c)); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	snap, err := gc.gameService.Reset(gameID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(snap)
}

// gameID is the id EnsureGame resolved for this request.
func gameID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.GameIDKey).(string)
	return id
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrOutOfBounds):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrWrongTurn), errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrNoPiece):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
