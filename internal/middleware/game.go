package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/service"
)

// Locals keys set by this package.
const (
	GameIDKey = "gameID"
	ConnIDKey = "connID"
)

// GameLookup reports whether a game exists.
type GameLookup func(gameID string) error

// EnsureGame rejects requests for unknown games before they reach a handler.
func EnsureGame(lookup GameLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		if err := lookup(gameID); err != nil {
			if errors.Is(err, service.ErrGameNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return err
		}

		c.Locals(GameIDKey, gameID)
		return c.Next()
	}
}
