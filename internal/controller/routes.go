package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

// RegisterRoutes mounts the REST API and the WebSocket endpoint on app.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)
	ensureGame := middleware.EnsureGame(func(gameID string) error {
		_, err := gameService.GetGame(gameID)
		return err
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/ws/game/:gameId", ensureGame, middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", ensureGame, gameController.GetGameState)
	gameRoutes.Delete("/:gameId", ensureGame, gameController.DeleteGame)
	gameRoutes.Get("/:gameId/moves", ensureGame, gameController.GetMoves)
	gameRoutes.Post("/:gameId/move", ensureGame, gameController.MakeMove)
	gameRoutes.Post("/:gameId/reset", ensureGame, gameController.ResetGame)
}
