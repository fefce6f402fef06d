package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/TripDeskHQ/TripDesk/internal/api/v1"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes require a logged-in agent session except ping
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	v1.Get("/ping", apiServer.GetPing)
	v1.Use(middleware.RequireAPISessionAuth)
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
