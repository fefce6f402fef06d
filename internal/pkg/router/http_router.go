package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/controllers"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/constants"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/middleware"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply AgentContext middleware globally as first middleware
	app.Use(middleware.AgentContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Agent dashboard
	app.Get(constants.PublicRoute, middleware.RequireAuth, controllers.HandleStart)

	// Auth
	app.Get(constants.LoginRoute, controllers.HandleAuthLogin)
	app.Post(constants.LoginRoute, controllers.HandleAuthLogin)
	app.Post(constants.LogoutRoute, middleware.RequireAuth, controllers.HandleAuthLogout)

	// Public itinerary pages; the share token is the only credential
	app.Get(constants.ShareRoute, controllers.HandleShareView)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
