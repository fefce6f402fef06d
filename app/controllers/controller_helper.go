package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/agentcontext"
)

// Shared session keys, aliased so controllers and middleware agree
const (
	AUTH_KEY       string = agentcontext.AuthKey
	AGENT_ID       string = agentcontext.KeyAgentID
	AGENT_NAME     string = agentcontext.KeyAgentName
	AGENT_IS_ADMIN string = agentcontext.KeyIsAdmin
	FROM_PROTECTED string = agentcontext.KeyFromProtected
)

// baseViewData returns the template variables every page needs.
func baseViewData(c *fiber.Ctx) fiber.Map {
	ctx := agentcontext.GetAgentContext(c)
	return fiber.Map{
		"IsLoggedIn": ctx.IsLoggedIn,
		"IsAdmin":    ctx.IsAdmin,
		"AgentName":  ctx.Name,
	}
}
