package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/agentcontext"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/session"
)

// AgentContextMiddleware sets up the complete agent context for every
// request. This centralizes session handling so controllers only read
// from agentcontext.
func AgentContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals("AGENT_CONTEXT", agentcontext.AgentContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(agentcontext.KeyFromProtected, false)
		c.Locals(agentcontext.KeyIsAdmin, false)
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous()
	}

	rawID := sess.Get(agentcontext.KeyAgentID)
	if rawID == nil {
		return anonymous()
	}

	agentID := uint(0)
	switch v := rawID.(type) {
	case uint:
		agentID = v
	case int:
		agentID = uint(v)
	case string:
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			agentID = uint(parsed)
		}
	}
	if agentID == 0 {
		return anonymous()
	}

	name := session.GetSessionValue(c, agentcontext.KeyAgentName)
	isAdmin := false
	if v, ok := sess.Get(agentcontext.KeyIsAdmin).(bool); ok {
		isAdmin = v
	}

	c.Locals("AGENT_CONTEXT", agentcontext.AgentContext{
		AgentID:    agentID,
		Name:       name,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})
	c.Locals(agentcontext.KeyFromProtected, true)
	c.Locals(agentcontext.KeyIsAdmin, isAdmin)
	return c.Next()
}
