package agentcontext

import "github.com/gofiber/fiber/v2"

// AgentContext represents the complete agent context for a request
type AgentContext struct {
	AgentID    uint   `json:"agent_id"`
	Name       string `json:"name"`
	IsLoggedIn bool   `json:"is_logged_in"`
	IsAdmin    bool   `json:"is_admin"`
}

// GetAgentContext retrieves the agent context from fiber context.
// Returns a default anonymous context if none is set.
func GetAgentContext(c *fiber.Ctx) AgentContext {
	if ctx := c.Locals("AGENT_CONTEXT"); ctx != nil {
		return ctx.(AgentContext)
	}
	return AgentContext{IsLoggedIn: false, IsAdmin: false}
}

// IsLoggedIn checks if the current agent is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetAgentContext(c).IsLoggedIn
}

// IsAdmin checks if the current agent is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetAgentContext(c).IsAdmin
}

// GetAgentID returns the current agent's ID, or 0 if not logged in
func GetAgentID(c *fiber.Ctx) uint {
	return GetAgentContext(c).AgentID
}

// GetAgentName returns the current agent's name, or empty string if not logged in
func GetAgentName(c *fiber.Ctx) string {
	return GetAgentContext(c).Name
}
