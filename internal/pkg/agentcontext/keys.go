package agentcontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyAgentID       = "agent_id"
	KeyAgentName     = "agent_name"
	KeyIsAdmin       = "isAdmin"
	KeyFromProtected = "from_protected"
)
