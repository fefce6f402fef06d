package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/repository"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/session"
)

// HandleAuthLogin renders the login form and processes submissions.
// Login failures never say whether the email or the password was wrong.
func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		data := baseViewData(c)
		if c.Query("error") != "" {
			data["Error"] = "There is a problem with the login process"
		}
		return c.Render("login", data)
	}

	email := c.FormValue("email")
	password := c.FormValue("password")

	agentRepo := repository.GetGlobalFactory().GetAgentRepository()
	agent, err := agentRepo.GetByEmail(email)
	if err != nil || agent == nil || !agent.IsActive() || !agent.CheckPassword(password) {
		return c.Redirect("/login?error=1", fiber.StatusSeeOther)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Redirect("/login?error=1", fiber.StatusSeeOther)
	}

	sess.Set(AUTH_KEY, true)
	sess.Set(AGENT_ID, agent.ID)
	sess.Set(AGENT_NAME, agent.Name)
	sess.Set(AGENT_IS_ADMIN, agent.Role == "admin")

	if err := sess.Save(); err != nil {
		return c.Redirect("/login?error=1", fiber.StatusSeeOther)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleAuthLogout destroys the session and returns to the login page
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	c.Locals(FROM_PROTECTED, false)

	return c.Redirect("/login", fiber.StatusSeeOther)
}
