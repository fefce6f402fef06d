package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/statistics"
)

// HandleStart serves the agent dashboard
func HandleStart(c *fiber.Ctx) error {
	statistics.UpdateCacheIfNeeded()

	data := baseViewData(c)
	if dashboard, err := statistics.GetDashboardData(); err == nil {
		data["Dashboard"] = dashboard
	}
	return c.Render("dashboard", data)
}
