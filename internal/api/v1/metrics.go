package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/statistics"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/tripmetrics"
)

// GetGlobalMetrics aggregates across delivered trips, recomputed from
// the live records on every call.
func (s *APIServer) GetGlobalMetrics(c *fiber.Ctx) error {
	trips, err := s.repos.Trip.List()
	if err != nil {
		return repoError(c, err)
	}
	itineraries, err := s.repos.Itinerary.List()
	if err != nil {
		return repoError(c, err)
	}
	global := tripmetrics.ComputeGlobalMetrics(trips, itineraries)
	return c.JSON(fiber.Map{
		"metrics": global,
		"display": fiber.Map{
			"avg_savings_usd":        tripmetrics.FormatCurrency(global.AvgSavingsUSD),
			"avg_miles_used":         tripmetrics.FormatAvgMiles(global.AvgMilesUsed),
			"avg_delivery_time_days": tripmetrics.FormatDays(global.AvgDeliveryTimeDays),
		},
	})
}

// GetDashboard returns the cached dashboard aggregates
func (s *APIServer) GetDashboard(c *fiber.Ctx) error {
	statistics.UpdateCacheIfNeeded()
	data, err := statistics.GetDashboardData()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(data)
}

// ListKnowledge returns every knowledge base article
func (s *APIServer) ListKnowledge(c *fiber.Ctx) error {
	articles, err := s.repos.Knowledge.List()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(articles)
}

// GetKnowledgeArticle returns one article by id
func (s *APIServer) GetKnowledgeArticle(c *fiber.Ctx) error {
	article, err := s.repos.Knowledge.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	telemetry.Record(telemetry.EventKnowledgeArticle, map[string]string{
		"article_id": article.ID,
	})
	return c.JSON(article)
}

// ListIntegrations returns the configured award-search integrations
func (s *APIServer) ListIntegrations(c *fiber.Ctx) error {
	integrations, err := s.repos.Integration.List()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(integrations)
}
