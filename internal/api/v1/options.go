package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
)

// AddAwardOption appends an award option to a trip
func (s *APIServer) AddAwardOption(c *fiber.Ctx) error {
	var opt models.AwardOption
	if err := c.BodyParser(&opt); err != nil {
		return badRequest(c, "invalid award option payload")
	}
	if opt.TransferTime == "" {
		opt.TransferTime = models.TRANSFER_TIME_UNKNOWN
	}
	if err := opt.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Trip.AddAwardOption(c.Params("id"), &opt); err != nil {
		return repoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(opt)
}

// UpdateAwardOption replaces one award option
func (s *APIServer) UpdateAwardOption(c *fiber.Ctx) error {
	var opt models.AwardOption
	if err := c.BodyParser(&opt); err != nil {
		return badRequest(c, "invalid award option payload")
	}
	opt.ID = c.Params("optionID")
	if opt.TransferTime == "" {
		opt.TransferTime = models.TRANSFER_TIME_UNKNOWN
	}
	if err := opt.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Trip.UpdateAwardOption(c.Params("id"), &opt); err != nil {
		return repoError(c, err)
	}
	return c.JSON(opt)
}

// RemoveAwardOption deletes one award option from a trip. If the
// removed option was pinned, the pin clears with it.
func (s *APIServer) RemoveAwardOption(c *fiber.Ctx) error {
	if err := s.repos.Trip.RemoveAwardOption(c.Params("id"), c.Params("optionID")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PinAwardOption marks one option as the trip's primary recommendation
func (s *APIServer) PinAwardOption(c *fiber.Ctx) error {
	tripID := c.Params("id")
	optionID := c.Params("optionID")
	if err := s.repos.Trip.PinAwardOption(tripID, optionID); err != nil {
		return repoError(c, err)
	}
	telemetry.Record(telemetry.EventOptionPinned, map[string]string{
		"trip_id":   tripID,
		"option_id": optionID,
	})
	updated, err := s.repos.Trip.GetByID(tripID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(updated)
}

// UnpinAwardOption clears the trip's pin
func (s *APIServer) UnpinAwardOption(c *fiber.Ctx) error {
	tripID := c.Params("id")
	if err := s.repos.Trip.PinAwardOption(tripID, ""); err != nil {
		return repoError(c, err)
	}
	updated, err := s.repos.Trip.GetByID(tripID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(updated)
}

// AddHotelOption appends a hotel option to a trip
func (s *APIServer) AddHotelOption(c *fiber.Ctx) error {
	var hotel models.HotelOption
	if err := c.BodyParser(&hotel); err != nil {
		return badRequest(c, "invalid hotel option payload")
	}
	if err := hotel.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Trip.AddHotelOption(c.Params("id"), &hotel); err != nil {
		return repoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(hotel)
}

// RemoveHotelOption deletes one hotel option from a trip
func (s *APIServer) RemoveHotelOption(c *fiber.Ctx) error {
	if err := s.repos.Trip.RemoveHotelOption(c.Params("id"), c.Params("hotelID")); err != nil {
		return repoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
