package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/repository"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "bad_request",
		"message": message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "not_found",
		"message": message,
	})
}

func unprocessable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "unprocessable",
		"message": message,
	})
}

// repoError maps repository failures onto JSON error responses.
func repoError(c *fiber.Ctx, err error) error {
	if repository.IsNotFound(err) {
		return notFound(c, err.Error())
	}
	if repository.IsNotImplemented(err) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
			"error":   "not_implemented",
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal",
		"message": err.Error(),
	})
}
