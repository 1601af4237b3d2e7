package controllers

import (
	"proprospect-backend/database"
	"proprospect-backend/models"
	"proprospect-backend/services"

	"github.com/gofiber/fiber/v2"
)

// GenerateScript produces a cold-call script for one contact. The result is
// inert display text; failures come back as fallback text, never as faults.
func GenerateScript(c *fiber.Ctx) error {
	board, err := boardFor(c)
	if err != nil {
		return err
	}
	contact, err := board.Contact(c.Params("contactId"))
	if err != nil {
		return engineReply(c, err)
	}

	var property models.Property
	if err := database.FromCtx(c).Where("id = ?", c.Params("id")).First(&property).Error; err != nil {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"message": "Property not found",
		})
	}

	script := services.GenerateCallScript(c.UserContext(), contact, property, actingUser(c))
	return c.JSON(fiber.Map{
		"script": script,
	})
}
