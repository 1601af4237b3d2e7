package controllers

import (
	"proprospect-backend/activity"
	"proprospect-backend/database"
	"proprospect-backend/models"
	"proprospect-backend/panel"

	"github.com/gofiber/fiber/v2"
)

// Engine managers, one board/feed per property. The stores resolve
// database.DB at call time, so package init order does not matter.
var (
	Boards = panel.NewManager(database.ContactStore{})
	Feeds  = activity.NewManager(database.NoteStore{})
)

func GetProperty(c *fiber.Ctx) error {
	var property models.Property
	if err := database.FromCtx(c).Where("id = ?", c.Params("id")).First(&property).Error; err != nil {
		c.Status(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"message": "Property not found",
		})
	}
	return c.JSON(property)
}
