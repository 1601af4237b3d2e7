package controllers

import (
	"net/mail"
	"time"

	"proprospect-backend/database"
	"proprospect-backend/middlewares"
	"proprospect-backend/models"
	"proprospect-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	DisplayName     string `json:"display_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

func Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizeDTO(&req)

	if req.Password != req.PasswordConfirm {
		c.Status(400)
		return c.JSON(fiber.Map{
			"message": "passwords do not match",
		})
	}

	var mailExist models.User
	database.DB.Where("email = ?", req.Email).First(&mailExist)
	if mailExist.Email != "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "email already exists",
		})
	}

	user := models.User{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	}
	user.SetPassword(req.Password)
	if err := database.DB.Create(&user).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	return c.JSON(user)
}

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(data["email"]); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid email format",
		})
	}

	var user models.User
	database.DB.Where("email = ?", data["email"]).First(&user)
	if user.Id == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	if err := user.ComparePassword(data["password"]); err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	token, err := middlewares.GenerateJWT(user.Id, user.DisplayName)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not issue token",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.DisplayName,
			"email": user.Email,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// actingUser reconstructs the authenticated user from the JWT claims stashed
// by the auth middleware. Attribution fields only; no DB round trip.
func actingUser(c *fiber.Ctx) models.User {
	id, _ := c.Locals("userID").(string)
	name, _ := c.Locals("userName").(string)
	return models.User{Id: id, DisplayName: name}
}
