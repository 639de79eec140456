package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"
)

// ProfileHandler serves the session user's profile. Routes sit behind
// RequireUser, which stores the user in Locals.
type ProfileHandler struct {
	Auth *services.AuthService
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	return c.JSON(fiber.Map{"success": true, "data": u})
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid JSON body"})
	}
	name, nameOK := validate.Name(req.Name)
	if !nameOK {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Name and email are required"})
	}
	email, emailOK := validate.Email(req.Email)
	if !emailOK {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Please enter a valid email address"})
	}

	if err := h.Auth.Users.UpdateProfile(u.ID, name, email, req.Location, req.Bio); err != nil {
		applog.Error(c, "profile.update.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}

	updated, err := h.Auth.Users.ByID(u.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}
	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"success": true, "data": updated})
}
