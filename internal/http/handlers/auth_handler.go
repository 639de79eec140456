package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "ecofinds/internal/log"
	"ecofinds/internal/services"
	"ecofinds/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, nameOK := validate.Name(c.FormValue("name"))
	email, emailOK := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")

	fail := func(msg string) error {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": msg, "CSRFToken": c.Cookies("csrf_")})
	}
	if !nameOK {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_name"})
		return fail("Enter a display name (up to 60 characters)")
	}
	if !emailOK {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_email"})
		return fail("Enter a valid email address")
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_password"})
		return fail("Password must be at least 8 characters")
	}

	_, err := h.Auth.Register(sid, name, email, pass)
	if err == services.ErrEmailTaken {
		return fail("An account with this email already exists")
	}
	if err != nil {
		applog.Error(c, "auth.register.error", err, nil)
		return fail("Could not create the account. Please try again.")
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
