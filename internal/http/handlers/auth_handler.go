package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/log"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

type AuthHandler struct {
	Views *viewmodel.Registry
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username := c.FormValue("username")
	password := c.FormValue("password")

	if err := h.Views.For(sid).Auth.Login(c.UserContext(), username, password); err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": err.Error()})
	}

	log.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/items")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	if err := h.Views.For(sid).Auth.Signup(c.UserContext(), username, email, password); err != nil {
		msg := "Signup failed, please check your details and try again"
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			msg = ve.Error()
		}
		log.Security(c, "auth.signup.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": msg})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"username": username})
	return c.Redirect("/items")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Views.For(sid).Auth.Logout(c.UserContext()); err != nil {
		log.Error(c, "auth.logout", err, nil)
	}
	h.Views.Drop(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}
