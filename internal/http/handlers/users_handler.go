package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

// UsersHandler renders the user directory.
type UsersHandler struct {
	Views *viewmodel.Registry
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	if err := v.Users.Load(c.UserContext()); isAuthFailure(err) {
		return c.Redirect("/login")
	}
	users, state := v.Users.Users()
	return render(c, "users", fiber.Map{
		"Users": users,
		"Err":   state.Err,
	})
}
