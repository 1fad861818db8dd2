package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/log"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/validate"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

// CartHandler renders the cart summary and drives line removal and
// whole-cart deletion.
type CartHandler struct {
	Views *viewmodel.Registry
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	if err := v.Cart.Refresh(c.UserContext()); isAuthFailure(err) {
		return c.Redirect("/login")
	}
	snap, state, ready := v.Cart.Snapshot()
	return render(c, "cart", fiber.Map{
		"Cart":   snap,
		"Err":    state.Err,
		"Notice": v.Cart.Notice(),
		"Ready":  ready,
	})
}

func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	if err := v.Cart.RemoveLine(c.UserContext(), itemID); err != nil {
		if isAuthFailure(err) {
			return c.Redirect("/login")
		}
		log.Error(c, "cart.remove.fail", err, map[string]any{"item_id": itemID})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) DeleteAll(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	if err := v.Cart.DeleteAll(c.UserContext()); err != nil {
		if isAuthFailure(err) {
			return c.Redirect("/login")
		}
		log.Error(c, "cart.delete.fail", err, nil)
	} else {
		log.Audit(c, "cart.delete", nil)
	}
	return c.Redirect("/cart")
}
