package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/log"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/validate"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

// ItemsHandler renders the catalog page and handles add-to-cart and the
// item-create form.
type ItemsHandler struct {
	Views *viewmodel.Registry
}

// List shows the catalog with the cart summary underneath, mirroring the
// storefront's main page.
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	err := v.Catalog.Load(c.UserContext())
	if isAuthFailure(err) {
		return c.Redirect("/login")
	}
	// Refresh the cart alongside; its own error state renders inline.
	_ = v.Cart.Refresh(c.UserContext())

	items, state, cartEmpty := v.Catalog.Items()
	snap, cartState, ready := v.Cart.Snapshot()
	return render(c, "items", fiber.Map{
		"Items":     items,
		"Err":       state.Err,
		"Notice":    v.Catalog.Notice(),
		"CartEmpty": cartEmpty,
		"Cart":      snap,
		"CartErr":   cartState.Err,
		"CartReady": ready,
	})
}

// AddToCart validates the quantity input and submits the add. A bad
// quantity renders inline without touching the network or the loaded
// catalog.
func (h *ItemsHandler) AddToCart(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	itemID, ok := validate.ItemID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}

	if err := v.Catalog.AddToCart(c.UserContext(), itemID, c.FormValue("quantity")); err != nil {
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			log.Info(c, "cart.add.rejected", map[string]any{"item_id": itemID})
		} else if isAuthFailure(err) {
			return c.Redirect("/login")
		} else {
			log.Error(c, "cart.add.fail", err, map[string]any{"item_id": itemID})
		}
	}
	return c.Redirect("/items")
}

// Checkout is a placeholder until a checkout subsystem exists.
func (h *ItemsHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	notice := h.Views.For(sid).Catalog.Checkout()
	return render(c, "notfound", fiber.Map{"Message": notice})
}

// CreateForm and Create expose the backend's item-create endpoint.
func (h *ItemsHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, "item_new", fiber.Map{"Err": ""})
}

func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)
	v := h.Views.For(sid)

	name := c.FormValue("name")
	price, ok := validate.Price(c.FormValue("price"))
	if name == "" || !ok {
		return c.Status(fiber.StatusBadRequest).Render("item_new", fiber.Map{"Err": "name and a non-negative price are required"})
	}
	status := c.FormValue("status")
	if status == "" {
		status = "active"
	}

	item, err := v.Catalog.CreateItem(c.UserContext(), name, price, status)
	if err != nil {
		if isAuthFailure(err) {
			return c.Redirect("/login")
		}
		log.Error(c, "items.create.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("item_new", fiber.Map{"Err": "could not create the item"})
	}
	log.Audit(c, "items.create", map[string]any{"item_id": item.ID})
	return c.Redirect("/items")
}
