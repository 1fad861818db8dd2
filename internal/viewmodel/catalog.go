package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/validate"
)

// CatalogViewModel lists the catalog and drives add-to-cart. A failed add
// never blanks the already-loaded item list, and a bad quantity is
// rejected before any network call.
type CatalogViewModel struct {
	api  *api.Client
	cart *CartViewModel

	mu        sync.Mutex
	state     ViewState
	items     []api.Item
	cartEmpty bool
	notice    string
}

func NewCatalogViewModel(c *api.Client, cart *CartViewModel) *CatalogViewModel {
	return &CatalogViewModel{api: c, cart: cart, cartEmpty: true}
}

// Load fetches the item list.
func (vm *CatalogViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.start()
	items, err := vm.api.ListItems(ctx)
	if err != nil {
		vm.state.fail(err)
		return err
	}
	vm.items = items
	vm.state.succeed()
	return nil
}

// AddToCart parses rawQuantity, submits the add and, on success, triggers
// the cart view's refresh so totals come back from the server.
func (vm *CatalogViewModel) AddToCart(ctx context.Context, itemID uint, rawQuantity string) error {
	qty, ok := validate.Quantity(rawQuantity)
	if !ok {
		err := &api.ValidationError{Field: "quantity", Reason: "must be a positive integer"}
		vm.mu.Lock()
		vm.state.fail(err)
		vm.notice = userMessage(err)
		vm.mu.Unlock()
		return err
	}

	if err := vm.api.AddCartItem(ctx, itemID, qty); err != nil {
		vm.mu.Lock()
		vm.state.fail(err)
		vm.setNoticeLocked(err)
		vm.mu.Unlock()
		return err
	}

	vm.mu.Lock()
	vm.cartEmpty = false
	vm.state.succeed()
	vm.mu.Unlock()

	return vm.cart.Refresh(ctx)
}

// CreateItem adds a catalog item and reloads the list so it shows up.
func (vm *CatalogViewModel) CreateItem(ctx context.Context, name string, price float64, status string) (api.Item, error) {
	item, err := vm.api.CreateItem(ctx, name, price, status)
	if err != nil {
		vm.mu.Lock()
		vm.state.fail(err)
		vm.mu.Unlock()
		return api.Item{}, err
	}
	return item, vm.Load(ctx)
}

// Checkout has no backend contract yet; the button renders a notice only.
func (vm *CatalogViewModel) Checkout() string {
	return "checkout is not available yet"
}

// setNoticeLocked records a mutation failure for the next page render.
// Auth failures are skipped; the presentation layer redirects those to the
// login page instead of rendering a message.
func (vm *CatalogViewModel) setNoticeLocked(err error) {
	var ae *api.AuthError
	if errors.As(err, &ae) {
		return
	}
	vm.notice = userMessage(err)
}

// Notice returns and clears the last mutation failure. It lives apart from
// ViewState.Err so the refresh that follows the post-mutation redirect
// cannot wipe it before the page renders.
func (vm *CatalogViewModel) Notice() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	n := vm.notice
	vm.notice = ""
	return n
}

// Items returns the loaded catalog, the view state and whether the cart
// is known to hold something.
func (vm *CatalogViewModel) Items() ([]api.Item, ViewState, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.items, vm.state, vm.cartEmpty
}
