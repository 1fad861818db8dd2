package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
)

// CartViewModel keeps the displayed cart equal to the server's state.
// Totals are never recomputed locally; every mutation is followed by a
// full refetch, and the mutex queues a second mutation behind an in-flight
// mutation+refresh pair so refreshes cannot interleave.
type CartViewModel struct {
	api *api.Client

	mu     sync.Mutex
	state  ViewState
	snap   api.CartSnapshot
	ready  bool
	notice string
}

func NewCartViewModel(c *api.Client) *CartViewModel {
	return &CartViewModel{api: c}
}

// Refresh refetches the authoritative snapshot. On success the whole
// snapshot is replaced at once; on failure the previous one stays
// displayed (stale-but-available over blank).
func (vm *CartViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.refreshLocked(ctx)
}

func (vm *CartViewModel) refreshLocked(ctx context.Context) error {
	vm.state.start()
	snap, err := vm.api.ListCartItems(ctx)
	if err != nil {
		vm.state.fail(err)
		return err
	}
	vm.snap = snap
	vm.ready = true
	vm.state.succeed()
	return nil
}

// RemoveLine deletes one line, then refetches. The remove acknowledgment
// is not trusted as cart state; only the follow-up fetch is.
func (vm *CartViewModel) RemoveLine(ctx context.Context, itemID uint) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err := vm.api.RemoveCartItem(ctx, itemID); err != nil {
		vm.refreshLocked(ctx)
		vm.state.fail(err)
		vm.setNoticeLocked(err)
		return err
	}
	return vm.refreshLocked(ctx)
}

// DeleteAll empties the cart server-side, then refetches; the follow-up
// snapshot is expected to come back empty.
func (vm *CartViewModel) DeleteAll(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err := vm.api.DeleteCart(ctx); err != nil {
		vm.refreshLocked(ctx)
		vm.state.fail(err)
		vm.setNoticeLocked(err)
		return err
	}
	return vm.refreshLocked(ctx)
}

func (vm *CartViewModel) setNoticeLocked(err error) {
	var ae *api.AuthError
	if errors.As(err, &ae) {
		return
	}
	vm.notice = userMessage(err)
}

// Notice returns and clears the last mutation failure. Kept apart from
// ViewState.Err so the refresh on the next page view cannot erase it
// before it renders.
func (vm *CartViewModel) Notice() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	n := vm.notice
	vm.notice = ""
	return n
}

// Snapshot returns the last fetched cart and the view state. ready is
// false until the first successful refresh.
func (vm *CartViewModel) Snapshot() (api.CartSnapshot, ViewState, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.snap, vm.state, vm.ready
}

// Empty reports whether the last fetched snapshot had no lines.
func (vm *CartViewModel) Empty() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return !vm.ready || len(vm.snap.Lines) == 0
}
