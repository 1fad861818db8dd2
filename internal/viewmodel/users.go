package viewmodel

import (
	"context"
	"sync"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
)

// UserListViewModel backs the user directory page.
type UserListViewModel struct {
	api *api.Client

	mu    sync.Mutex
	state ViewState
	users []api.User
}

func NewUserListViewModel(c *api.Client) *UserListViewModel {
	return &UserListViewModel{api: c}
}

func (vm *UserListViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.start()
	users, err := vm.api.ListUsers(ctx)
	if err != nil {
		vm.state.fail(err)
		return err
	}
	vm.users = users
	vm.state.succeed()
	return nil
}

func (vm *UserListViewModel) Users() ([]api.User, ViewState) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.users, vm.state
}
