package viewmodel

import (
	"context"
	"errors"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/validate"
)

// Notices shown for auth failures. Deliberately generic: server internals
// never reach the login or signup page.
var (
	ErrLoginFailed  = errors.New("invalid username or password")
	ErrSignupFailed = errors.New("signup failed, please check your details and try again")
)

// AuthViewModel drives the login and signup forms. Successful calls leave
// the credential in the session store as a side effect of the API client.
type AuthViewModel struct {
	api *api.Client
}

func NewAuthViewModel(c *api.Client) *AuthViewModel {
	return &AuthViewModel{api: c}
}

func (vm *AuthViewModel) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrLoginFailed
	}
	if _, err := vm.api.Login(ctx, username, password); err != nil {
		var ne *api.NetworkError
		if errors.As(err, &ne) {
			return errors.New("cannot reach the shop right now, please try again")
		}
		return ErrLoginFailed
	}
	return nil
}

func (vm *AuthViewModel) Signup(ctx context.Context, username, email, password string) error {
	if _, ok := validate.Username(username); !ok {
		return &api.ValidationError{Field: "username", Reason: "use letters, digits, - or _"}
	}
	if _, ok := validate.Email(email); !ok {
		return &api.ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if !validate.Password(password) {
		return &api.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if _, err := vm.api.CreateUser(ctx, username, email, password); err != nil {
		return ErrSignupFailed
	}
	return nil
}

func (vm *AuthViewModel) Logout(ctx context.Context) error {
	return vm.api.Logout(ctx)
}
