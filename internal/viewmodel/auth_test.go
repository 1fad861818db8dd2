package viewmodel_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/session"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

func authSetup(t *testing.T, handler http.HandlerFunc) (*viewmodel.AuthViewModel, session.Credentials) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := session.Scoped(session.NewMemoryStore(), "sid")
	client := api.New(srv.URL, creds, srv.Client())
	return viewmodel.NewAuthViewModel(client), creds
}

func TestLoginFailureIsGeneric(t *testing.T) {
	vm, creds := authSetup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "user row missing in table users"})
	})

	err := vm.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, viewmodel.ErrLoginFailed) {
		t.Fatalf("want ErrLoginFailed, got %v", err)
	}
	// server internals must not leak into the notice
	if err.Error() != "invalid username or password" {
		t.Fatalf("leaky message: %q", err.Error())
	}
	if tok, _ := creds.Get(context.Background()); tok != "" {
		t.Fatal("credential stored despite rejected login")
	}
}

func TestLoginEmptyFieldsFailWithoutNetwork(t *testing.T) {
	called := false
	vm, _ := authSetup(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	if err := vm.Login(context.Background(), "", ""); err == nil {
		t.Fatal("expected failure")
	}
	if called {
		t.Fatal("empty credentials reached the network")
	}
}

func TestSignupConflictIsGeneric(t *testing.T) {
	vm, _ := authSetup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username already exists"})
	})

	err := vm.Signup(context.Background(), "alice", "alice@example.com", "pw12345")
	if !errors.Is(err, viewmodel.ErrSignupFailed) {
		t.Fatalf("want ErrSignupFailed, got %v", err)
	}
}

func TestSignupValidatesLocally(t *testing.T) {
	called := false
	vm, _ := authSetup(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	ctx := context.Background()

	cases := [][3]string{
		{"bad name!", "a@b.com", "pw"},
		{"alice", "not-an-email", "pw"},
		{"alice", "a@b.com", ""},
	}
	for _, tc := range cases {
		err := vm.Signup(ctx, tc[0], tc[1], tc[2])
		var ve *api.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("signup(%q,%q): want ValidationError, got %v", tc[0], tc[1], err)
		}
	}
	if called {
		t.Fatal("invalid signup input reached the network")
	}
}

func TestSignupStoresIssuedToken(t *testing.T) {
	vm, creds := authSetup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 5, "username": "bob", "token": "T9"})
	})

	if err := vm.Signup(context.Background(), "bob", "bob@example.com", "pw12345"); err != nil {
		t.Fatal(err)
	}
	tok, _ := creds.Get(context.Background())
	if tok != "T9" {
		t.Fatalf("token = %q, want T9", tok)
	}
}

func TestUserListLoads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]api.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}})
	}))
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, session.Scoped(session.NewMemoryStore(), "sid"), srv.Client())
	vm := viewmodel.NewUserListViewModel(client)

	if err := vm.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	users, state := vm.Users()
	if len(users) != 2 || state.Err != "" || state.Loading {
		t.Fatalf("users=%d state=%+v", len(users), state)
	}
}
