package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/session"
)

func creds() session.Credentials {
	return session.Scoped(session.NewMemoryStore(), "test-sid")
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] == "alice" && body["password"] == "pw" {
			json.NewEncoder(w).Encode(map[string]string{"token": "T1"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password"})
	}))
	defer srv.Close()

	cr := creds()
	c := api.New(srv.URL, cr, srv.Client())

	tok, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T1", tok)

	stored, err := cr.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T1", stored)
}

func TestLoginRejectedLeavesStoreUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password"})
	}))
	defer srv.Close()

	cr := creds()
	c := api.New(srv.URL, cr, srv.Client())

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
	var ae *api.AuthError
	assert.ErrorAs(t, err, &ae)

	stored, err := cr.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMissingCredentialFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := api.New(srv.URL, creds(), srv.Client())
	ctx := context.Background()

	_, err := c.ListItems(ctx)
	assert.ErrorIs(t, err, api.ErrMissingCredential)
	_, err = c.ListCartItems(ctx)
	assert.ErrorIs(t, err, api.ErrMissingCredential)
	err = c.AddCartItem(ctx, 1, 2)
	assert.ErrorIs(t, err, api.ErrMissingCredential)
	err = c.RemoveCartItem(ctx, 1)
	assert.ErrorIs(t, err, api.ErrMissingCredential)
	err = c.DeleteCart(ctx)
	assert.ErrorIs(t, err, api.ErrMissingCredential)

	assert.Zero(t, calls.Load(), "no network call may happen without a credential")
}

func TestAuthHeaderCarriesRawToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The backend matches the header value verbatim; any scheme
		// prefix would break lookup.
		assert.Equal(t, "T1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]api.Item{})
	}))
	defer srv.Close()

	cr := creds()
	require.NoError(t, cr.Set(context.Background(), "T1"))
	c := api.New(srv.URL, cr, srv.Client())

	_, err := c.ListItems(context.Background())
	require.NoError(t, err)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username already exists"})
	}))
	defer srv.Close()

	c := api.New(srv.URL, creds(), srv.Client())

	_, err := c.CreateUser(context.Background(), "alice", "a@b.com", "pw")
	var se *api.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Equal(t, "Username already exists", se.Message)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := api.New(srv.URL, creds(), nil)

	_, err := c.ListUsers(context.Background())
	var ne *api.NetworkError
	require.ErrorAs(t, err, &ne)
	var se *api.ServerError
	assert.NotErrorAs(t, err, &se, "transport failures must not look like server errors")
}

func TestAddCartItemRejectsBadQuantityLocally(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	cr := creds()
	require.NoError(t, cr.Set(context.Background(), "T1"))
	c := api.New(srv.URL, cr, srv.Client())

	for _, qty := range []int{0, -1, -50} {
		err := c.AddCartItem(context.Background(), 1, qty)
		var ve *api.ValidationError
		require.ErrorAs(t, err, &ve)
	}
	assert.Zero(t, calls.Load())
}

func TestCreateUserRequiresAllFields(t *testing.T) {
	c := api.New("http://unused", creds(), nil)
	for _, tc := range [][3]string{
		{"", "a@b.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@b.com", ""},
	} {
		_, err := c.CreateUser(context.Background(), tc[0], tc[1], tc[2])
		var ve *api.ValidationError
		require.ErrorAs(t, err, &ve)
	}
}

func TestListCartItemsDecodesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/items", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"cartItems": []map[string]any{
				{"ID": 7, "ItemID": 1, "Quantity": 3, "Item": map[string]any{"ID": 1, "Name": "Widget", "Price": 9.99, "Status": "active"}},
			},
			"totalPrice": 29.97,
		})
	}))
	defer srv.Close()

	cr := creds()
	require.NoError(t, cr.Set(context.Background(), "T1"))
	c := api.New(srv.URL, cr, srv.Client())

	snap, err := c.ListCartItems(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, uint(7), snap.Lines[0].ID)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, "Widget", snap.Lines[0].Item.Name)
	assert.InDelta(t, 29.97, snap.TotalPrice, 1e-9)
	assert.InDelta(t, 29.97, snap.Lines[0].Subtotal(), 1e-9)
}

func TestCreateCartThenListCarts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carts", r.URL.Path)
		assert.Equal(t, "T1", r.Header.Get("Authorization"))
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(map[string]any{"ID": 4, "UserID": 2, "Status": "active"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"ID": 4, "UserID": 2, "Status": "active"},
		})
	}))
	defer srv.Close()

	cr := creds()
	require.NoError(t, cr.Set(context.Background(), "T1"))
	c := api.New(srv.URL, cr, srv.Client())

	cart, err := c.CreateCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(4), cart.ID)

	carts, err := c.ListCarts(context.Background())
	require.NoError(t, err)
	require.Len(t, carts, 1)
	assert.Equal(t, uint(2), carts[0].UserID)
}

func TestLogoutClearsCredential(t *testing.T) {
	cr := creds()
	require.NoError(t, cr.Set(context.Background(), "T1"))
	c := api.New("http://unused", cr, nil)

	require.NoError(t, c.Logout(context.Background()))
	stored, err := cr.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}
