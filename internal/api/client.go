package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/session"
)

// DefaultTimeout bounds a single backend round-trip.
const DefaultTimeout = 30 * time.Second

// Client wraps the shop backend's REST API, one method per endpoint.
// Every failure is normalized into one of ValidationError, AuthError,
// NetworkError or ServerError, so callers never branch on transport
// internals.
type Client struct {
	baseURL string
	creds   session.Credentials
	httpc   *http.Client
}

// New builds a client against baseURL, reading and writing the credential
// through creds. Pass a shared *http.Client to reuse connections across
// per-session clients; nil gets a default one.
func New(baseURL string, creds session.Credentials, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: baseURL, creds: creds, httpc: httpc}
}

// errBody is the error envelope the backend uses on non-2xx responses.
type errBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes a 2xx body into out (out may be nil).
// token is sent verbatim in the Authorization header when non-empty; the
// backend looks sessions up by the raw value, so no scheme prefix is added.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "something went wrong"
		var eb errBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Err: &ServerError{Status: resp.StatusCode, Message: msg}}
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ServerError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

// authorize fetches the stored credential, failing before any network
// activity when none is present.
func (c *Client) authorize(ctx context.Context) (string, error) {
	tok, err := c.creds.Get(ctx)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	if tok == "" {
		return "", &AuthError{Err: ErrMissingCredential}
	}
	return tok, nil
}

// ListUsers returns the user directory. No credential required.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// CreateUser signs a new user up. On success the issued credential is
// stored, so the fresh account is immediately logged in.
func (c *Client) CreateUser(ctx context.Context, username, email, password string) (string, error) {
	switch {
	case username == "":
		return "", &ValidationError{Field: "username", Reason: "must not be empty"}
	case email == "":
		return "", &ValidationError{Field: "email", Reason: "must not be empty"}
	case password == "":
		return "", &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	var tr tokenResponse
	err := c.do(ctx, http.MethodPost, "/signup", "", signupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &tr)
	if err != nil {
		return "", err
	}
	if tr.Token != "" {
		if err := c.creds.Set(ctx, tr.Token); err != nil {
			return "", err
		}
	}
	return tr.Token, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and stores it. Rejected
// credentials surface as AuthError wrapping ErrInvalidCredentials; the
// server's own wording is never shown to the user.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var tr tokenResponse
	err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &tr)
	if err != nil {
		var ae *AuthError
		if errors.As(err, &ae) {
			return "", &AuthError{Err: ErrInvalidCredentials}
		}
		return "", err
	}
	if err := c.creds.Set(ctx, tr.Token); err != nil {
		return "", err
	}
	return tr.Token, nil
}

// Logout drops the stored credential. Purely local; the backend keeps its
// own token lifecycle.
func (c *Client) Logout(ctx context.Context) error {
	return c.creds.Clear(ctx)
}

// ListItems returns the catalog.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	tok, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/items", tok, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type createItemRequest struct {
	Name   string  `json:"Name"`
	Price  float64 `json:"Price"`
	Status string  `json:"Status"`
}

// CreateItem adds a catalog item.
func (c *Client) CreateItem(ctx context.Context, name string, price float64, status string) (Item, error) {
	if name == "" {
		return Item{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return Item{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	tok, err := c.authorize(ctx)
	if err != nil {
		return Item{}, err
	}
	var item Item
	err = c.do(ctx, http.MethodPost, "/items", tok, createItemRequest{
		Name:   name,
		Price:  price,
		Status: status,
	}, &item)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

// ListCarts returns the raw cart records visible to this user.
func (c *Client) ListCarts(ctx context.Context) ([]Cart, error) {
	tok, err := c.authorize(ctx)
	if err != nil {
		return nil, err
	}
	var carts []Cart
	if err := c.do(ctx, http.MethodGet, "/carts", tok, nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// CreateCart creates a cart for the current user.
func (c *Client) CreateCart(ctx context.Context) (Cart, error) {
	tok, err := c.authorize(ctx)
	if err != nil {
		return Cart{}, err
	}
	var cart Cart
	if err := c.do(ctx, http.MethodPost, "/carts", tok, nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

type addCartItemRequest struct {
	ItemID   uint `json:"itemId"`
	Quantity int  `json:"quantity"`
}

// AddCartItem puts quantity units of an item into the cart. Quantity is
// checked here as a last line of defense; the catalog view validates the
// raw input before calling.
func (c *Client) AddCartItem(ctx context.Context, itemID uint, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	tok, err := c.authorize(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/carts/items", tok, addCartItemRequest{
		ItemID:   itemID,
		Quantity: quantity,
	}, nil)
}

// RemoveCartItem removes one line from the cart. The response is an
// acknowledgment only; callers refetch the snapshot for the new truth.
func (c *Client) RemoveCartItem(ctx context.Context, itemID uint) error {
	tok, err := c.authorize(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/carts/items/%d", itemID), tok, nil, nil)
}

// ListCartItems returns the authoritative cart snapshot, total included.
func (c *Client) ListCartItems(ctx context.Context) (CartSnapshot, error) {
	tok, err := c.authorize(ctx)
	if err != nil {
		return CartSnapshot{}, err
	}
	var snap CartSnapshot
	if err := c.do(ctx, http.MethodGet, "/cart/items", tok, nil, &snap); err != nil {
		return CartSnapshot{}, err
	}
	return snap, nil
}

// DeleteCart empties the cart server-side.
func (c *Client) DeleteCart(ctx context.Context) error {
	tok, err := c.authorize(ctx)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/carts", tok, nil, nil)
}
