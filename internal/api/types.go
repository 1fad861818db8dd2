package api

// Wire types, shaped after the backend's JSON. Field names match what the
// server emits; the client treats all of them as read-only projections.

type User struct {
	ID       uint   `json:"ID"`
	Username string `json:"Username"`
	Email    string `json:"Email,omitempty"`
	Token    string `json:"Token,omitempty"`
}

type Item struct {
	ID     uint    `json:"ID"`
	Name   string  `json:"Name"`
	Price  float64 `json:"Price"`
	Status string  `json:"Status"`
}

// CartLine is one entry of the server-side cart. The client never mutates a
// line in place; after any add/remove it refetches the authoritative set.
type CartLine struct {
	ID       uint `json:"ID"`
	CartID   uint `json:"CartID"`
	ItemID   uint `json:"ItemID"`
	Quantity int  `json:"Quantity"`
	Item     Item `json:"Item"`
}

// Subtotal is price times quantity, for display only. The authoritative
// total is always the server-reported CartSnapshot.TotalPrice.
func (l CartLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// CartSnapshot is the server's view of the cart at one point in time.
type CartSnapshot struct {
	Lines      []CartLine `json:"cartItems"`
	TotalPrice float64    `json:"totalPrice"`
}

type Cart struct {
	ID     uint   `json:"ID"`
	UserID uint   `json:"UserID"`
	Status string `json:"Status,omitempty"`
}
