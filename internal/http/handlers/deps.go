package handlers

import (
	"net/http"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/config"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/session"
	"github.com/sandeep-sarma-24/Shopping-Cart/internal/viewmodel"
)

type Deps struct {
	Sessions     session.Store
	Views        *viewmodel.Registry
	AuthHandler  *AuthHandler
	ItemsHandler *ItemsHandler
	CartHandler  *CartHandler
	UsersHandler *UsersHandler
}

// NewDeps wires one API client and one set of view models per browsing
// session. The http.Client is shared so backend connections are pooled
// across sessions.
func NewDeps(cfg config.Config, sessions session.Store) *Deps {
	httpc := &http.Client{Timeout: cfg.HTTPTimeout}

	registry := viewmodel.NewRegistry(func(sid string) *viewmodel.Views {
		client := api.New(cfg.BackendURL, session.Scoped(sessions, sid), httpc)
		cart := viewmodel.NewCartViewModel(client)
		return &viewmodel.Views{
			Catalog: viewmodel.NewCatalogViewModel(client, cart),
			Cart:    cart,
			Auth:    viewmodel.NewAuthViewModel(client),
			Users:   viewmodel.NewUserListViewModel(client),
		}
	})

	return &Deps{
		Sessions:     sessions,
		Views:        registry,
		AuthHandler:  &AuthHandler{Views: registry},
		ItemsHandler: &ItemsHandler{Views: registry},
		CartHandler:  &CartHandler{Views: registry},
		UsersHandler: &UsersHandler{Views: registry},
	}
}
