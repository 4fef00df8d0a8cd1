package api

import (
	"accstore-be/internal/cart"
	"accstore-be/internal/category"
	"accstore-be/internal/checkout"
	"accstore-be/internal/config"
	"accstore-be/internal/item"
	"accstore-be/internal/metrics"
	"accstore-be/internal/order"
	"accstore-be/internal/page"
	"accstore-be/internal/storage"
	"accstore-be/internal/user"
)

// Handler bundles the services behind the HTTP surface. Everything is
// injected; nothing here reaches for globals.
type Handler struct {
	cfg        *config.Config
	carts      *cart.Manager
	checkout   checkout.Service
	categories category.Service
	items      item.Service
	pages      page.Service
	orders     order.Service
	users      user.Service
	images     storage.Store
	metrics    *metrics.Metrics
	hub        *Hub
}

type Deps struct {
	Config     *config.Config
	Carts      *cart.Manager
	Checkout   checkout.Service
	Categories category.Service
	Items      item.Service
	Pages      page.Service
	Orders     order.Service
	Users      user.Service
	Images     storage.Store
	Metrics    *metrics.Metrics
	Hub        *Hub
}

func NewHandler(deps Deps) *Handler {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	hub := deps.Hub
	if hub == nil {
		hub = NewHub()
	}
	return &Handler{
		cfg:        deps.Config,
		carts:      deps.Carts,
		checkout:   deps.Checkout,
		categories: deps.Categories,
		items:      deps.Items,
		pages:      deps.Pages,
		orders:     deps.Orders,
		users:      deps.Users,
		images:     deps.Images,
		metrics:    m,
		hub:        hub,
	}
}
