// Package http provides HTTP routing and middleware configuration
// for the storefront API.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles the per-resource handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Seller    *SellerHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	Chat      *ChatHandler
	Shipping  *ShippingHandler
	Dashboard *DashboardHandler
}

// NewRouter constructs and returns an HTTP handler that serves the
// storefront API. It applies JSON content-type enforcement, request
// logging, and bearer-token authentication, and mounts the resource
// endpoints under /api.
//
// Routes:
//
//	POST /api/auth/login          → Auth.Login (public)
//	POST /api/auth/register       → Auth.Register (public)
//	GET  /api/seller-info         → Seller.Info
//	PUT  /api/seller/profile      → Seller.UpdateProfile
//	PUT  /api/seller/bank         → Seller.UpdateBank
//	PUT  /api/seller/shop         → Seller.UpdateShop
//	GET  /api/products            → Products.List
//	POST /api/products            → Products.Create
//	GET  /api/products/{id}       → Products.Get
//	PUT  /api/products/{id}       → Products.Update
//	DELETE /api/products/{id}     → Products.Delete
//	GET  /api/orders              → Orders.List (optional ?status=)
//	GET  /api/orders/{id}         → Orders.Get
//	PUT  /api/orders/{id}/status  → Orders.UpdateStatus
//	GET  /api/orders/{id}/messages → Chat.Messages
//	POST /api/orders/{id}/messages → Chat.Send
//	GET  /api/shipping-categories → Shipping.List
//	GET  /api/dashboard           → Dashboard.Stats
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON request bodies
//  2. WithRequestLogging(logger)           — logs incoming requests
//  3. BearerAuth(tokens)                   — enforces bearer-token auth
func NewRouter(h Handlers, tokens middleware.TokenParser, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Enforce bearer-token authentication
	r.Use(middleware.BearerAuth(tokens))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/register", h.Auth.Register)

		// Protected group: requires valid bearer token
		r.Group(func(r chi.Router) {
			r.Get("/seller-info", h.Seller.Info)
			r.Put("/seller/profile", h.Seller.UpdateProfile)
			r.Put("/seller/bank", h.Seller.UpdateBank)
			r.Put("/seller/shop", h.Seller.UpdateShop)

			r.Get("/products", h.Products.List)
			r.Post("/products", h.Products.Create)
			r.Get("/products/{id}", h.Products.Get)
			r.Put("/products/{id}", h.Products.Update)
			r.Delete("/products/{id}", h.Products.Delete)

			r.Get("/orders", h.Orders.List)
			r.Get("/orders/{id}", h.Orders.Get)
			r.Put("/orders/{id}/status", h.Orders.UpdateStatus)
			r.Get("/orders/{id}/messages", h.Chat.Messages)
			r.Post("/orders/{id}/messages", h.Chat.Send)

			r.Get("/shipping-categories", h.Shipping.List)
			r.Get("/dashboard", h.Dashboard.Stats)
		})
	})

	return r
}
