package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	GetOrderByID(w http.ResponseWriter, r *http.Request)
}

func InitRoutes(r *chi.Mux, handlers Handlers) *chi.Mux {

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)

	r.Post("/orders", handlers.CreateOrder)
	r.Get("/orders", handlers.ListOrders)
	r.Get("/orders/{id}", handlers.GetOrderByID)

	return r
}
