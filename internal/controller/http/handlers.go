package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/orderapi/internal/model"
	"go.uber.org/zap"
)

const (
	serviceMessage = "Order Management API"
	serviceVersion = "1.0.0"
)

type Service interface {
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.OrderResponse, *model.APIError)
	ListOrders(ctx context.Context, status model.OrderStatus) ([]model.OrderResponse, *model.APIError)
	GetOrder(ctx context.Context, id int64) (*model.OrderResponse, *model.APIError)
	Health(ctx context.Context) model.HealthResponse
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ServiceInfo{
		Message: serviceMessage,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"health":       "/health",
			"create_order": "POST /orders",
			"list_orders":  "GET /orders",
			"get_order":    "GET /orders/{id}",
		},
	}, http.StatusOK)
}

// Health всегда отвечает 200, ошибка соединения с БД попадает в тело
func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.service.Health(r.Context()), http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.CreateOrder(r.Context(), body)
	if apiErr != nil {
		writeError(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, order, http.StatusCreated)
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := model.OrderStatus(r.URL.Query().Get("status"))

	orders, apiErr := c.service.ListOrders(r.Context(), status)
	if apiErr != nil {
		writeError(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, orders, http.StatusOK)
}

func (c *Controller) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// нечисловой id не может существовать
		writeError(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	order, apiErr := c.service.GetOrder(r.Context(), id)
	if apiErr != nil {
		writeError(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, order, http.StatusOK)
}
