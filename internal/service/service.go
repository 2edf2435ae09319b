package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/orderapi/internal/model"
	"github.com/ibeloyar/orderapi/internal/repository/pg"
)

type StorageRepo interface {
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.Order, error)
	ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	Ping(ctx context.Context) error
}

type Service struct {
	storage StorageRepo
}

func New(s StorageRepo) *Service {
	return &Service{storage: s}
}

func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.OrderResponse, *model.APIError) {
	if err := validateCreateOrder(&input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	order, err := s.storage.CreateOrder(ctx, input)
	if err != nil {
		// ошибка записи откатывается в хранилище и целиком
		// отдаётся клиенту, без разбора причины
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: pg.ErrorDetail(err),
		}
	}

	response := model.NewOrderResponse(*order)
	return &response, nil
}

func (s *Service) ListOrders(ctx context.Context, status model.OrderStatus) ([]model.OrderResponse, *model.APIError) {
	orders, err := s.storage.ListOrders(ctx, status)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: pg.ErrorDetail(err),
		}
	}

	result := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, model.NewOrderResponse(order))
	}

	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*model.OrderResponse, *model.APIError) {
	order, err := s.storage.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	response := model.NewOrderResponse(*order)
	return &response, nil
}

// Health проверяет соединение с БД. Ошибка соединения не является
// ошибкой запроса, она попадает в тело ответа
func (s *Service) Health(ctx context.Context) model.HealthResponse {
	database := model.DatabaseStatusConnected
	if err := s.storage.Ping(ctx); err != nil {
		database = "error: " + err.Error()
	}

	status := model.HealthStatusHealthy
	if database != model.DatabaseStatusConnected {
		status = model.HealthStatusUnhealthy
	}

	return model.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Database:  database,
	}
}
