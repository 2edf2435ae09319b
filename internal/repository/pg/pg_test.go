package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ibeloyar/orderapi/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateOrder_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	createdAt := time.Now()
	input := model.CreateOrderDTO{
		CustomerName: "Alice",
		ProductName:  "Widget",
		Quantity:     3,
		Price:        9.99,
		Status:       model.OrderStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Alice", "Widget", 3, 9.99, model.OrderStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))
	mock.ExpectCommit()

	order, err := repo.CreateOrder(context.Background(), input)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, "Widget", order.ProductName)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 9.99, order.Price)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.WithinDuration(t, createdAt, order.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateOrder_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	order, err := repo.CreateOrder(context.Background(), model.CreateOrderDTO{
		CustomerName: "Alice",
		ProductName:  "Widget",
		Quantity:     3,
		Price:        9.99,
		Status:       model.OrderStatusPending,
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOrders_All(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	rows := sqlmock.NewRows([]string{"id", "customer_name", "product_name", "quantity", "price", "status", "created_at"}).
		AddRow(2, "Bob", "Gadget", 1, 5.0, "completed", time.Now()).
		AddRow(1, "Alice", "Widget", 3, 9.99, "pending", time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT id, customer_name, product_name, quantity, price, status, created_at\\s+FROM orders\\s+ORDER BY created_at DESC").
		WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(1), orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOrders_StatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	rows := sqlmock.NewRows([]string{"id", "customer_name", "product_name", "quantity", "price", "status", "created_at"}).
		AddRow(2, "Bob", "Gadget", 1, 5.0, "completed", time.Now())

	mock.ExpectQuery("WHERE status = \\$1\\s+ORDER BY created_at DESC").
		WithArgs(model.OrderStatusCompleted).
		WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), model.OrderStatusCompleted)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusCompleted, orders[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOrders_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	rows := sqlmock.NewRows([]string{"id", "customer_name", "product_name", "quantity", "price", "status", "created_at"})

	mock.ExpectQuery("FROM orders").WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), "")

	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Len(t, orders, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrder_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "customer_name", "product_name", "quantity", "price", "status", "created_at"}).
		AddRow(7, "Alice", "Widget", 3, 9.99, "pending", createdAt)

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	order, err := repo.GetOrder(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, int64(7), order.ID)
	assert.WithinDuration(t, createdAt, order.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrder_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	mock.ExpectQuery("WHERE id = \\$1").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	order, err := repo.GetOrder(context.Background(), 999)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db}

	mock.ExpectPing()

	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
