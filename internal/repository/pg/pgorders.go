package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/orderapi/internal/model"
)

// CreateOrder вставляет новый заказ и возвращает сохранённую строку
// вместе с присвоенными id и created_at
func (r *Repository) CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order := model.Order{
		CustomerName: input.CustomerName,
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		Price:        input.Price,
		Status:       input.Status,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (customer_name, product_name, quantity, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		input.CustomerName,
		input.ProductName,
		input.Quantity,
		input.Price,
		input.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders возвращает заказы, новые первыми. Пустой status
// означает выборку без фильтра
func (r *Repository) ListOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT id, customer_name, product_name, quantity, price, status, created_at
		FROM orders
		ORDER BY created_at DESC`

	args := make([]any, 0, 1)
	if status != "" {
		query = `SELECT id, customer_name, product_name, quantity, price, status, created_at
			FROM orders
			WHERE status = $1
			ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.ProductName,
			&order.Quantity,
			&order.Price,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}

		result = append(result, order)
	}

	return result, rows.Err()
}

func (r *Repository) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order

	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_name, product_name, quantity, price, status, created_at
		FROM orders
		WHERE id = $1`,
		id,
	).Scan(
		&order.ID,
		&order.CustomerName,
		&order.ProductName,
		&order.Quantity,
		&order.Price,
		&order.Status,
		&order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}
