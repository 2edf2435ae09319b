package pg

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// createOrdersTable создаёт таблицу заказов, выполняется при каждом
// старте сервиса
const createOrdersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type Repository struct {
	databaseURL string
	db          *sql.DB
}

func New(databaseURL string) (*Repository, error) {
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	if _, err := db.Exec(createOrdersTable); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		databaseURL: databaseURL,
		db:          db,
	}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Shutdown() error {
	return r.db.Close()
}
